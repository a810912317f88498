package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizarEncabezadoConBanner(t *testing.T) {
	cfg := DefaultConfig()

	filas := [][]string{
		{"LLANTAS DEL CENTRO S.A. DE C.V."},
		{"Lista de precios vigente al 01/08/2026"},
		{""},
		{"CODIGO", "DESCRIPCION", "MARCA", "COSTO", "STOCK"},
		{"A-01", "205/55R16 HIFLY HF201", "HIFLY", "980", "12"},
	}

	assert.Equal(t, 3, cfg.LocalizarEncabezado(filas))
}

func TestLocalizarEncabezadoBannerConPalabrasClave(t *testing.T) {
	cfg := DefaultConfig()

	// el banner menciona "PRECIOS" pero tiene una sola celda: puntúa 0
	filas := [][]string{
		{"LISTA DE PRECIOS Y EXISTENCIAS"},
		{"MEDIDA", "MARCA"},
		{"185/65R15", "TORNEL"},
	}

	assert.Equal(t, 1, cfg.LocalizarEncabezado(filas))
}

func TestLocalizarEncabezadoSinPalabrasClave(t *testing.T) {
	cfg := DefaultConfig()

	// sin ningún hit el fallback es la primera fila
	filas := [][]string{
		{"AAA", "BBB"},
		{"CCC", "DDD"},
	}

	assert.Equal(t, 0, cfg.LocalizarEncabezado(filas))
}

func TestLocalizarEncabezadoEmpateGanaLaPrimera(t *testing.T) {
	cfg := DefaultConfig()

	filas := [][]string{
		{"MARCA", "COSTO"},
		{"MARCA", "COSTO"},
	}

	assert.Equal(t, 0, cfg.LocalizarEncabezado(filas))
}

func TestLocalizarEncabezadoRespetaLimite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFilasEncabezado = 2

	// el encabezado real está fuera de la ventana inspeccionada
	filas := [][]string{
		{"x"},
		{"y"},
		{"MARCA", "COSTO", "STOCK"},
	}

	assert.Equal(t, 0, cfg.LocalizarEncabezado(filas))
}

func TestLocalizarEncabezadoKeywordPuntuaUnaVez(t *testing.T) {
	cfg := DefaultConfig()

	// repetir una palabra clave en varias celdas no suma más que aparecer una vez
	filas := [][]string{
		{"MARCA", "MARCA", "MARCA"},
		{"MEDIDA", "MARCA", "COSTO", "STOCK"},
	}

	assert.Equal(t, 1, cfg.LocalizarEncabezado(filas))
}
