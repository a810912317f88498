package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParsearHojaCSVConBanner(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	csv := "LLANTAS DEL CENTRO\n" +
		"Lista vigente agosto\n" +
		"CODIGO,DESCRIPCION,COSTO,STOCK\n" +
		"A-01,LLANTA 205/55R16 HIFLY HF201,980,12\n" +
		",,,\n" +
		"A-02,CAMARA ESPECIAL,350,2\n"

	res, err := n.ParsearHoja([]byte(csv), "lista.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, res.FilaEncabezado)
	require.Len(t, res.Items, 2) // la fila totalmente vacía se saltea
	assert.Equal(t, 2, res.TotalFilas)
	assert.Equal(t, 1, res.Rescatadas)

	primero := res.Items[0]
	assert.Equal(t, "HIFLY", primero.Marca)
	assert.Equal(t, "205/55R16", primero.MedidaFull)
	assert.Equal(t, 12, primero.Stock)

	segundo := res.Items[1]
	assert.Equal(t, MarcaSinClasificar, segundo.Marca)
	assert.True(t, segundo.Rescatada)
	require.NotEmpty(t, res.Advertencias)
	// el número de fila reportado es el que ve el usuario en la planilla
	assert.Contains(t, res.Advertencias[0], "fila 6")
}

func TestParsearHojaXLSX(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	f := excelize.NewFile()
	hoja := f.GetSheetName(0)
	filas := [][]interface{}{
		{"MARCA", "MODELO", "MEDIDA", "COSTO", "STOCK"},
		{"TORNEL", "CLASICO", "185/65R15", 850, 6},
	}
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(hoja, celda, &fila))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	res, err := n.ParsearHoja(buf.Bytes(), "proveedor.xlsx")
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "TORNEL", res.Items[0].Marca)
	assert.Equal(t, "185/65R15", res.Items[0].MedidaFull)
	assert.Equal(t, 6, res.Items[0].Stock)
}

func TestParsearHojaCSVDisfrazadoDeXLS(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	csv := "MARCA,MODELO,MEDIDA,COSTO\nTORNEL,CLASICO,175/70R13,790\n"

	res, err := n.ParsearHoja([]byte(csv), "lista.xls")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "TORNEL", res.Items[0].Marca)
}

func TestParsearHojaVacia(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	_, err := n.ParsearHoja([]byte(""), "vacia.csv")
	assert.ErrorIs(t, err, ErrHojaVacia)

	// solo encabezado, sin filas de datos
	_, err = n.ParsearHoja([]byte("MARCA,MODELO,COSTO\n"), "solo-encabezado.csv")
	assert.ErrorIs(t, err, ErrHojaVacia)
}

func TestParsearHojaNuncaPierdeFilas(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	csv := "DESCRIPCION,COSTO\n" +
		"LLANTA 205/55R16 HIFLY HF201,980\n" +
		"PROMO SIN DATOS,CONSULTAR\n" +
		"295/80R22.5 DOUBLE COIN RR202,4100\n"

	res, err := n.ParsearHoja([]byte(csv), "mixta.csv")
	require.NoError(t, err)

	// una fila irrecuperable no borra a sus vecinas
	require.Len(t, res.Items, 3)
	assert.Equal(t, "HIFLY", res.Items[0].Marca)
	assert.True(t, res.Items[1].Rescatada)
	assert.Equal(t, "DOUBLE COIN", res.Items[2].Marca)
}
