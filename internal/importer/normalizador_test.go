package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarDescripcionCompuesta(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"DESCRIPCION", "COSTO", "STOCK"},
		[]string{"LLANTA 175-70-13 HIFLY HF201", "$ 1,250.50", "8"},
	)

	item := n.Normalizar(fila, 2)

	assert.Equal(t, "LLANTA 175-70-13 HIFLY HF201", item.Descripcion)
	assert.Equal(t, "HIFLY", item.Marca)
	assert.Equal(t, "HF201", item.Modelo)
	assert.Equal(t, "175/70R13", item.MedidaFull)
	assert.Equal(t, 175.0, item.Ancho)
	assert.Equal(t, 70.0, item.Perfil)
	assert.Equal(t, 13.0, item.Rin)
	assert.True(t, item.PrecioCosto.Equal(decimal.NewFromFloat(1250.50)))
	assert.Equal(t, 8, item.Stock)
	assert.False(t, item.Rescatada)
	assert.Empty(t, item.Advertencias)
}

func TestNormalizarMarcaCompuesta(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"DESCRIPCION"},
		[]string{"295/80R22.5 DOUBLE COIN RR202"},
	)

	item := n.Normalizar(fila, 5)

	assert.Equal(t, "DOUBLE COIN", item.Marca)
	assert.Equal(t, "RR202", item.Modelo)
	assert.Equal(t, "295/80R22.5", item.MedidaFull)
}

func TestNormalizarPrefijoNumericoDescartado(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	// tras quitar "175/70R13" queda un "175-" huérfano que no es marca
	fila := FilaDesde(
		[]string{"DESCRIPCION"},
		[]string{"175/70R13 175- TORNEL CLASICO"},
	)

	item := n.Normalizar(fila, 3)

	assert.Equal(t, "TORNEL", item.Marca)
	assert.Equal(t, "CLASICO", item.Modelo)
}

func TestNormalizarCompuestaSinMedida(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"DESCRIPCION", "COSTO"},
		[]string{"CAMARA PARA RIN GRANDE", "350"},
	)

	item := n.Normalizar(fila, 7)

	// rescate: el texto crudo sobrevive como medida, nada se pierde
	assert.Equal(t, "CAMARA PARA RIN GRANDE", item.Descripcion)
	assert.Equal(t, MarcaSinClasificar, item.Marca)
	assert.Equal(t, ModeloRevisar, item.Modelo)
	assert.Equal(t, "CAMARA PARA RIN GRANDE", item.MedidaFull)
	assert.Zero(t, item.Ancho)
	assert.True(t, item.Rescatada)
	require.NotEmpty(t, item.Advertencias)
	assert.Contains(t, item.Advertencias[0], "fila 7")
	assert.True(t, item.PrecioCosto.Equal(decimal.NewFromInt(350)))
}

func TestNormalizarCompuestaMedidaSinMarca(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde([]string{"DESCRIPCION"}, []string{"205/55R16"})

	item := n.Normalizar(fila, 4)

	assert.Equal(t, "205/55R16", item.MedidaFull)
	assert.Equal(t, MarcaSinClasificar, item.Marca)
	assert.Equal(t, ModeloRevisar, item.Modelo)
	assert.True(t, item.Rescatada)
}

func TestNormalizarColumnasSeparadas(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	sku := "LL-2055516"
	fila := FilaDesde(
		[]string{"CODIGO", "MARCA", "MODELO", "MEDIDA", "COSTO", "EXISTENCIA", "UBICACION"},
		[]string{sku, "Hifly", "HF201", "205/55R16", "980", "12", "BODEGA 2"},
	)

	item := n.Normalizar(fila, 2)

	assert.Equal(t, "HIFLY", item.Marca)
	assert.Equal(t, "HF201", item.Modelo)
	assert.Equal(t, "205/55R16", item.MedidaFull)
	assert.Equal(t, 205.0, item.Ancho)
	assert.Equal(t, 12, item.Stock)
	require.NotNil(t, item.SKU)
	assert.Equal(t, sku, *item.SKU)
	require.NotNil(t, item.Ubicacion)
	assert.Equal(t, "BODEGA 2", *item.Ubicacion)
	assert.Nil(t, item.IndiceCarga)
	assert.Equal(t, "HIFLY HF201 205/55R16", item.Descripcion)
	assert.False(t, item.Rescatada)
}

func TestNormalizarColumnasMedidaNoReconocida(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"MARCA", "MODELO", "MEDIDA"},
		[]string{"TORNEL", "CLASICO", "RIN 16 REFORZADA"},
	)

	item := n.Normalizar(fila, 9)

	// texto crudo conservado, dimensiones en cero
	assert.Equal(t, "RIN 16 REFORZADA", item.MedidaFull)
	assert.Zero(t, item.Ancho)
	assert.Zero(t, item.Rin)
	assert.True(t, item.Rescatada)
}

func TestNormalizarColumnasTodoAusente(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde([]string{"COL_A"}, []string{"zzz"})

	item := n.Normalizar(fila, 11)

	assert.Equal(t, MarcaSinClasificar, item.Marca)
	assert.Equal(t, ModeloRevisar, item.Modelo)
	assert.Equal(t, MedidaNoEspecificada, item.MedidaFull)
	assert.True(t, item.Rescatada)
	assert.Len(t, item.Advertencias, 3)
}

func TestNormalizarCostoIlegibleNoBloqueaStock(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"MARCA", "MODELO", "MEDIDA", "COSTO", "STOCK"},
		[]string{"TORNEL", "CLASICO", "185/65R15", "CONSULTAR", "6"},
	)

	item := n.Normalizar(fila, 3)

	assert.True(t, item.PrecioCosto.IsZero())
	assert.Equal(t, 6, item.Stock)
	assert.True(t, item.Rescatada)
}

func TestNormalizarStockNegativoQuedaEnCero(t *testing.T) {
	n := NuevoNormalizador(DefaultConfig())

	fila := FilaDesde(
		[]string{"MARCA", "MODELO", "MEDIDA", "STOCK"},
		[]string{"TORNEL", "CLASICO", "185/65R15", "-3"},
	)

	item := n.Normalizar(fila, 6)

	assert.Zero(t, item.Stock)
	assert.True(t, item.Rescatada)
}
