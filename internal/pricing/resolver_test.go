package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

func ptr(s string) *string { return &s }

func itemConCosto(marca string, costo int64) *model.ItemInventario {
	return &model.ItemInventario{
		Marca:       marca,
		PrecioCosto: decimal.NewFromInt(costo),
	}
}

func reglaGlobal(margen int64, prioridad int) model.ReglaPrecio {
	return model.ReglaPrecio{
		Nombre:    "margen general",
		MargenPct: decimal.NewFromInt(margen),
		Prioridad: prioridad,
		Activa:    true,
	}
}

func reglaMarca(patron string, margen int64, prioridad int) model.ReglaPrecio {
	r := reglaGlobal(margen, prioridad)
	r.Nombre = "margen " + patron
	r.PatronMarca = ptr(patron)
	return r
}

func TestCalcularReglaGlobal(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	reglas := []model.ReglaPrecio{reglaGlobal(30, 0)}

	res := Calcular(item, reglas, 1)

	assert.True(t, res.Precio.Equal(decimal.NewFromInt(130000)), "precio: %s", res.Precio)
	assert.Equal(t, MetodoRegla, res.Metodo)
	assert.Equal(t, "General", res.NombreRegla)
	assert.True(t, res.MargenPct.Equal(decimal.NewFromInt(30)))
}

func TestCalcularTramoVolumen(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	regla := reglaMarca("HIFLY", 30, 10)
	regla.ReglasVolumen = model.TramosVolumen{
		{MinCantidad: 4, MargenPct: decimal.NewFromInt(20)},
		{MinCantidad: 8, MargenPct: decimal.NewFromInt(15)},
	}
	reglas := []model.ReglaPrecio{regla}

	// cantidad 4 activa el tramo x4
	res := Calcular(item, reglas, 4)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(120000)), "precio: %s", res.Precio)
	assert.Equal(t, "Marca: HIFLY (Volumen x4)", res.NombreRegla)

	// cantidad 8 salta al tramo más alto aplicable
	res = Calcular(item, reglas, 8)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(115000)))
	assert.Equal(t, "Marca: HIFLY (Volumen x8)", res.NombreRegla)

	// cantidad 3 no alcanza ningún tramo: margen base
	res = Calcular(item, reglas, 3)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(130000)))
	assert.Equal(t, "Marca: HIFLY", res.NombreRegla)
}

func TestCalcularManualAnulaTodo(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	manual := decimal.NewFromFloat(99990.40)
	item.PrecioManual = &manual
	reglas := []model.ReglaPrecio{reglaMarca("HIFLY", 30, 10)}

	res := Calcular(item, reglas, 12)

	assert.True(t, res.Precio.Equal(decimal.NewFromInt(99990)))
	assert.Equal(t, MetodoManual, res.Metodo)
	assert.Equal(t, "OFERTA (Manual)", res.NombreRegla)
	assert.True(t, res.MargenPct.IsZero())
}

func TestCalcularManualNoPositivoSeIgnora(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	cero := decimal.Zero
	item.PrecioManual = &cero
	reglas := []model.ReglaPrecio{reglaGlobal(30, 0)}

	res := Calcular(item, reglas, 1)

	assert.Equal(t, MetodoRegla, res.Metodo)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(130000)))
}

func TestCalcularSinReglaDevuelveCosto(t *testing.T) {
	item := itemConCosto("TORNEL", 85500)

	res := Calcular(item, nil, 2)

	assert.True(t, res.Precio.Equal(decimal.NewFromInt(85500)))
	assert.Equal(t, MetodoDefault, res.Metodo)
	assert.Equal(t, "Costo (Sin Regla)", res.NombreRegla)
}

func TestCalcularPrioridadDeReglas(t *testing.T) {
	item := itemConCosto("MICHELIN", 100000)
	reglas := []model.ReglaPrecio{
		reglaGlobal(30, 0),
		reglaMarca("MICHELIN", 45, 10),
	}

	// la regla de marca con mayor prioridad gana sin importar el orden de entrada
	res := Calcular(item, reglas, 1)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(145000)))
	assert.Equal(t, "Marca: MICHELIN", res.NombreRegla)

	invertidas := []model.ReglaPrecio{reglas[1], reglas[0]}
	res = Calcular(item, invertidas, 1)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(145000)))
}

func TestCalcularReglaInactivaSeSaltea(t *testing.T) {
	item := itemConCosto("MICHELIN", 100000)
	inactiva := reglaMarca("MICHELIN", 45, 10)
	inactiva.Activa = false
	reglas := []model.ReglaPrecio{inactiva, reglaGlobal(30, 0)}

	res := Calcular(item, reglas, 1)

	assert.Equal(t, "General", res.NombreRegla)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(130000)))
}

func TestMarcaMatcheaContencionBidireccional(t *testing.T) {
	item := itemConCosto("MICHELIN LTX", 100000)
	reglas := []model.ReglaPrecio{reglaMarca("MICHELIN", 40, 5)}

	// patrón contenido en la marca
	res := Calcular(item, reglas, 1)
	assert.Equal(t, MetodoRegla, res.Metodo)

	// marca contenida en el patrón
	item = itemConCosto("COIN", 100000)
	reglas = []model.ReglaPrecio{reglaMarca("DOUBLE COIN", 40, 5)}
	res = Calcular(item, reglas, 1)
	assert.Equal(t, MetodoRegla, res.Metodo)

	// marca vacía nunca matchea un patrón de marca
	item = itemConCosto("", 100000)
	res = Calcular(item, reglas, 1)
	assert.Equal(t, MetodoDefault, res.Metodo)
}

func TestCalcularPatronAsteriscoEsGlobal(t *testing.T) {
	item := itemConCosto("TORNEL", 100000)
	regla := reglaMarca("*", 25, 0)

	res := Calcular(item, []model.ReglaPrecio{regla}, 1)

	assert.Equal(t, "General", res.NombreRegla)
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(125000)))
}

func TestCalcularCantidadMenorAUnoSeNormaliza(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	regla := reglaGlobal(30, 0)
	regla.ReglasVolumen = model.TramosVolumen{{MinCantidad: 1, MargenPct: decimal.NewFromInt(10)}}

	res := Calcular(item, []model.ReglaPrecio{regla}, 0)

	// cantidad 0 se trata como 1: el tramo x1 aplica
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(110000)))
}

func TestCalcularRedondeaAEntero(t *testing.T) {
	item := itemConCosto("HIFLY", 999)
	reglas := []model.ReglaPrecio{reglaGlobal(33, 0)}

	res := Calcular(item, reglas, 1)

	// 999 * 1.33 = 1328.67 → 1329
	assert.True(t, res.Precio.Equal(decimal.NewFromInt(1329)), "precio: %s", res.Precio)
}

func TestCalcularNoMutaEntradas(t *testing.T) {
	item := itemConCosto("HIFLY", 100000)
	reglas := []model.ReglaPrecio{
		reglaGlobal(30, 0),
		reglaMarca("HIFLY", 40, 10),
	}

	Calcular(item, reglas, 4)

	// el orden de la lista de entrada queda intacto tras resolver
	assert.Nil(t, reglas[0].PatronMarca)
	assert.Equal(t, 10, reglas[1].Prioridad)
	assert.True(t, item.PrecioCosto.Equal(decimal.NewFromInt(100000)))
}

func TestPreciarCatalogo(t *testing.T) {
	items := []model.ItemInventario{
		*itemConCosto("HIFLY", 100000),
		*itemConCosto("TORNEL", 80000),
	}
	reglas := []model.ReglaPrecio{reglaMarca("HIFLY", 30, 10)}

	preciados := PreciarCatalogo(items, reglas)

	require.Len(t, preciados, 2)
	assert.True(t, preciados[0].Precio.Precio.Equal(decimal.NewFromInt(130000)))
	assert.Equal(t, MetodoRegla, preciados[0].Precio.Metodo)
	assert.Equal(t, MetodoDefault, preciados[1].Precio.Metodo)
	assert.True(t, preciados[1].Precio.Precio.Equal(decimal.NewFromInt(80000)))
}
