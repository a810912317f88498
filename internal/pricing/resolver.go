package pricing

// resolver.go — Motor de precios por reglas. Resuelve, para un ítem y una
// cantidad, la única regla y tramo de volumen aplicables, y calcula el precio
// con su rastro de auditoría. Función pura: mismos argumentos, mismo
// resultado, siempre — sin estado, sin reloj, sin azar.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

// Metodo indica cómo se resolvió el precio.
type Metodo string

const (
	// MetodoManual: el ítem tiene precio manual cargado — anula todo lo demás
	MetodoManual Metodo = "manual"
	// MetodoRegla: lo resolvió una regla (global o por marca)
	MetodoRegla Metodo = "rule"
	// MetodoDefault: ninguna regla matcheó, se devuelve el costo sin margen
	MetodoDefault Metodo = "default"
)

// Resultado is one price resolution. Se recalcula en cada consulta: la fuente
// de verdad es el juego de reglas, los precios son derivados.
type Resultado struct {
	Precio      decimal.Decimal `json:"precio"` // redondeado a entero
	Metodo      Metodo          `json:"metodo"`
	NombreRegla string          `json:"nombre_regla"`
	MargenPct   decimal.Decimal `json:"margen_pct"`
}

var cien = decimal.NewFromInt(100)

// Calcular resolves the price for one item at the requested quantity.
// Cantidad menor a 1 se trata como 1.
func Calcular(item *model.ItemInventario, reglas []model.ReglaPrecio, cantidad int) Resultado {
	if cantidad < 1 {
		cantidad = 1
	}

	// 1. Precio manual: corto-circuito incondicional
	if item.PrecioManual != nil && item.PrecioManual.IsPositive() {
		return Resultado{
			Precio:      item.PrecioManual.Round(0),
			Metodo:      MetodoManual,
			NombreRegla: "OFERTA (Manual)",
			MargenPct:   decimal.Zero,
		}
	}

	// 2. Regla activa de mayor prioridad cuyo patrón matchee la marca.
	// Se ordena acá siempre: el orden de la lista de entrada no es contrato.
	regla := resolverRegla(item.Marca, reglas)
	if regla == nil {
		return Resultado{
			Precio:      item.PrecioCosto.Round(0),
			Metodo:      MetodoDefault,
			NombreRegla: "Costo (Sin Regla)",
			MargenPct:   decimal.Zero,
		}
	}

	// 3. Margen base, reemplazado por el tramo de volumen si corresponde
	margen := regla.MargenPct
	nombre := nombreRegla(regla)
	if tramo := resolverTramo(regla.ReglasVolumen, cantidad); tramo != nil {
		margen = tramo.MargenPct
		nombre += fmt.Sprintf(" (Volumen x%d)", tramo.MinCantidad)
	}

	factor := decimal.NewFromInt(1).Add(margen.Div(cien))
	return Resultado{
		Precio:      item.PrecioCosto.Mul(factor).Round(0),
		Metodo:      MetodoRegla,
		NombreRegla: nombre,
		MargenPct:   margen,
	}
}

// resolverRegla picks the highest-priority active rule whose brand pattern
// matches. Equal priorities keep the input order (stable sort).
func resolverRegla(marca string, reglas []model.ReglaPrecio) *model.ReglaPrecio {
	ordenadas := make([]model.ReglaPrecio, len(reglas))
	copy(ordenadas, reglas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		return ordenadas[i].Prioridad > ordenadas[j].Prioridad
	})

	for i := range ordenadas {
		r := &ordenadas[i]
		if !r.Activa {
			continue
		}
		if marcaMatchea(r.PatronMarca, marca) {
			return r
		}
	}
	return nil
}

// marcaMatchea: patrón nulo/vacío/"*" es global; si no, contención de
// substring insensible a mayúsculas en ambos sentidos — tolera tanto
// patrón "MICHELIN" con marca "MICHELIN LTX" como el caso inverso.
func marcaMatchea(patron *string, marca string) bool {
	if patron == nil {
		return true
	}
	p := strings.TrimSpace(*patron)
	if p == "" || p == "*" {
		return true
	}
	p = strings.ToUpper(p)
	m := strings.ToUpper(strings.TrimSpace(marca))
	if m == "" {
		return false
	}
	return strings.Contains(m, p) || strings.Contains(p, m)
}

// resolverTramo: tramos ordenados por MinCantidad descendente, aplica el
// primero cuyo mínimo no supere la cantidad pedida.
func resolverTramo(tramos model.TramosVolumen, cantidad int) *model.TramoVolumen {
	if len(tramos) == 0 {
		return nil
	}
	ordenados := make(model.TramosVolumen, len(tramos))
	copy(ordenados, tramos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].MinCantidad > ordenados[j].MinCantidad
	})
	for i := range ordenados {
		if ordenados[i].MinCantidad <= cantidad {
			return &ordenados[i]
		}
	}
	return nil
}

func nombreRegla(r *model.ReglaPrecio) string {
	if r.PatronMarca == nil || strings.TrimSpace(*r.PatronMarca) == "" || strings.TrimSpace(*r.PatronMarca) == "*" {
		return "General"
	}
	return "Marca: " + strings.TrimSpace(*r.PatronMarca)
}
