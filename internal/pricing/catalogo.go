package pricing

import "github.com/frank-vcorp/roda-llantas-sub000/internal/model"

// ItemPreciado attaches a price resolution to an inventory item without
// touching the item itself — the original record stays intact for views that
// also need cost, stock or the audit fields.
type ItemPreciado struct {
	Item   model.ItemInventario `json:"item"`
	Precio Resultado            `json:"precio"`
}

// PreciarCatalogo prices a whole collection at quantity 1, for catalog and
// browse views where no quantity was chosen yet.
func PreciarCatalogo(items []model.ItemInventario, reglas []model.ReglaPrecio) []ItemPreciado {
	preciados := make([]ItemPreciado, 0, len(items))
	for i := range items {
		preciados = append(preciados, ItemPreciado{
			Item:   items[i],
			Precio: Calcular(&items[i], reglas, 1),
		})
	}
	return preciados
}
