package dto

import "github.com/shopspring/decimal"

// ConsultaPrecioResponse is returned by the price check endpoint: the resolved
// price for one item at the requested quantity, with its audit trail.
type ConsultaPrecioResponse struct {
	ItemID      string          `json:"item_id"`
	Descripcion string          `json:"descripcion"`
	MedidaFull  string          `json:"medida_full"`
	Cantidad    int             `json:"cantidad"`
	PrecioUnit  decimal.Decimal `json:"precio_unit"`
	Metodo      string          `json:"metodo"`
	NombreRegla string          `json:"nombre_regla"`
	MargenPct   decimal.Decimal `json:"margen_pct"`
	Stock       int             `json:"stock"`
}

// CatalogoItemResponse es una entrada del catálogo público con precio a
// cantidad 1 ya resuelto.
type CatalogoItemResponse struct {
	ItemResponse
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	NombreRegla string          `json:"nombre_regla"`
}

type CatalogoListResponse struct {
	Data       []CatalogoItemResponse `json:"data"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}
