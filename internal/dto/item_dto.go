package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearItemRequest struct {
	SKU         *string         `json:"sku"`
	Descripcion string          `json:"descripcion"  validate:"required,min=2,max=250"`
	Marca       string          `json:"marca"        validate:"required,min=1,max=80"`
	Modelo      string          `json:"modelo"       validate:"required,min=1,max=120"`
	MedidaFull  string          `json:"medida_full"  validate:"required,min=2,max=60"`
	Ancho       float64         `json:"ancho"        validate:"min=0"`
	Perfil      float64         `json:"perfil"       validate:"min=0"`
	Rin         float64         `json:"rin"          validate:"min=0"`
	PrecioCosto decimal.Decimal `json:"precio_costo" validate:"required"`
	Stock       int             `json:"stock"        validate:"min=0"`
	IndiceCarga *string         `json:"indice_carga"`
	Ubicacion   *string         `json:"ubicacion"`
}

type ActualizarItemRequest struct {
	SKU         *string          `json:"sku"`
	Descripcion *string          `json:"descripcion"  validate:"omitempty,min=2,max=250"`
	Marca       *string          `json:"marca"        validate:"omitempty,min=1,max=80"`
	Modelo      *string          `json:"modelo"       validate:"omitempty,min=1,max=120"`
	MedidaFull  *string          `json:"medida_full"  validate:"omitempty,min=2,max=60"`
	PrecioCosto *decimal.Decimal `json:"precio_costo"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	IndiceCarga *string          `json:"indice_carga"`
	Ubicacion   *string          `json:"ubicacion"`
}

// FijarPrecioManualRequest carga o quita la oferta manual del ítem.
// Precio nil limpia la oferta y el motor de reglas vuelve a mandar.
type FijarPrecioManualRequest struct {
	Precio *decimal.Decimal `json:"precio"`
}

type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=3,max=200"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ItemFilter struct {
	Busqueda  string `form:"q"`
	Marca     string `form:"marca"`
	Medida    string `form:"medida"`
	Rin       string `form:"rin"`
	Rescatada string `form:"rescatada"` // "true" = solo pendientes de revisión
	Activo    string `form:"activo"`    // "false" | "all" | default activos
	Page      int    `form:"page,default=1"  validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID           string           `json:"id"`
	SKU          *string          `json:"sku"`
	Descripcion  string           `json:"descripcion"`
	Marca        string           `json:"marca"`
	Modelo       string           `json:"modelo"`
	MedidaFull   string           `json:"medida_full"`
	Ancho        float64          `json:"ancho"`
	Perfil       float64          `json:"perfil"`
	Rin          float64          `json:"rin"`
	PrecioCosto  decimal.Decimal  `json:"precio_costo"`
	PrecioManual *decimal.Decimal `json:"precio_manual"`
	Stock        int              `json:"stock"`
	IndiceCarga  *string          `json:"indice_carga"`
	Ubicacion    *string          `json:"ubicacion"`
	Rescatada    bool             `json:"rescatada"`
	Activo       bool             `json:"activo"`
}

type ItemListResponse struct {
	Data       []ItemResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
