package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CotizacionLineaRequest struct {
	ItemID   string `json:"item_id"  validate:"required,uuid"`
	Cantidad int    `json:"cantidad" validate:"required,min=1"`
}

type CrearCotizacionRequest struct {
	ClienteNombre string                   `json:"cliente_nombre" validate:"required,min=2,max=150"`
	ClienteEmail  *string                  `json:"cliente_email"  validate:"omitempty,email"`
	Items         []CotizacionLineaRequest `json:"items"          validate:"required,min=1,dive"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type CotizacionFilter struct {
	Estado string `form:"estado"`
	Desde  string `form:"desde"`
	Hasta  string `form:"hasta"`
	Page   int    `form:"page,default=1"  validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CotizacionItemResponse struct {
	ItemID      string          `json:"item_id"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int             `json:"cantidad"`
	PrecioUnit  decimal.Decimal `json:"precio_unit"`
	MargenPct   decimal.Decimal `json:"margen_pct"`
	Metodo      string          `json:"metodo"`
	NombreRegla string          `json:"nombre_regla"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CotizacionResponse struct {
	ID            string                   `json:"id"`
	Numero        int64                    `json:"numero"`
	ClienteNombre string                   `json:"cliente_nombre"`
	ClienteEmail  *string                  `json:"cliente_email"`
	Total         decimal.Decimal          `json:"total"`
	Estado        string                   `json:"estado"`
	PDFPath       *string                  `json:"pdf_path"`
	Items         []CotizacionItemResponse `json:"items"`
	CreatedAt     string                   `json:"created_at"`
}

type CotizacionListResponse struct {
	Data       []CotizacionResponse `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}
