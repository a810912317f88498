package dto

import (
	"github.com/shopspring/decimal"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearReglaRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	PatronMarca *string         `json:"patron_marca" validate:"omitempty,max=80"`
	MargenPct   decimal.Decimal `json:"margen_pct"   validate:"required"`
	Prioridad   int             `json:"prioridad"`
	// Acepta tanto array JSON como string doblemente serializado
	ReglasVolumen model.TramosVolumen `json:"reglas_volumen"`
}

type ActualizarReglaRequest struct {
	Nombre        *string             `json:"nombre"       validate:"omitempty,min=2,max=120"`
	PatronMarca   *string             `json:"patron_marca" validate:"omitempty,max=80"`
	MargenPct     *decimal.Decimal    `json:"margen_pct"`
	Prioridad     *int                `json:"prioridad"`
	Activa        *bool               `json:"activa"`
	ReglasVolumen model.TramosVolumen `json:"reglas_volumen"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReglaResponse struct {
	ID            string              `json:"id"`
	Nombre        string              `json:"nombre"`
	PatronMarca   *string             `json:"patron_marca"`
	MargenPct     decimal.Decimal     `json:"margen_pct"`
	Prioridad     int                 `json:"prioridad"`
	Activa        bool                `json:"activa"`
	ReglasVolumen model.TramosVolumen `json:"reglas_volumen"`
}
