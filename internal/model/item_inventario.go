package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInventario is one tire in stock, usually created by a spreadsheet
// import. Marca/Modelo carry the "SIN CLASIFICAR" / "REVISAR MANUALMENTE"
// sentinels when the parser could not classify the row — the catalog UI
// surfaces those as pending manual review.
type ItemInventario struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         *string   `gorm:"index"`
	Descripcion string    `gorm:"not null"` // texto original de la planilla, se conserva tal cual
	Marca       string    `gorm:"index;not null"`
	Modelo      string    `gorm:"not null"`
	MedidaFull  string    `gorm:"index;not null"`
	// Dimensiones normalizadas; 0 cuando el formato no las codifica
	Ancho  float64 `gorm:"not null;default:0"` // mm
	Perfil float64 `gorm:"not null;default:0"` // % (relación de aspecto)
	Rin    float64 `gorm:"not null;default:0"` // pulgadas, puede ser 22.5

	PrecioCosto decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// PrecioManual anula el motor de reglas cuando está presente y es > 0
	PrecioManual *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Stock        int              `gorm:"not null;default:0"`

	IndiceCarga *string
	Ubicacion   *string

	// Rescatada: algún camino de fallback del importador tocó esta fila
	Rescatada bool       `gorm:"not null;default:false"`
	LoteID    *uuid.UUID `gorm:"type:uuid;index"`

	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lote *ImportacionLote `gorm:"foreignKey:LoteID"`
}

func (ItemInventario) TableName() string { return "items_inventario" }
