package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cotizacion is a customer quote. Line prices are resolved by the pricing
// engine at creation time and frozen here; the rule set can change later
// without rewriting history.
type Cotizacion struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero        int64     `gorm:"uniqueIndex;not null"`
	ClienteNombre string    `gorm:"not null"`
	ClienteEmail  *string
	Total         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// Estado: pendiente (PDF en cola) | emitida | error_pdf
	Estado    string `gorm:"type:varchar(20);not null;default:'pendiente'"`
	PDFPath   *string
	UsuarioID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items   []CotizacionItem `gorm:"foreignKey:CotizacionID"`
	Usuario *Usuario         `gorm:"foreignKey:UsuarioID"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// CotizacionItem is one priced line of a quote. NombreRegla preserva el rastro
// de auditoría del motor ("Marca: MICHELIN (Volumen x4)").
type CotizacionItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemID       uuid.UUID `gorm:"type:uuid;not null"`
	Descripcion  string    `gorm:"not null"`
	Cantidad     int       `gorm:"not null"`
	PrecioUnit   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MargenPct    decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Metodo       string          `gorm:"type:varchar(10);not null"`
	NombreRegla  string          `gorm:"not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Item *ItemInventario `gorm:"foreignKey:ItemID"`
}

func (CotizacionItem) TableName() string { return "cotizacion_items" }
