package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReglaPrecio defines margin-over-cost pricing for a brand scope.
// PatronMarca nil, vacío o "*" significa regla global; cualquier otro valor
// matchea por contención de substring (en ambos sentidos) contra la marca.
// Ante varias reglas aplicables gana la de mayor Prioridad.
type ReglaPrecio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string
	PatronMarca *string         `gorm:"index"`
	MargenPct   decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Prioridad   int             `gorm:"not null;default:0"`
	Activa      bool            `gorm:"not null;default:true"`
	// Tramos por volumen; a partir de MinCantidad unidades reemplaza el margen base
	ReglasVolumen TramosVolumen `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ReglaPrecio) TableName() string { return "reglas_precio" }

// TramoVolumen is one quantity tier inside a rule.
type TramoVolumen struct {
	MinCantidad int             `json:"min_cantidad"`
	MargenPct   decimal.Decimal `json:"margen_pct"`
}

// TramosVolumen tolera llegar tanto como array JSON nativo como string
// JSON-serializado (clientes viejos guardaban el campo doblemente
// serializado). Se resuelve una sola vez acá, en el borde — un payload
// ilegible degrada a lista vacía, nunca rompe el cálculo de precios.
type TramosVolumen []TramoVolumen

func (t *TramosVolumen) UnmarshalJSON(data []byte) error {
	// ¿String JSON con un array adentro?
	var anidado string
	if err := json.Unmarshal(data, &anidado); err == nil {
		if anidado == "" {
			*t = nil
			return nil
		}
		data = []byte(anidado)
	}

	var tramos []TramoVolumen
	if err := json.Unmarshal(data, &tramos); err != nil {
		*t = nil
		return nil
	}
	*t = tramos
	return nil
}

// Value implements driver.Valuer for the jsonb column.
func (t TramosVolumen) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]TramoVolumen(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the jsonb column.
func (t *TramosVolumen) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return t.UnmarshalJSON(v)
	case string:
		return t.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("tramos de volumen: tipo de columna inesperado %T", src)
	}
}
