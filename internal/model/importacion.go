package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImportacionLote records one spreadsheet upload: how many rows it produced
// and which of them needed rescuing, so the UI can show "184 de 5000 filas
// requieren revisión manual" with the per-row warnings.
type ImportacionLote struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreArchivo  string    `gorm:"not null"`
	FilaEncabezado int       `gorm:"not null;default:0"`
	TotalFilas     int       `gorm:"not null;default:0"`
	Rescatadas     int       `gorm:"not null;default:0"`
	Advertencias   ListaTexto `gorm:"type:jsonb"`
	UsuarioID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

func (ImportacionLote) TableName() string { return "importacion_lotes" }

// ListaTexto is a jsonb-backed string slice.
type ListaTexto []string

func (l ListaTexto) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ListaTexto) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("lista de texto: tipo de columna inesperado %T", src)
	}
}
