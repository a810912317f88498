package infra

import (
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

func TestGenerateCotizacionPDF(t *testing.T) {
	dir := t.TempDir()

	cot := &model.Cotizacion{
		ID:            uuid.New(),
		Numero:        42,
		ClienteNombre: "Gomería El Ñandú",
		Total:         decimal.NewFromInt(520000),
		CreatedAt:     time.Now(),
		Items: []model.CotizacionItem{
			{
				Descripcion: "LLANTA 175-70-13 HIFLY HF201",
				Cantidad:    4,
				PrecioUnit:  decimal.NewFromInt(130000),
				Subtotal:    decimal.NewFromInt(520000),
			},
		},
	}

	path, err := GenerateCotizacionPDF(cot, "Roda Llantas", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, path, "cotizacion_42.pdf")
}

func TestGenerateCotizacionPDF_DescripcionLargaConAcentos(t *testing.T) {
	// La Ñ cae justo en el corte de la descripción: el recorte va por runas,
	// no por bytes, para no emitir un fragmento UTF-8 inválido al documento.
	desc := strings.Repeat("Ñ", 53) + "ÁÉÍÓÚ extra texto que supera el ancho de la columna"

	cot := &model.Cotizacion{
		ID:            uuid.New(),
		Numero:        43,
		ClienteNombre: "Cliente",
		Total:         decimal.NewFromInt(1000),
		CreatedAt:     time.Now(),
		Items: []model.CotizacionItem{
			{
				Descripcion: desc,
				Cantidad:    1,
				PrecioUnit:  decimal.NewFromInt(1000),
				Subtotal:    decimal.NewFromInt(1000),
			},
		},
	}

	path, err := GenerateCotizacionPDF(cot, "Roda Llantas", t.TempDir())
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	// El mismo recorte que aplica el documento debe seguir siendo UTF-8 válido
	recortada := string([]rune(desc)[:54]) + "…"
	assert.True(t, utf8.ValidString(recortada))
}
