package service_test

import (
	"context"
	"testing"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultarPrecio_ReglaPorMarca(t *testing.T) {
	itemRepo := newStubItemRepo()
	reglaRepo := &stubReglaRepo{reglas: []model.ReglaPrecio{
		{ID: uuid.New(), Nombre: "General", MargenPct: decimal.NewFromFloat(30), Activa: true},
		{ID: uuid.New(), Nombre: "HIFLY", PatronMarca: ptrStr("HIFLY"), MargenPct: decimal.NewFromFloat(40), Prioridad: 10, Activa: true},
	}}
	svc := service.NewPrecioService(itemRepo, reglaRepo, nil)
	item := seedItem(itemRepo, "HIFLY", "HF201", "175/70R13", 100000, 8)

	resp, err := svc.ConsultarPrecio(context.Background(), item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "140000", resp.PrecioUnit.String())
	assert.Equal(t, "rule", resp.Metodo)
	assert.Equal(t, "Marca: HIFLY", resp.NombreRegla)
	assert.Equal(t, 8, resp.Stock)
}

func TestConsultarPrecio_OfertaManualManda(t *testing.T) {
	itemRepo := newStubItemRepo()
	reglaRepo := &stubReglaRepo{reglas: []model.ReglaPrecio{
		{ID: uuid.New(), Nombre: "General", MargenPct: decimal.NewFromFloat(30), Activa: true},
	}}
	svc := service.NewPrecioService(itemRepo, reglaRepo, nil)
	item := seedItem(itemRepo, "FATE", "AR-440", "185/60R14", 100000, 4)
	oferta := decimal.NewFromFloat(95000)
	item.PrecioManual = &oferta

	resp, err := svc.ConsultarPrecio(context.Background(), item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, "95000", resp.PrecioUnit.String())
	assert.Equal(t, "manual", resp.Metodo)
	assert.Equal(t, "OFERTA (Manual)", resp.NombreRegla)
}

func TestConsultarPrecio_ItemInactivo(t *testing.T) {
	itemRepo := newStubItemRepo()
	svc := service.NewPrecioService(itemRepo, &stubReglaRepo{}, nil)
	item := seedItem(itemRepo, "VIEJA", "Z", "155/80R13", 40000, 0)
	item.Activo = false

	_, err := svc.ConsultarPrecio(context.Background(), item.ID, 1)
	assert.ErrorContains(t, err, "no encontrado")
}

func TestCatalogo_PreciaTodosLosItems(t *testing.T) {
	itemRepo := newStubItemRepo()
	reglaRepo := &stubReglaRepo{reglas: []model.ReglaPrecio{
		{ID: uuid.New(), Nombre: "General", MargenPct: decimal.NewFromFloat(25), Activa: true},
	}}
	svc := service.NewPrecioService(itemRepo, reglaRepo, nil)
	seedItem(itemRepo, "HIFLY", "HF201", "175/70R13", 100000, 8)
	seedItem(itemRepo, "FATE", "AR-440", "185/60R14", 80000, 2)

	resp, err := svc.Catalogo(context.Background(), dto.ItemFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	for _, entry := range resp.Data {
		assert.True(t, entry.PrecioVenta.GreaterThan(entry.PrecioCosto),
			"el precio de venta debe superar el costo con margen positivo")
		assert.Equal(t, "General", entry.NombreRegla)
	}
}
