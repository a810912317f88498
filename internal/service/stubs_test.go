package service_test

import (
	"context"
	"errors"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubItemRepo is an in-memory ItemRepository for testing.
type stubItemRepo struct {
	items map[uuid.UUID]*model.ItemInventario
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.ItemInventario)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.ItemInventario) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ItemInventario, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return item, nil
}

func (r *stubItemRepo) UpsertTx(tx *gorm.DB, item *model.ItemInventario) error {
	if item.SKU != nil && *item.SKU != "" {
		for id, existente := range r.items {
			if existente.SKU != nil && *existente.SKU == *item.SKU {
				item.ID = id
				item.PrecioManual = existente.PrecioManual
				item.Activo = true
				r.items[id] = item
				return nil
			}
		}
	}
	return r.CreateTx(tx, item)
}

func (r *stubItemRepo) List(_ context.Context, _ dto.ItemFilter) ([]model.ItemInventario, int64, error) {
	out := make([]model.ItemInventario, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *stubItemRepo) Update(_ context.Context, item *model.ItemInventario) error {
	if _, ok := r.items[item.ID]; !ok {
		return errors.New("not found")
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	item, ok := r.items[id]
	if !ok {
		return errors.New("not found")
	}
	item.Activo = false
	return nil
}

func (r *stubItemRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	item, ok := r.items[id]
	if !ok {
		return errors.New("not found")
	}
	item.Activo = true
	return nil
}

func (r *stubItemRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	item, ok := r.items[id]
	if !ok {
		return errors.New("not found")
	}
	item.Stock += delta
	return nil
}

func (r *stubItemRepo) CreateTx(_ *gorm.DB, item *model.ItemInventario) error {
	return r.Create(context.Background(), item)
}

func (r *stubItemRepo) ListActivos(_ context.Context) ([]model.ItemInventario, error) {
	var out []model.ItemInventario
	for _, item := range r.items {
		if item.Activo {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// stubReglaRepo returns a fixed rule set.
type stubReglaRepo struct {
	reglas []model.ReglaPrecio
}

func (r *stubReglaRepo) Create(_ context.Context, regla *model.ReglaPrecio) error {
	if regla.ID == uuid.Nil {
		regla.ID = uuid.New()
	}
	r.reglas = append(r.reglas, *regla)
	return nil
}

func (r *stubReglaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ReglaPrecio, error) {
	for i := range r.reglas {
		if r.reglas[i].ID == id {
			return &r.reglas[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubReglaRepo) List(_ context.Context) ([]model.ReglaPrecio, error) {
	return r.reglas, nil
}

func (r *stubReglaRepo) ListActivas(_ context.Context) ([]model.ReglaPrecio, error) {
	var activas []model.ReglaPrecio
	for _, regla := range r.reglas {
		if regla.Activa {
			activas = append(activas, regla)
		}
	}
	return activas, nil
}

func (r *stubReglaRepo) Update(_ context.Context, regla *model.ReglaPrecio) error {
	for i := range r.reglas {
		if r.reglas[i].ID == regla.ID {
			r.reglas[i] = *regla
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubReglaRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.reglas {
		if r.reglas[i].ID == id {
			r.reglas = append(r.reglas[:i], r.reglas[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var _ repository.ReglaRepository = (*stubReglaRepo)(nil)

// stubCotizacionRepo stores quotes in memory and hands out sequential numbers.
type stubCotizacionRepo struct {
	cotizaciones map[uuid.UUID]*model.Cotizacion
	numeroSeq    int64
}

func newStubCotizacionRepo() *stubCotizacionRepo {
	return &stubCotizacionRepo{cotizaciones: make(map[uuid.UUID]*model.Cotizacion)}
}

func (r *stubCotizacionRepo) CreateTx(_ *gorm.DB, c *model.Cotizacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cotizaciones[c.ID] = c
	return nil
}

func (r *stubCotizacionRepo) SiguienteNumeroTx(_ *gorm.DB) (int64, error) {
	r.numeroSeq++
	return r.numeroSeq, nil
}

func (r *stubCotizacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cotizacion, error) {
	c, ok := r.cotizaciones[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubCotizacionRepo) List(_ context.Context, _ dto.CotizacionFilter) ([]model.Cotizacion, int64, error) {
	out := make([]model.Cotizacion, 0, len(r.cotizaciones))
	for _, c := range r.cotizaciones {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCotizacionRepo) ActualizarEstado(_ context.Context, id uuid.UUID, estado string, pdfPath *string) error {
	c, ok := r.cotizaciones[id]
	if !ok {
		return errors.New("not found")
	}
	c.Estado = estado
	if pdfPath != nil {
		c.PDFPath = pdfPath
	}
	return nil
}

func (r *stubCotizacionRepo) DB() *gorm.DB { return nil }

var _ repository.CotizacionRepository = (*stubCotizacionRepo)(nil)

// stubImportacionRepo captures persisted lotes.
type stubImportacionRepo struct {
	lotes map[uuid.UUID]*model.ImportacionLote
}

func newStubImportacionRepo() *stubImportacionRepo {
	return &stubImportacionRepo{lotes: make(map[uuid.UUID]*model.ImportacionLote)}
}

func (r *stubImportacionRepo) CreateTx(_ *gorm.DB, lote *model.ImportacionLote) error {
	if lote.ID == uuid.Nil {
		lote.ID = uuid.New()
	}
	r.lotes[lote.ID] = lote
	return nil
}

func (r *stubImportacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ImportacionLote, error) {
	lote, ok := r.lotes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return lote, nil
}

func (r *stubImportacionRepo) List(_ context.Context) ([]model.ImportacionLote, error) {
	out := make([]model.ImportacionLote, 0, len(r.lotes))
	for _, lote := range r.lotes {
		out = append(out, *lote)
	}
	return out, nil
}

func (r *stubImportacionRepo) DB() *gorm.DB { return nil }

var _ repository.ImportacionRepository = (*stubImportacionRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedItem(repo *stubItemRepo, marca, modelo, medida string, costo float64, stock int) *model.ItemInventario {
	item := &model.ItemInventario{
		ID:          uuid.New(),
		Descripcion: marca + " " + modelo + " " + medida,
		Marca:       marca,
		Modelo:      modelo,
		MedidaFull:  medida,
		PrecioCosto: decimal.NewFromFloat(costo),
		Stock:       stock,
		Activo:      true,
	}
	repo.items[item.ID] = item
	return item
}

func ptrStr(s string) *string { return &s }
