package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

// ItemRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type ItemRepository interface {
	Create(ctx context.Context, item *model.ItemInventario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ItemInventario, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]model.ItemInventario, int64, error)
	Update(ctx context.Context, item *model.ItemInventario) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// AjustarStock incrementa o decrementa stock sin transacción externa.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error

	// Used inside transactions — callers must pass the tx instance
	CreateTx(tx *gorm.DB, item *model.ItemInventario) error

	// UpsertTx matchea por SKU dentro de la tx: si el SKU ya existe el ítem
	// se actualiza en el lugar (conservando id y precio manual), si no — o si
	// la fila no trae SKU — se inserta. Reimportar la misma planilla no
	// duplica el inventario.
	UpsertTx(tx *gorm.DB, item *model.ItemInventario) error

	// ListActivos devuelve el inventario completo activo, para el snapshot
	// de publicación al distribuidor.
	ListActivos(ctx context.Context) ([]model.ItemInventario, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.ItemInventario) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ItemInventario, error) {
	var item model.ItemInventario
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *itemRepo) List(ctx context.Context, filter dto.ItemFilter) ([]model.ItemInventario, int64, error) {
	var items []model.ItemInventario
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ItemInventario{})

	// Activo filter: "false" = inactivos, "all" = todos, anything else = activos (default)
	switch filter.Activo {
	case "false":
		q = q.Where("activo = false")
	case "all":
		// no filter
	default:
		q = q.Where("activo = true")
	}

	if filter.Busqueda != "" {
		patron := "%" + filter.Busqueda + "%"
		q = q.Where("descripcion ILIKE ? OR marca ILIKE ? OR modelo ILIKE ? OR medida_full ILIKE ?",
			patron, patron, patron, patron)
	}
	if filter.Marca != "" {
		q = q.Where("marca ILIKE ?", "%"+filter.Marca+"%")
	}
	if filter.Medida != "" {
		q = q.Where("medida_full ILIKE ?", "%"+filter.Medida+"%")
	}
	if filter.Rin != "" {
		q = q.Where("rin = ?", filter.Rin)
	}
	if filter.Rescatada == "true" {
		q = q.Where("rescatada = true")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("marca ASC, medida_full ASC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.ItemInventario) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ItemInventario{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *itemRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ItemInventario{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *itemRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.ItemInventario{}).
		Where("id = ? AND activo = true", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *itemRepo) CreateTx(tx *gorm.DB, item *model.ItemInventario) error {
	return tx.Create(item).Error
}

func (r *itemRepo) UpsertTx(tx *gorm.DB, item *model.ItemInventario) error {
	if item.SKU == nil || *item.SKU == "" {
		return tx.Create(item).Error
	}

	var existente model.ItemInventario
	err := tx.Where("sku = ?", *item.SKU).First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(item).Error
	}
	if err != nil {
		return err
	}

	// El precio manual es decisión del administrador, la planilla no lo pisa.
	// Un ítem desactivado que reaparece en la lista vuelve a estar activo.
	item.ID = existente.ID
	item.PrecioManual = existente.PrecioManual
	item.CreatedAt = existente.CreatedAt
	item.Activo = true
	return tx.Save(item).Error
}

func (r *itemRepo) ListActivos(ctx context.Context) ([]model.ItemInventario, error) {
	var items []model.ItemInventario
	err := r.db.WithContext(ctx).Where("activo = true").
		Order("marca ASC, medida_full ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
