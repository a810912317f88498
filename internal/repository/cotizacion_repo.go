package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

type CotizacionRepository interface {
	// CreateTx persiste la cotización con sus líneas dentro de una tx abierta
	// por el servicio — el número correlativo se toma en la misma tx.
	CreateTx(tx *gorm.DB, c *model.Cotizacion) error
	SiguienteNumeroTx(tx *gorm.DB) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error)
	List(ctx context.Context, filter dto.CotizacionFilter) ([]model.Cotizacion, int64, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string, pdfPath *string) error
	DB() *gorm.DB
}

type cotizacionRepo struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository { return &cotizacionRepo{db: db} }

func (r *cotizacionRepo) CreateTx(tx *gorm.DB, c *model.Cotizacion) error {
	return tx.Create(c).Error
}

func (r *cotizacionRepo) SiguienteNumeroTx(tx *gorm.DB) (int64, error) {
	// MAX+1 bajo la tx de creación; el índice único corta cualquier carrera
	var max int64
	err := tx.Model(&model.Cotizacion{}).
		Select("COALESCE(MAX(numero), 0)").Scan(&max).Error
	return max + 1, err
}

func (r *cotizacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Items").First(&c, id).Error
	return &c, err
}

func (r *cotizacionRepo) List(ctx context.Context, filter dto.CotizacionFilter) ([]model.Cotizacion, int64, error) {
	var cotizaciones []model.Cotizacion
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cotizacion{})

	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Desde != "" {
		q = q.Where("created_at >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		q = q.Where("created_at <= ?", filter.Hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Order("numero DESC").
		Limit(filter.Limit).Offset(offset).Find(&cotizaciones).Error
	return cotizaciones, total, err
}

func (r *cotizacionRepo) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string, pdfPath *string) error {
	cambios := map[string]interface{}{"estado": estado}
	if pdfPath != nil {
		cambios["pdf_path"] = *pdfPath
	}
	return r.db.WithContext(ctx).Model(&model.Cotizacion{}).
		Where("id = ?", id).Updates(cambios).Error
}

func (r *cotizacionRepo) DB() *gorm.DB { return r.db }
