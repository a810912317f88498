package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

type ReglaRepository interface {
	Create(ctx context.Context, r *model.ReglaPrecio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReglaPrecio, error)
	List(ctx context.Context) ([]model.ReglaPrecio, error)
	// ListActivas es el juego de reglas que consume el motor de precios.
	ListActivas(ctx context.Context) ([]model.ReglaPrecio, error)
	Update(ctx context.Context, r *model.ReglaPrecio) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reglaRepo struct{ db *gorm.DB }

func NewReglaRepository(db *gorm.DB) ReglaRepository { return &reglaRepo{db: db} }

func (r *reglaRepo) Create(ctx context.Context, regla *model.ReglaPrecio) error {
	return r.db.WithContext(ctx).Create(regla).Error
}

func (r *reglaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ReglaPrecio, error) {
	var regla model.ReglaPrecio
	err := r.db.WithContext(ctx).First(&regla, id).Error
	return &regla, err
}

func (r *reglaRepo) List(ctx context.Context) ([]model.ReglaPrecio, error) {
	var reglas []model.ReglaPrecio
	err := r.db.WithContext(ctx).Order("prioridad DESC, nombre ASC").Find(&reglas).Error
	return reglas, err
}

func (r *reglaRepo) ListActivas(ctx context.Context) ([]model.ReglaPrecio, error) {
	var reglas []model.ReglaPrecio
	err := r.db.WithContext(ctx).Where("activa = true").
		Order("prioridad DESC").Find(&reglas).Error
	return reglas, err
}

func (r *reglaRepo) Update(ctx context.Context, regla *model.ReglaPrecio) error {
	return r.db.WithContext(ctx).Save(regla).Error
}

func (r *reglaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReglaPrecio{}, id).Error
}
