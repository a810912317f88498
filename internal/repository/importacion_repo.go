package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

type ImportacionRepository interface {
	CreateTx(tx *gorm.DB, lote *model.ImportacionLote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ImportacionLote, error)
	List(ctx context.Context) ([]model.ImportacionLote, error)
	DB() *gorm.DB
}

type importacionRepo struct{ db *gorm.DB }

func NewImportacionRepository(db *gorm.DB) ImportacionRepository { return &importacionRepo{db: db} }

func (r *importacionRepo) CreateTx(tx *gorm.DB, lote *model.ImportacionLote) error {
	return tx.Create(lote).Error
}

func (r *importacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ImportacionLote, error) {
	var lote model.ImportacionLote
	err := r.db.WithContext(ctx).First(&lote, id).Error
	return &lote, err
}

func (r *importacionRepo) List(ctx context.Context) ([]model.ImportacionLote, error) {
	var lotes []model.ImportacionLote
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(50).Find(&lotes).Error
	return lotes, err
}

func (r *importacionRepo) DB() *gorm.DB { return r.db }
