package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

// ItemService defines the contract for manual inventory management. Los altas
// masivas entran por ImportacionService; acá viven el ABM individual, la
// oferta manual y los ajustes de stock.
type ItemService interface {
	Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	Listar(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarItemRequest) (*dto.ItemResponse, error)
	FijarPrecioManual(ctx context.Context, id uuid.UUID, req dto.FijarPrecioManualRequest) (*dto.ItemResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	repo repository.ItemRepository
	rdb  *redis.Client
}

func NewItemService(repo repository.ItemRepository, rdb *redis.Client) ItemService {
	return &itemService{repo: repo, rdb: rdb}
}

func (s *itemService) Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemResponse, error) {
	item := &model.ItemInventario{
		SKU:         req.SKU,
		Descripcion: req.Descripcion,
		Marca:       req.Marca,
		Modelo:      req.Modelo,
		MedidaFull:  req.MedidaFull,
		Ancho:       req.Ancho,
		Perfil:      req.Perfil,
		Rin:         req.Rin,
		PrecioCosto: req.PrecioCosto,
		Stock:       req.Stock,
		IndiceCarga: req.IndiceCarga,
		Ubicacion:   req.Ubicacion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidarCaches(ctx)
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *itemService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("ítem no encontrado")
	}
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *itemService) Listar(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ItemResponse, len(items))
	for i := range items {
		data[i] = itemToResponse(&items[i])
	}
	return &dto.ItemListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *itemService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("ítem no encontrado")
	}

	if req.SKU != nil {
		item.SKU = req.SKU
	}
	if req.Descripcion != nil {
		item.Descripcion = *req.Descripcion
	}
	if req.Marca != nil {
		item.Marca = *req.Marca
	}
	if req.Modelo != nil {
		item.Modelo = *req.Modelo
	}
	if req.MedidaFull != nil {
		item.MedidaFull = *req.MedidaFull
	}
	if req.PrecioCosto != nil {
		item.PrecioCosto = *req.PrecioCosto
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.IndiceCarga != nil {
		item.IndiceCarga = req.IndiceCarga
	}
	if req.Ubicacion != nil {
		item.Ubicacion = req.Ubicacion
	}
	// Edición manual implica revisión hecha: la fila deja de estar pendiente
	item.Rescatada = false

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidarCaches(ctx)
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *itemService) FijarPrecioManual(ctx context.Context, id uuid.UUID, req dto.FijarPrecioManualRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("ítem no encontrado")
	}
	if req.Precio != nil && !req.Precio.IsPositive() {
		return nil, errors.New("el precio manual debe ser mayor a cero")
	}

	item.PrecioManual = req.Precio
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidarCaches(ctx)
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *itemService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("ítem no encontrado")
	}
	if item.Stock+req.Delta < 0 {
		return errors.New("el ajuste dejaría el stock en negativo")
	}
	if err := s.repo.AjustarStock(ctx, id, req.Delta); err != nil {
		return err
	}
	s.invalidarCaches(ctx)
	return nil
}

func (s *itemService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarCaches(ctx)
	return nil
}

func (s *itemService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return err
	}
	s.invalidarCaches(ctx)
	return nil
}

// invalidarCaches marca el stock como pendiente de publicar y limpia el cache
// de precios. Best-effort: sin Redis el sistema sigue, solo pierde el cache.
func (s *itemService) invalidarCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	_ = infra.MarcarStockSucio(ctx, s.rdb)
	_ = infra.InvalidarCachePrecios(ctx, s.rdb)
}

func itemToResponse(item *model.ItemInventario) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           item.ID.String(),
		SKU:          item.SKU,
		Descripcion:  item.Descripcion,
		Marca:        item.Marca,
		Modelo:       item.Modelo,
		MedidaFull:   item.MedidaFull,
		Ancho:        item.Ancho,
		Perfil:       item.Perfil,
		Rin:          item.Rin,
		PrecioCosto:  item.PrecioCosto,
		PrecioManual: item.PrecioManual,
		Stock:        item.Stock,
		IndiceCarga:  item.IndiceCarga,
		Ubicacion:    item.Ubicacion,
		Rescatada:    item.Rescatada,
		Activo:       item.Activo,
	}
}
