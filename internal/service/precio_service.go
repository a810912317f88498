package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/pricing"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

// PrecioService resuelve consultas de precio y arma el catálogo con precio de
// venta ya calculado. Solo lectura: el precio se deriva del juego de reglas en
// cada consulta, con un cache corto en Redis por delante.
type PrecioService interface {
	ConsultarPrecio(ctx context.Context, itemID uuid.UUID, cantidad int) (*dto.ConsultaPrecioResponse, error)
	Catalogo(ctx context.Context, filter dto.ItemFilter) (*dto.CatalogoListResponse, error)
}

type precioService struct {
	itemRepo  repository.ItemRepository
	reglaRepo repository.ReglaRepository
	rdb       *redis.Client
}

func NewPrecioService(itemRepo repository.ItemRepository, reglaRepo repository.ReglaRepository, rdb *redis.Client) PrecioService {
	return &precioService{itemRepo: itemRepo, reglaRepo: reglaRepo, rdb: rdb}
}

func (s *precioService) ConsultarPrecio(ctx context.Context, itemID uuid.UUID, cantidad int) (*dto.ConsultaPrecioResponse, error) {
	if cantidad < 1 {
		cantidad = 1
	}
	cacheKey := fmt.Sprintf("%s%s:%d", infra.CachePrecioPrefix, itemID, cantidad)

	// 1. Cache primero — best effort
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ConsultaPrecioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	// 2. Cache miss: resolver contra reglas vigentes
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil || !item.Activo {
		return nil, errors.New("ítem no encontrado")
	}
	reglas, err := s.reglaRepo.ListActivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando reglas de precio: %w", err)
	}

	res := pricing.Calcular(item, reglas, cantidad)
	resp := &dto.ConsultaPrecioResponse{
		ItemID:      item.ID.String(),
		Descripcion: item.Descripcion,
		MedidaFull:  item.MedidaFull,
		Cantidad:    cantidad,
		PrecioUnit:  res.Precio,
		Metodo:      string(res.Metodo),
		NombreRegla: res.NombreRegla,
		MargenPct:   res.MargenPct,
		Stock:       item.Stock,
	}

	// 3. Poblar cache — ignorar errores
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, infra.CachePrecioTTL).Err()
		}
	}

	return resp, nil
}

func (s *precioService) Catalogo(ctx context.Context, filter dto.ItemFilter) (*dto.CatalogoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	items, total, err := s.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	reglas, err := s.reglaRepo.ListActivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando reglas de precio: %w", err)
	}

	preciados := pricing.PreciarCatalogo(items, reglas)
	data := make([]dto.CatalogoItemResponse, len(preciados))
	for i := range preciados {
		data[i] = dto.CatalogoItemResponse{
			ItemResponse: itemToResponse(&preciados[i].Item),
			PrecioVenta:  preciados[i].Precio.Precio,
			NombreRegla:  preciados[i].Precio.NombreRegla,
		}
	}

	return &dto.CatalogoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}
