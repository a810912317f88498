package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

// ReglaService administra el juego de reglas de precio. Cada cambio invalida
// el cache de consultas: los precios se derivan de las reglas, nunca al revés.
type ReglaService interface {
	Crear(ctx context.Context, req dto.CrearReglaRequest) (*dto.ReglaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ReglaResponse, error)
	Listar(ctx context.Context) ([]dto.ReglaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReglaRequest) (*dto.ReglaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type reglaService struct {
	repo repository.ReglaRepository
	rdb  *redis.Client
}

func NewReglaService(repo repository.ReglaRepository, rdb *redis.Client) ReglaService {
	return &reglaService{repo: repo, rdb: rdb}
}

func (s *reglaService) Crear(ctx context.Context, req dto.CrearReglaRequest) (*dto.ReglaResponse, error) {
	if req.MargenPct.IsNegative() {
		return nil, errors.New("el margen no puede ser negativo")
	}
	for _, tramo := range req.ReglasVolumen {
		if tramo.MinCantidad < 1 {
			return nil, errors.New("los tramos de volumen requieren min_cantidad >= 1")
		}
	}

	regla := &model.ReglaPrecio{
		Nombre:        req.Nombre,
		PatronMarca:   req.PatronMarca,
		MargenPct:     req.MargenPct,
		Prioridad:     req.Prioridad,
		Activa:        true,
		ReglasVolumen: req.ReglasVolumen,
	}
	if err := s.repo.Create(ctx, regla); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	resp := reglaToResponse(regla)
	return &resp, nil
}

func (s *reglaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ReglaResponse, error) {
	regla, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("regla no encontrada")
	}
	resp := reglaToResponse(regla)
	return &resp, nil
}

func (s *reglaService) Listar(ctx context.Context) ([]dto.ReglaResponse, error) {
	reglas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReglaResponse, len(reglas))
	for i := range reglas {
		resp[i] = reglaToResponse(&reglas[i])
	}
	return resp, nil
}

func (s *reglaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReglaRequest) (*dto.ReglaResponse, error) {
	regla, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("regla no encontrada")
	}

	if req.Nombre != nil {
		regla.Nombre = *req.Nombre
	}
	if req.PatronMarca != nil {
		regla.PatronMarca = req.PatronMarca
	}
	if req.MargenPct != nil {
		if req.MargenPct.IsNegative() {
			return nil, errors.New("el margen no puede ser negativo")
		}
		regla.MargenPct = *req.MargenPct
	}
	if req.Prioridad != nil {
		regla.Prioridad = *req.Prioridad
	}
	if req.Activa != nil {
		regla.Activa = *req.Activa
	}
	if req.ReglasVolumen != nil {
		for _, tramo := range req.ReglasVolumen {
			if tramo.MinCantidad < 1 {
				return nil, errors.New("los tramos de volumen requieren min_cantidad >= 1")
			}
		}
		regla.ReglasVolumen = req.ReglasVolumen
	}

	if err := s.repo.Update(ctx, regla); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	resp := reglaToResponse(regla)
	return &resp, nil
}

func (s *reglaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidarCache(ctx)
	return nil
}

func (s *reglaService) invalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	_ = infra.InvalidarCachePrecios(ctx, s.rdb)
}

func reglaToResponse(r *model.ReglaPrecio) dto.ReglaResponse {
	return dto.ReglaResponse{
		ID:            r.ID.String(),
		Nombre:        r.Nombre,
		PatronMarca:   r.PatronMarca,
		MargenPct:     r.MargenPct,
		Prioridad:     r.Prioridad,
		Activa:        r.Activa,
		ReglasVolumen: r.ReglasVolumen,
	}
}
