package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/pricing"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/worker"
)

type CotizacionService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearCotizacionRequest) (*dto.CotizacionResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CotizacionResponse, error)
	Listar(ctx context.Context, filter dto.CotizacionFilter) (*dto.CotizacionListResponse, error)
}

type cotizacionService struct {
	repo       repository.CotizacionRepository
	itemRepo   repository.ItemRepository
	reglaRepo  repository.ReglaRepository
	dispatcher *worker.Dispatcher
}

func NewCotizacionService(
	repo repository.CotizacionRepository,
	itemRepo repository.ItemRepository,
	reglaRepo repository.ReglaRepository,
	dispatcher *worker.Dispatcher,
) CotizacionService {
	return &cotizacionService{
		repo:       repo,
		itemRepo:   itemRepo,
		reglaRepo:  reglaRepo,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// El precio de cada línea lo resuelve el motor de reglas al momento de crear y
// queda congelado en la cotización: cambiar las reglas después no reescribe
// cotizaciones ya emitidas.

func (s *cotizacionService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearCotizacionRequest) (*dto.CotizacionResponse, error) {
	reglas, err := s.reglaRepo.ListActivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando reglas de precio: %w", err)
	}

	// Pre-vuelo fuera de la tx: resolver ítems y precios
	type lineaResuelta struct {
		item      *model.ItemInventario
		cantidad  int
		resultado pricing.Resultado
	}

	var resueltas []lineaResuelta
	total := decimal.Zero

	for _, linea := range req.Items {
		itemID, err := uuid.Parse(linea.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item_id inválido: %w", err)
		}
		item, err := s.itemRepo.FindByID(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("ítem %s no encontrado", linea.ItemID)
		}
		if !item.Activo {
			return nil, fmt.Errorf("el ítem %s está inactivo y no puede cotizarse", item.Descripcion)
		}

		res := pricing.Calcular(item, reglas, linea.Cantidad)
		subtotal := res.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
		total = total.Add(subtotal)
		resueltas = append(resueltas, lineaResuelta{item: item, cantidad: linea.Cantidad, resultado: res})
	}

	var cot model.Cotizacion
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.repo.SiguienteNumeroTx(tx)
		if err != nil {
			return err
		}

		cot = model.Cotizacion{
			Numero:        numero,
			ClienteNombre: req.ClienteNombre,
			ClienteEmail:  req.ClienteEmail,
			Total:         total,
			Estado:        "pendiente",
			UsuarioID:     usuarioID,
		}
		for _, linea := range resueltas {
			cot.Items = append(cot.Items, model.CotizacionItem{
				ItemID:      linea.item.ID,
				Descripcion: linea.item.Descripcion,
				Cantidad:    linea.cantidad,
				PrecioUnit:  linea.resultado.Precio,
				MargenPct:   linea.resultado.MargenPct,
				Metodo:      string(linea.resultado.Metodo),
				NombreRegla: linea.resultado.NombreRegla,
				Subtotal:    linea.resultado.Precio.Mul(decimal.NewFromInt(int64(linea.cantidad))),
			})
		}

		return s.repo.CreateTx(tx, &cot)
	})
	if txErr != nil {
		return nil, txErr
	}

	// PDF y envío por email corren en el pool — la respuesta no los espera
	if s.dispatcher != nil {
		payload := worker.CotizacionJobPayload{CotizacionID: cot.ID.String()}
		if req.ClienteEmail != nil && *req.ClienteEmail != "" {
			payload.ClienteEmail = req.ClienteEmail
		}
		if err := s.dispatcher.EnqueueCotizacion(ctx, payload); err != nil {
			log.Warn().Err(err).Str("cotizacion_id", cot.ID.String()).
				Msg("cotizacion: no se pudo encolar la generación del PDF")
		}
	}

	resp := cotizacionToResponse(&cot)
	return &resp, nil
}

func (s *cotizacionService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CotizacionResponse, error) {
	cot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cotización no encontrada")
	}
	resp := cotizacionToResponse(cot)
	return &resp, nil
}

func (s *cotizacionService) Listar(ctx context.Context, filter dto.CotizacionFilter) (*dto.CotizacionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	cotizaciones, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CotizacionResponse, len(cotizaciones))
	for i := range cotizaciones {
		data[i] = cotizacionToResponse(&cotizaciones[i])
	}
	return &dto.CotizacionListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func cotizacionToResponse(c *model.Cotizacion) dto.CotizacionResponse {
	items := make([]dto.CotizacionItemResponse, 0, len(c.Items))
	for _, linea := range c.Items {
		items = append(items, dto.CotizacionItemResponse{
			ItemID:      linea.ItemID.String(),
			Descripcion: linea.Descripcion,
			Cantidad:    linea.Cantidad,
			PrecioUnit:  linea.PrecioUnit,
			MargenPct:   linea.MargenPct,
			Metodo:      linea.Metodo,
			NombreRegla: linea.NombreRegla,
			Subtotal:    linea.Subtotal,
		})
	}
	return dto.CotizacionResponse{
		ID:            c.ID.String(),
		Numero:        c.Numero,
		ClienteNombre: c.ClienteNombre,
		ClienteEmail:  c.ClienteEmail,
		Total:         c.Total,
		Estado:        c.Estado,
		PDFPath:       c.PDFPath,
		Items:         items,
		CreatedAt:     c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
