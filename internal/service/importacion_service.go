package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/importer"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

// ImportacionService procesa planillas de proveedores. El parseo corre
// sincrónico (el vendedor espera el resumen), la persistencia es una sola tx:
// o entra el lote completo o no entra nada.
type ImportacionService interface {
	Importar(ctx context.Context, usuarioID uuid.UUID, nombreArchivo string, data []byte) (*dto.ImportacionResponse, error)
	ObtenerLote(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error)
	ListarLotes(ctx context.Context) ([]dto.LoteResponse, error)
}

type importacionService struct {
	normalizador *importer.Normalizador
	itemRepo     repository.ItemRepository
	loteRepo     repository.ImportacionRepository
	rdb          *redis.Client
}

func NewImportacionService(
	normalizador *importer.Normalizador,
	itemRepo repository.ItemRepository,
	loteRepo repository.ImportacionRepository,
	rdb *redis.Client,
) ImportacionService {
	return &importacionService{
		normalizador: normalizador,
		itemRepo:     itemRepo,
		loteRepo:     loteRepo,
		rdb:          rdb,
	}
}

func (s *importacionService) Importar(ctx context.Context, usuarioID uuid.UUID, nombreArchivo string, data []byte) (*dto.ImportacionResponse, error) {
	if len(data) == 0 {
		return nil, errors.New("el archivo está vacío")
	}

	resultado, err := s.normalizador.ParsearHoja(data, nombreArchivo)
	if err != nil {
		if errors.Is(err, importer.ErrHojaVacia) {
			return nil, err
		}
		return nil, fmt.Errorf("procesando %q: %w", nombreArchivo, err)
	}

	lote := &model.ImportacionLote{
		NombreArchivo:  nombreArchivo,
		FilaEncabezado: resultado.FilaEncabezado,
		TotalFilas:     resultado.TotalFilas,
		Rescatadas:     resultado.Rescatadas,
		Advertencias:   model.ListaTexto(resultado.Advertencias),
		UsuarioID:      &usuarioID,
	}

	txErr := runTx(ctx, s.itemRepo.DB(), func(tx *gorm.DB) error {
		if err := s.loteRepo.CreateTx(tx, lote); err != nil {
			return err
		}
		for i := range resultado.Items {
			item := importadoToModel(&resultado.Items[i], lote.ID)
			if err := s.itemRepo.UpsertTx(tx, item); err != nil {
				return fmt.Errorf("persistiendo ítem %d del lote: %w", i+1, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// El inventario cambió: snapshot pendiente y cache de precios viejo
	if s.rdb != nil {
		_ = infra.MarcarStockSucio(ctx, s.rdb)
		_ = infra.InvalidarCachePrecios(ctx, s.rdb)
	}

	log.Info().
		Str("archivo", nombreArchivo).
		Str("lote_id", lote.ID.String()).
		Int("importadas", resultado.TotalFilas).
		Int("rescatadas", resultado.Rescatadas).
		Msg("importacion: lote persistido")

	return &dto.ImportacionResponse{
		LoteID:         lote.ID.String(),
		NombreArchivo:  nombreArchivo,
		FilaEncabezado: resultado.FilaEncabezado,
		TotalFilas:     resultado.TotalFilas,
		Importadas:     len(resultado.Items),
		Rescatadas:     resultado.Rescatadas,
		Advertencias:   resultado.Advertencias,
	}, nil
}

func (s *importacionService) ObtenerLote(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error) {
	lote, err := s.loteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("lote no encontrado")
	}
	resp := loteToResponse(lote)
	return &resp, nil
}

func (s *importacionService) ListarLotes(ctx context.Context) ([]dto.LoteResponse, error) {
	lotes, err := s.loteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LoteResponse, len(lotes))
	for i := range lotes {
		resp[i] = loteToResponse(&lotes[i])
	}
	return resp, nil
}

func importadoToModel(item *importer.ItemImportado, loteID uuid.UUID) *model.ItemInventario {
	return &model.ItemInventario{
		SKU:         item.SKU,
		Descripcion: item.Descripcion,
		Marca:       item.Marca,
		Modelo:      item.Modelo,
		MedidaFull:  item.MedidaFull,
		Ancho:       item.Ancho,
		Perfil:      item.Perfil,
		Rin:         item.Rin,
		PrecioCosto: item.PrecioCosto,
		Stock:       item.Stock,
		IndiceCarga: item.IndiceCarga,
		Ubicacion:   item.Ubicacion,
		Rescatada:   item.Rescatada,
		LoteID:      &loteID,
		Activo:      true,
	}
}

func loteToResponse(l *model.ImportacionLote) dto.LoteResponse {
	return dto.LoteResponse{
		ID:             l.ID.String(),
		NombreArchivo:  l.NombreArchivo,
		FilaEncabezado: l.FilaEncabezado,
		TotalFilas:     l.TotalFilas,
		Rescatadas:     l.Rescatadas,
		Advertencias:   []string(l.Advertencias),
		CreatedAt:      l.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
