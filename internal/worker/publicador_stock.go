package worker

// publicador_stock.go
// Goroutine de fondo que publica el snapshot de inventario (con precio de
// venta ya resuelto) al portal del distribuidor cuando la bandera
// stock:dirty está seteada. Usa el Circuit Breaker para no martillar un
// portal caído: con el circuito abierto el tick se saltea y la bandera queda
// pendiente para el próximo ciclo.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/pricing"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

const publicacionTickInterval = 60 * time.Second

// PublicadorConfig holds all dependencies for the publication goroutine.
type PublicadorConfig struct {
	ItemRepo      repository.ItemRepository
	ReglaRepo     repository.ReglaRepository
	Distribuidor  *infra.DistribuidorClient
	CB            *infra.CircuitBreaker
	RDB           *redis.Client
	NombreNegocio string
}

// StartPublicadorStock launches the background goroutine. It respects the
// context for graceful shutdown.
func StartPublicadorStock(ctx context.Context, cfg PublicadorConfig) {
	go func() {
		ticker := time.NewTicker(publicacionTickInterval)
		defer ticker.Stop()

		log.Info().Msg("publicador_stock: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("publicador_stock: shutting down")
				return
			case <-ticker.C:
				publicarSiCorresponde(ctx, cfg)
			}
		}
	}()
}

func publicarSiCorresponde(ctx context.Context, cfg PublicadorConfig) {
	sucio, err := infra.StockSucio(ctx, cfg.RDB)
	if err != nil {
		log.Error().Err(err).Msg("publicador_stock: no se pudo leer la bandera")
		return
	}
	if !sucio {
		return
	}

	// Con el circuito abierto no se intenta: la bandera queda para después
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("publicador_stock: circuit breaker is open, skipping tick")
		return
	}

	items, err := cfg.ItemRepo.ListActivos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("publicador_stock: consultando inventario")
		return
	}
	reglas, err := cfg.ReglaRepo.ListActivas(ctx)
	if err != nil {
		log.Error().Err(err).Msg("publicador_stock: consultando reglas")
		return
	}

	snapshot := infra.SnapshotStock{
		Negocio:   cfg.NombreNegocio,
		GeneradoA: time.Now().UTC().Format(time.RFC3339),
	}
	for _, preciado := range pricing.PreciarCatalogo(items, reglas) {
		sku := ""
		if preciado.Item.SKU != nil {
			sku = *preciado.Item.SKU
		}
		snapshot.Items = append(snapshot.Items, infra.StockPublicado{
			SKU:        sku,
			Marca:      preciado.Item.Marca,
			Modelo:     preciado.Item.Modelo,
			MedidaFull: preciado.Item.MedidaFull,
			Precio:     preciado.Precio.Precio.StringFixed(0),
			Stock:      preciado.Item.Stock,
			Rin:        preciado.Item.Rin,
		})
	}

	var resp *infra.RespuestaDistribuidor
	cbErr := cfg.CB.Execute(func() error {
		r, err := cfg.Distribuidor.PublicarStock(ctx, snapshot)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if cbErr != nil {
		// La bandera no se limpia: el próximo tick reintenta
		log.Warn().Err(cbErr).
			Int("items", len(snapshot.Items)).
			Msg("publicador_stock: publicación falló, se reintenta en el próximo ciclo")
		return
	}

	if err := infra.LimpiarStockSucio(ctx, cfg.RDB); err != nil {
		log.Warn().Err(err).Msg("publicador_stock: no se pudo limpiar la bandera")
	}
	log.Info().
		Int("enviados", len(snapshot.Items)).
		Int("recibidos", resp.Recibidos).
		Int("rechazados", resp.Rechazados).
		Msg("publicador_stock: snapshot publicado")
}
