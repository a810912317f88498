package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Claves de estado compartidas entre el flujo de importación y el publicador
// de stock al distribuidor.
const (
	// StockDirtyKey se setea tras cada importación; el cron de publicación lo
	// consume y lo limpia cuando el snapshot sale con éxito.
	StockDirtyKey = "stock:dirty"

	// CachePrecioPrefix antecede al ID del ítem en el cache de consultas de
	// precio. Se invalida completo al tocar reglas o importar.
	CachePrecioPrefix = "precio:"

	CachePrecioTTL = 5 * time.Minute
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// MarcarStockSucio señala que el inventario cambió y el distribuidor necesita
// un snapshot nuevo. Best-effort: si Redis no está, el cron publica igual en
// su próximo ciclo completo.
func MarcarStockSucio(ctx context.Context, rdb *redis.Client) error {
	return rdb.Set(ctx, StockDirtyKey, time.Now().UTC().Format(time.RFC3339), 0).Err()
}

// StockSucio reports whether a publication is pending.
func StockSucio(ctx context.Context, rdb *redis.Client) (bool, error) {
	n, err := rdb.Exists(ctx, StockDirtyKey).Result()
	return n > 0, err
}

// LimpiarStockSucio clears the pending flag after a successful publication.
func LimpiarStockSucio(ctx context.Context, rdb *redis.Client) error {
	return rdb.Del(ctx, StockDirtyKey).Err()
}

// InvalidarCachePrecios borra todas las entradas del cache de precios. Se
// llama al crear/editar reglas o tras una importación.
func InvalidarCachePrecios(ctx context.Context, rdb *redis.Client) error {
	iter := rdb.Scan(ctx, 0, CachePrecioPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
