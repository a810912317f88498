package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// StockPublicado es una línea del snapshot de inventario que se publica al
// portal del distribuidor mayorista.
type StockPublicado struct {
	SKU        string  `json:"sku,omitempty"`
	Marca      string  `json:"marca"`
	Modelo     string  `json:"modelo"`
	MedidaFull string  `json:"medida"`
	Precio     string  `json:"precio"` // decimal como string, entero
	Stock      int     `json:"stock"`
	Rin        float64 `json:"rin,omitempty"`
}

// SnapshotStock is the full publication payload.
type SnapshotStock struct {
	Negocio   string           `json:"negocio"`
	Items     []StockPublicado `json:"items"`
	GeneradoA string           `json:"generado_a"` // RFC 3339
}

// RespuestaDistribuidor is what the portal answers after ingesting a snapshot.
type RespuestaDistribuidor struct {
	Recibidos  int    `json:"recibidos"`
	Rechazados int    `json:"rechazados"`
	Estado     string `json:"estado"` // "ok" | "parcial" | "error"
}

// DistribuidorClient publica el inventario con precio ya resuelto al API del
// distribuidor. Las fallas del portal nunca tocan el flujo principal: el cron
// de publicación las absorbe detrás del circuit breaker.
type DistribuidorClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDistribuidorClient(baseURL, apiKey string) *DistribuidorClient {
	return &DistribuidorClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// PublicarStock sends a POST with the full snapshot and returns the ingest
// summary.
func (c *DistribuidorClient) PublicarStock(ctx context.Context, snapshot SnapshotStock) (*RespuestaDistribuidor, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("distribuidor: marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stock", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("distribuidor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("distribuidor: portal inalcanzable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("distribuidor: portal devolvió %d", resp.StatusCode)
	}

	var result RespuestaDistribuidor
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("distribuidor: decode response: %w", err)
	}
	return &result, nil
}
