package worker

// cotizacion_worker.go
// Genera el PDF de la cotización y, si el cliente dejó email, encola el
// envío. Corre en el pool: la creación de la cotización nunca espera al PDF.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
)

// CotizacionJobPayload is the job envelope sent to QueueCotizacion.
type CotizacionJobPayload struct {
	CotizacionID string  `json:"cotizacion_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

// CotizacionWorker processes quote PDF jobs from QueueCotizacion.
type CotizacionWorker struct {
	repo           repository.CotizacionRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	nombreNegocio  string
}

func NewCotizacionWorker(
	repo repository.CotizacionRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
	nombreNegocio string,
) *CotizacionWorker {
	return &CotizacionWorker{
		repo:           repo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

// Process handles a single quote job:
//  1. Fetch the Cotizacion (with items) from DB
//  2. Render the PDF with fpdf
//  3. Update estado → emitida (o error_pdf si no se pudo)
//  4. Optionally enqueue the email job
//
// Devuelve error solo cuando reintentar tiene sentido; un payload roto se
// descarta acá mismo.
func (w *CotizacionWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload CotizacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("cotizacion_worker: invalid payload")
		return nil
	}

	cotID, err := uuid.Parse(payload.CotizacionID)
	if err != nil {
		log.Error().Str("cotizacion_id", payload.CotizacionID).Msg("cotizacion_worker: invalid cotizacion_id")
		return nil
	}

	cot, err := w.repo.FindByID(ctx, cotID)
	if err != nil {
		return fmt.Errorf("cotizacion_worker: cotización %s no encontrada: %w", payload.CotizacionID, err)
	}

	pdfPath, pdfErr := infra.GenerateCotizacionPDF(cot, w.nombreNegocio, w.pdfStoragePath)
	if pdfErr != nil {
		_ = w.repo.ActualizarEstado(ctx, cotID, "error_pdf", nil)
		return fmt.Errorf("cotizacion_worker: PDF de la cotización %d: %w", cot.Numero, pdfErr)
	}

	if err := w.repo.ActualizarEstado(ctx, cotID, "emitida", &pdfPath); err != nil {
		return fmt.Errorf("cotizacion_worker: actualizando estado: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Int64("numero", cot.Numero).Msg("cotizacion_worker: PDF generated")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: fmt.Sprintf("Cotización N° %d — %s", cot.Numero, w.nombreNegocio),
			Body: fmt.Sprintf("Hola %s,\n\nAdjunta encontrarás la cotización solicitada.\nTotal: $%s\n\nVálida por 7 días.",
				cot.ClienteNombre, cot.Total.StringFixed(0)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.ClienteEmail).Msg("cotizacion_worker: failed to enqueue email")
		}
	}

	return nil
}
