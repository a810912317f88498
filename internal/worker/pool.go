package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueCotizacion = "jobs:cotizacion"
	QueueEmail      = "jobs:email"

	// MaxJobAttempts: al superar esto el trabajo se mueve a la DLQ.
	MaxJobAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueCotizacion pushes a quote PDF job to Redis.
func (d *Dispatcher) EnqueueCotizacion(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueCotizacion, "cotizacion", payload)
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers reúne los procesadores concretos por tipo de trabajo.
type Handlers struct {
	Cotizacion *CotizacionWorker
	Email      *EmailWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers Handlers, id int) {
	queues := []string{QueueCotizacion, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

// processJob despacha al handler según el tipo. Un error reencola el trabajo
// con el contador incrementado; agotados los intentos pasa a la DLQ.
func processJob(ctx context.Context, rdb *redis.Client, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch job.Type {
	case "cotizacion":
		err = handlers.Cotizacion.Process(ctx, job.Payload)
	case "email":
		err = handlers.Email.Process(ctx, job.Payload)
	default:
		log.Error().Str("type", job.Type).Str("queue", queue).Msg("unknown job type — dropping")
		return
	}

	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= MaxJobAttempts {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}

	encoded, marshalErr := json.Marshal(job)
	if marshalErr != nil {
		log.Error().Err(marshalErr).Str("type", job.Type).Msg("failed to re-marshal job for retry")
		return
	}
	if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
		log.Error().Err(pushErr).Str("type", job.Type).Msg("failed to requeue job")
		return
	}
	log.Warn().Err(err).
		Str("type", job.Type).
		Int("attempt", job.Attempts).
		Msg("job failed, requeued")
}
