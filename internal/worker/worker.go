package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/redshift-games/tyrian-world/internal/services/queue"
	queuePkg "github.com/redshift-games/tyrian-world/pkg/queue"
)

const (
	workerTimeout = 5 * time.Second
)

// Worker processes world generation requests from the queue
type Worker struct {
	id          string
	queue       *queue.GenerationQueue
	generator   *Generator
	redisClient *redis.Client
	log         *slog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new worker instance
func New(queueClient *queue.GenerationQueue, generator *Generator, redisClient *redis.Client, log *slog.Logger, workerID string) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	if workerID == "" {
		workerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}

	return &Worker{
		id:          workerID,
		queue:       queueClient,
		generator:   generator,
		redisClient: redisClient,
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins processing requests from the queue
func (w *Worker) Start() error {
	w.log.Info("Worker starting", "worker_id", w.id)

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Worker shutting down", "worker_id", w.id)
			return nil
		default:
			if err := w.processNextRequest(); err != nil {
				w.log.Error("Error processing request", "error", err, "worker_id", w.id)
				// Continue processing even on error
				time.Sleep(1 * time.Second)
			}
		}
	}
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.log.Info("Worker stop requested", "worker_id", w.id)
	w.cancel()
}

// processNextRequest pulls the next request from the queue and processes it
func (w *Worker) processNextRequest() error {
	// Block waiting for next request (timeout after 5 seconds to check for shutdown)
	ctx, cancel := context.WithTimeout(w.ctx, workerTimeout)
	defer cancel()

	req, err := w.queue.BlockingDequeueRequest(ctx, workerTimeout)
	if err != nil {
		// Real error (not timeout/cancellation)
		return fmt.Errorf("failed to dequeue request: %w", err)
	}

	if req == nil {
		// Queue is empty or timeout occurred - this is normal
		return nil
	}

	w.log.Info("Received request from queue",
		"worker_id", w.id,
		"request_id", req.RequestID,
		"type", req.Type,
		"world_id", req.WorldID.String(),
	)

	// Try to acquire the world lock
	locked, err := w.acquireWorldLock(req.WorldID)
	if err != nil {
		return fmt.Errorf("failed to acquire world lock: %w", err)
	}
	if !locked {
		// Another worker is generating this world
		// Re-queue at the end and try next request
		w.log.Info("World already locked, re-queueing request",
			"worker_id", w.id,
			"request_id", req.RequestID,
			"world_id", req.WorldID.String(),
		)
		if err := w.queue.EnqueueRequest(w.ctx, req); err != nil {
			return fmt.Errorf("failed to re-queue request: %w", err)
		}
		return nil
	}

	// Process the request, blocking the worker until done
	defer w.releaseWorldLock(req.WorldID)
	return w.processRequest(req)
}

// acquireWorldLock attempts to acquire a lock for a world
// Returns true if lock was acquired, false if already locked
func (w *Worker) acquireWorldLock(worldID uuid.UUID) (bool, error) {
	lockKey := fmt.Sprintf("world-lock:%s", worldID.String())

	result, err := w.redisClient.SetNX(w.ctx, lockKey, w.id, 30*time.Second).Result()
	if err != nil {
		return false, err
	}

	return result, nil
}

// releaseWorldLock releases the lock for a world
func (w *Worker) releaseWorldLock(worldID uuid.UUID) {
	lockKey := fmt.Sprintf("world-lock:%s", worldID.String())

	// Only delete if we own the lock
	script := redis.NewScript(`
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("del", KEYS[1])
		else
			return 0
		end
	`)

	if err := script.Run(w.ctx, w.redisClient, []string{lockKey}, w.id).Err(); err != nil {
		w.log.Error("Failed to release world lock", "error", err, "world_id", worldID.String())
	}
}

// processRequest processes a single request using the Generator
func (w *Worker) processRequest(req *queuePkg.Request) error {
	w.log.Info("Processing request",
		"worker_id", w.id,
		"request_id", req.RequestID,
		"type", req.Type,
		"world_id", req.WorldID.String(),
	)

	start := time.Now()

	switch req.Type {
	case queuePkg.RequestTypeGenerate:
		if err := w.generator.Process(w.ctx, req); err != nil {
			w.log.Error("Failed to generate world",
				"error", err,
				"request_id", req.RequestID,
				"world_id", req.WorldID.String(),
			)
			return fmt.Errorf("failed to process generation request: %w", err)
		}

		w.log.Info("Generation request processed successfully",
			"worker_id", w.id,
			"request_id", req.RequestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)

	default:
		return fmt.Errorf("unknown request type: %s", req.Type)
	}

	return nil
}
