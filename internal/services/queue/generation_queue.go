package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/redshift-games/tyrian-world/pkg/queue"
)

// requestsKey is the global list every generation request flows through.
// Workers compete on it; world locks keep one world per worker.
const requestsKey = "generation-requests"

// GenerationQueue manages the shared queue of world generation requests
type GenerationQueue struct {
	client *Client
}

func NewGenerationQueue(client *Client) *GenerationQueue {
	return &GenerationQueue{
		client: client,
	}
}

// EnqueueRequest adds a generation request to the global queue
func (gq *GenerationQueue) EnqueueRequest(ctx context.Context, req *queue.Request) error {
	data, err := req.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize request: %w", err)
	}

	if err := gq.client.rdb.RPush(ctx, requestsKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue request: %w", err)
	}
	return nil
}

// DequeueRequest removes and returns the next request from the global queue
// Returns nil if the queue is empty
func (gq *GenerationQueue) DequeueRequest(ctx context.Context) (*queue.Request, error) {
	result, err := gq.client.rdb.LPop(ctx, requestsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Queue is empty
		}
		return nil, fmt.Errorf("failed to dequeue request: %w", err)
	}

	req, err := queue.FromJSON([]byte(result))
	if err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	return req, nil
}

// BlockingDequeueRequest blocks until a request is available or the timeout
// elapses. Returns nil on timeout or context cancellation so pollers can
// check for shutdown and come back.
func (gq *GenerationQueue) BlockingDequeueRequest(ctx context.Context, timeout time.Duration) (*queue.Request, error) {
	result, err := gq.client.rdb.BLPop(ctx, timeout, requestsKey).Result()
	if err != nil {
		if err == redis.Nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue request: %w", err)
	}

	// BLPop returns [key, value]
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BLPop result: %v", result)
	}

	req, err := queue.FromJSON([]byte(result[1]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	return req, nil
}

// QueueDepth returns the number of requests in the global queue
func (gq *GenerationQueue) QueueDepth(ctx context.Context) (int64, error) {
	count, err := gq.client.rdb.LLen(ctx, requestsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue depth: %w", err)
	}
	return count, nil
}
