package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

// recordTTL keeps fresh worlds in Redis long enough for the host and
// players to fetch them; the archive holds them after that.
const recordTTL = 24 * time.Hour

// RedisStorage implements the Storage interface using Redis for
// generation records and the filesystem for option presets
type RedisStorage struct {
	client    *redis.Client
	logger    *slog.Logger
	presetDir string
}

// Ensure RedisStorage implements Storage interface
var _ services.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, presetDir string, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if presetDir == "" {
		presetDir = "./data/presets"
	}

	return &RedisStorage{
		client:    redis.NewClient(opt),
		logger:    logger,
		presetDir: presetDir,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Generation record operations (Redis-backed)

func recordKey(id uuid.UUID) string {
	return "world:" + id.String()
}

func (r *RedisStorage) SaveRecord(ctx context.Context, rec *session.Record) error {
	rec.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		r.logger.Error("Failed to marshal record", "world_id", rec.ID, "error", err)
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := r.client.Set(ctx, recordKey(rec.ID), string(data), recordTTL).Err(); err != nil {
		r.logger.Error("Failed to save record", "world_id", rec.ID, "error", err)
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	cmd := r.client.Get(ctx, recordKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load record", "world_id", id, "error", err)
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	var rec session.Record
	if err := json.Unmarshal([]byte(cmd.Val()), &rec); err != nil {
		r.logger.Error("Failed to unmarshal record", "world_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

func (r *RedisStorage) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, recordKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete record", "world_id", id, "error", err)
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Preset operations (filesystem-backed)

func (r *RedisStorage) ListPresets(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.presetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		r.logger.Error("Failed to read preset directory", "dir", r.presetDir, "error", err)
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStorage) GetPreset(ctx context.Context, name string) (*options.Raw, error) {
	// Preset names never carry path separators
	if name != filepath.Base(name) || name == "" || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid preset name: %q", name)
	}

	path := filepath.Join(r.presetDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Return nil for not found
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	// Strict decode so typos in preset files surface here, not as
	// silently ignored options.
	var raw options.Raw
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		r.logger.Error("Failed to unmarshal preset", "preset", name, "error", err)
		return nil, fmt.Errorf("failed to unmarshal preset %s: %w", name, err)
	}

	return &raw, nil
}
