package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage defines the interface for generation record persistence and
// option preset lookup
type Storage interface {
	HealthChecker
	Closer

	// SaveRecord stores a generation record under its ID
	SaveRecord(ctx context.Context, rec *session.Record) error

	// LoadRecord retrieves a generation record by ID
	// Returns nil if the record doesn't exist
	LoadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error)

	// DeleteRecord removes a generation record by ID
	DeleteRecord(ctx context.Context, id uuid.UUID) error

	// ListPresets returns the names of the available option presets
	ListPresets(ctx context.Context) ([]string, error)

	// GetPreset loads a named option preset
	// Returns nil if the preset doesn't exist
	GetPreset(ctx context.Context, name string) (*options.Raw, error)
}

// Archive keeps generation records beyond the session store TTL
type Archive interface {
	HealthChecker
	Closer

	// SaveRecord stores or replaces an archived record
	SaveRecord(ctx context.Context, rec *session.Record) error

	// LoadRecord retrieves an archived record by ID
	// Returns nil if the record doesn't exist
	LoadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error)
}
