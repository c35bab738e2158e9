package queue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/options"
)

// RequestType identifies the type of request in the queue
type RequestType string

const (
	// RequestTypeGenerate asks the worker to generate a world from raw options
	RequestTypeGenerate RequestType = "generate"
)

// Request represents a queued world-generation job
type Request struct {
	RequestID string      `json:"request_id"`
	Type      RequestType `json:"type"`
	WorldID   uuid.UUID   `json:"world_id"`

	// Options holds the raw player options exactly as submitted; the
	// worker resolves them so option errors surface on the session.
	Options *options.Raw `json:"options"`

	// Seed is the textual seed. Empty means the worker rolls one.
	Seed string `json:"seed,omitempty"`

	EnqueuedAt time.Time `json:"enqueued_at"`
}

// MarshalJSON serializes the request to JSON for Redis storage
func (r *Request) MarshalJSON() ([]byte, error) {
	type Alias Request
	return json.Marshal(&struct {
		WorldID string `json:"world_id"`
		*Alias
	}{
		WorldID: r.WorldID.String(),
		Alias:   (*Alias)(r),
	})
}

// UnmarshalJSON deserializes the request from JSON in Redis
func (r *Request) UnmarshalJSON(data []byte) error {
	type Alias Request
	aux := &struct {
		WorldID string `json:"world_id"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	worldID, err := uuid.Parse(aux.WorldID)
	if err != nil {
		return err
	}

	r.WorldID = worldID
	return nil
}

// ToJSON converts the request to JSON bytes for Redis
func (r *Request) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// FromJSON parses a request from JSON bytes
func FromJSON(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
