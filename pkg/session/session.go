// Package session tracks world generation requests from submission to
// stored result.
package session

import (
	"bytes"
	"time"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/world"
)

// Status describes where a generation request is in its lifecycle.
type Status string

const (
	StatusQueued   Status = "queued"
	StatusWorking  Status = "working"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Record is one world generation request and, once generated, its
// outputs. Records live in the session store while fresh and in the
// archive afterward.
type Record struct {
	ID      uuid.UUID    `json:"id"`
	Status  Status       `json:"status"`
	Seed    string       `json:"seed,omitempty"`
	Options *options.Raw `json:"options,omitempty"`

	// Error carries the failure reason for StatusFailed records.
	Error string `json:"error,omitempty"`

	LocationCount int `json:"location_count,omitempty"`
	PoolSize      int `json:"pool_size,omitempty"`
	MoneyTarget   int `json:"money_target,omitempty"`

	SlotData map[string]any `json:"slot_data,omitempty"`
	Spoiler  string         `json:"spoiler,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewRecord creates a queued record for the given raw options and seed.
// An empty seed means the generator rolls one.
func NewRecord(opts *options.Raw, seed string) *Record {
	return &Record{
		ID:        uuid.New(),
		Status:    StatusQueued,
		Seed:      seed,
		Options:   opts,
		CreatedAt: time.Now().UTC(),
	}
}

// Complete fills the record with the generated world's outputs and
// marks it complete.
func (r *Record) Complete(w *world.World) error {
	data, err := w.SlotData(nil, false)
	if err != nil {
		return err
	}

	var spoiler bytes.Buffer
	if err := w.WriteSpoiler(&spoiler, nil); err != nil {
		return err
	}

	now := time.Now().UTC()
	r.Status = StatusComplete
	r.Seed = w.Seed
	r.Error = ""
	r.LocationCount = len(w.Locations)
	r.PoolSize = len(w.Pool)
	r.MoneyTarget = w.TotalMoneyNeeded
	r.SlotData = data
	r.Spoiler = spoiler.String()
	r.CompletedAt = &now
	return nil
}

// MarkFailed marks the record failed with the given cause.
func (r *Record) MarkFailed(cause error) {
	now := time.Now().UTC()
	r.Status = StatusFailed
	r.Error = cause.Error()
	r.CompletedAt = &now
}
