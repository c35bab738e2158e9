package queue

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/options"
)

func TestRequestRoundTrip(t *testing.T) {
	enabled := true
	req := &Request{
		RequestID: "req-1",
		Type:      RequestTypeGenerate,
		WorldID:   uuid.New(),
		Options: &options.Raw{
			Episode1:                &options.Choice{Name: "goal", IsName: true},
			EnableTyrian2000Support: &enabled,
		},
		Seed:       "HEXAGON",
		EnqueuedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := req.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if got.RequestID != req.RequestID {
		t.Errorf("RequestID = %q, want %q", got.RequestID, req.RequestID)
	}
	if got.Type != RequestTypeGenerate {
		t.Errorf("Type = %q, want %q", got.Type, RequestTypeGenerate)
	}
	if got.WorldID != req.WorldID {
		t.Errorf("WorldID = %s, want %s", got.WorldID, req.WorldID)
	}
	if got.Seed != "HEXAGON" {
		t.Errorf("Seed = %q, want %q", got.Seed, "HEXAGON")
	}
	if !got.EnqueuedAt.Equal(req.EnqueuedAt) {
		t.Errorf("EnqueuedAt = %v, want %v", got.EnqueuedAt, req.EnqueuedAt)
	}
	if got.Options == nil {
		t.Fatal("Options dropped in round trip")
	}
	if got.Options.Episode1 == nil || got.Options.Episode1.Name != "goal" {
		t.Errorf("Options.Episode1 = %+v, want name %q", got.Options.Episode1, "goal")
	}
	if got.Options.EnableTyrian2000Support == nil || !*got.Options.EnableTyrian2000Support {
		t.Error("Options.EnableTyrian2000Support not preserved")
	}
}

func TestRequestWorldIDAsString(t *testing.T) {
	req := &Request{
		RequestID: "req-2",
		Type:      RequestTypeGenerate,
		WorldID:   uuid.MustParse("11111111-2222-3333-4444-555555555555"),
	}

	data, err := req.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(string(data), `"world_id":"11111111-2222-3333-4444-555555555555"`) {
		t.Errorf("world_id not serialized as string: %s", data)
	}
}

func TestFromJSONRejectsBadWorldID(t *testing.T) {
	_, err := FromJSON([]byte(`{"request_id":"x","type":"generate","world_id":"not-a-uuid"}`))
	if err == nil {
		t.Fatal("expected error for malformed world_id")
	}
}
