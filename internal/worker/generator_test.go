package worker

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/internal/storage"
	"github.com/redshift-games/tyrian-world/pkg/options"
	queuePkg "github.com/redshift-games/tyrian-world/pkg/queue"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func TestGeneratorProcessCompletesRecord(t *testing.T) {
	mockSto := storage.NewMockStorage()
	archive := storage.NewMockStorage()
	g := NewGenerator(mockSto, archive, testLogger())

	rec := session.NewRecord(&options.Raw{}, "fixed")
	if err := mockSto.SaveRecord(context.Background(), rec); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	req := &queuePkg.Request{
		RequestID: "req-1",
		Type:      queuePkg.RequestTypeGenerate,
		WorldID:   rec.ID,
		Options:   rec.Options,
		Seed:      "fixed",
	}

	if err := g.Process(context.Background(), req); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	got, err := mockSto.LoadRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Failed to load record: %v", err)
	}
	if got == nil {
		t.Fatal("Record missing after processing")
	}

	if got.Status != session.StatusComplete {
		t.Errorf("Expected status %s, got %s", session.StatusComplete, got.Status)
	}
	if got.Seed != "fixed" {
		t.Errorf("Expected seed 'fixed', got %q", got.Seed)
	}
	if got.LocationCount == 0 {
		t.Error("Expected a nonzero location count")
	}
	if got.PoolSize == 0 {
		t.Error("Expected a nonzero pool size")
	}
	if len(got.SlotData) == 0 {
		t.Error("Expected slot data to be filled")
	}
	if got.Spoiler == "" {
		t.Error("Expected a spoiler log")
	}
	if got.CompletedAt == nil {
		t.Error("Expected a completion timestamp")
	}

	archived, err := archive.LoadRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Failed to load archived record: %v", err)
	}
	if archived == nil {
		t.Error("Expected the record to be archived")
	} else if archived.Status != session.StatusComplete {
		t.Errorf("Expected archived status %s, got %s", session.StatusComplete, archived.Status)
	}
}

func TestGeneratorProcessWithoutRecord(t *testing.T) {
	// Requests enqueued out of band have no record in storage yet.
	mockSto := storage.NewMockStorage()
	g := NewGenerator(mockSto, nil, testLogger())

	req := &queuePkg.Request{
		RequestID: "req-2",
		Type:      queuePkg.RequestTypeGenerate,
		WorldID:   uuid.New(),
		Seed:      "trent",
	}

	if err := g.Process(context.Background(), req); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	got, err := mockSto.LoadRecord(context.Background(), req.WorldID)
	if err != nil {
		t.Fatalf("Failed to load record: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a record to be created for the request")
	}
	if got.ID != req.WorldID {
		t.Errorf("Expected record ID %s, got %s", req.WorldID, got.ID)
	}
	if got.Status != session.StatusComplete {
		t.Errorf("Expected status %s, got %s", session.StatusComplete, got.Status)
	}
	if got.Seed != "trent" {
		t.Errorf("Expected seed 'trent', got %q", got.Seed)
	}
}

func TestGeneratorProcessInvalidOptions(t *testing.T) {
	mockSto := storage.NewMockStorage()
	g := NewGenerator(mockSto, nil, testLogger())

	money := -5
	req := &queuePkg.Request{
		RequestID: "req-3",
		Type:      queuePkg.RequestTypeGenerate,
		WorldID:   uuid.New(),
		Options:   &options.Raw{StartingMoney: &money},
	}

	if err := g.Process(context.Background(), req); err == nil {
		t.Fatal("Expected Process to fail on invalid options")
	}

	got, err := mockSto.LoadRecord(context.Background(), req.WorldID)
	if err != nil {
		t.Fatalf("Failed to load record: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a failed record to be stored")
	}
	if got.Status != session.StatusFailed {
		t.Errorf("Expected status %s, got %s", session.StatusFailed, got.Status)
	}
	if got.Error == "" {
		t.Error("Expected the record to carry the failure cause")
	}
}

func TestGeneratorRollsSeedWhenEmpty(t *testing.T) {
	mockSto := storage.NewMockStorage()
	g := NewGenerator(mockSto, nil, testLogger())

	req := &queuePkg.Request{
		RequestID: "req-4",
		Type:      queuePkg.RequestTypeGenerate,
		WorldID:   uuid.New(),
	}

	if err := g.Process(context.Background(), req); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	got, err := mockSto.LoadRecord(context.Background(), req.WorldID)
	if err != nil {
		t.Fatalf("Failed to load record: %v", err)
	}
	if got == nil {
		t.Fatal("Record missing after processing")
	}
	if got.Seed == "" {
		t.Error("Expected a seed to be rolled")
	}
	if got.Status != session.StatusComplete {
		t.Errorf("Expected status %s, got %s", session.StatusComplete, got.Status)
	}
}
