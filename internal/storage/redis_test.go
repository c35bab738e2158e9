package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis, string) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	presetDir := t.TempDir()
	st, err := NewRedisStorage("redis://"+mr.Addr(), presetDir, testLogger())
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return st, mr, presetDir
}

func TestSaveLoadDeleteRecord(t *testing.T) {
	st, mr, _ := setupTestStorage(t)
	ctx := context.Background()

	money := 25000
	rec := session.NewRecord(&options.Raw{StartingMoney: &money}, "alpha")
	if err := st.SaveRecord(ctx, rec); err != nil {
		t.Fatalf("SaveRecord error: %v", err)
	}
	if rec.UpdatedAt.IsZero() {
		t.Error("SaveRecord did not stamp UpdatedAt")
	}

	// Records carry a TTL so stale sessions age out of Redis
	if ttl := mr.TTL("world:" + rec.ID.String()); ttl != recordTTL {
		t.Errorf("record TTL = %v, want %v", ttl, recordTTL)
	}

	loaded, err := st.LoadRecord(ctx, rec.ID)
	if err != nil {
		t.Fatalf("LoadRecord error: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadRecord returned nil for a saved record")
	}
	if loaded.ID != rec.ID {
		t.Errorf("loaded ID = %s, want %s", loaded.ID, rec.ID)
	}
	if loaded.Status != session.StatusQueued {
		t.Errorf("loaded status = %s, want %s", loaded.Status, session.StatusQueued)
	}
	if loaded.Seed != "alpha" {
		t.Errorf("loaded seed = %q, want alpha", loaded.Seed)
	}
	if loaded.Options == nil || loaded.Options.StartingMoney == nil || *loaded.Options.StartingMoney != money {
		t.Errorf("loaded options lost starting money: %+v", loaded.Options)
	}

	if err := st.DeleteRecord(ctx, rec.ID); err != nil {
		t.Fatalf("DeleteRecord error: %v", err)
	}
	gone, err := st.LoadRecord(ctx, rec.ID)
	if err != nil {
		t.Fatalf("LoadRecord after delete error: %v", err)
	}
	if gone != nil {
		t.Error("record still present after delete")
	}
}

func TestLoadRecordNotFound(t *testing.T) {
	st, _, _ := setupTestStorage(t)

	rec, err := st.LoadRecord(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("LoadRecord error: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unknown ID, got %+v", rec)
	}
}

func TestPresets(t *testing.T) {
	st, _, presetDir := setupTestStorage(t)
	ctx := context.Background()

	writePreset := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(presetDir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write preset: %v", err)
		}
	}
	writePreset("default.json", `{}`)
	writePreset("five_episodes.json", `{"enable_tyrian_2000_support": true, "episode_5": "goal"}`)
	writePreset("notes.txt", "not a preset")

	names, err := st.ListPresets(ctx)
	if err != nil {
		t.Fatalf("ListPresets error: %v", err)
	}
	if len(names) != 2 || names[0] != "default" || names[1] != "five_episodes" {
		t.Errorf("ListPresets = %v, want [default five_episodes]", names)
	}

	raw, err := st.GetPreset(ctx, "five_episodes")
	if err != nil {
		t.Fatalf("GetPreset error: %v", err)
	}
	if raw == nil {
		t.Fatal("GetPreset returned nil for an existing preset")
	}
	if raw.EnableTyrian2000Support == nil || !*raw.EnableTyrian2000Support {
		t.Error("preset lost enable_tyrian_2000_support")
	}
	if raw.Episode5 == nil || raw.Episode5.Name != "goal" {
		t.Errorf("preset episode_5 = %+v, want goal", raw.Episode5)
	}

	missing, err := st.GetPreset(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("GetPreset error for missing preset: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing preset")
	}
}

func TestGetPresetRejectsUnknownFields(t *testing.T) {
	st, _, presetDir := setupTestStorage(t)

	body := `{"starting_mony": 1000}`
	if err := os.WriteFile(filepath.Join(presetDir, "typo.json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	if _, err := st.GetPreset(context.Background(), "typo"); err == nil {
		t.Fatal("GetPreset accepted a preset with an unknown field")
	}
}

func TestGetPresetRejectsPathTraversal(t *testing.T) {
	st, _, _ := setupTestStorage(t)

	for _, name := range []string{"../secrets", "a/b", ".."} {
		if _, err := st.GetPreset(context.Background(), name); err == nil {
			t.Errorf("GetPreset accepted %q", name)
		}
	}
}
