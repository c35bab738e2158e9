//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redshift-games/tyrian-world/pkg/session"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

func TestMain(m *testing.M) {
	fmt.Printf("Running Tyrian World Integration Tests\n")
	fmt.Printf("   API Base URL: %s\n", apiBaseURL())

	code := m.Run()
	os.Exit(code)
}

func apiBaseURL() string {
	url := os.Getenv("API_BASE_URL")
	if url == "" {
		url = "http://localhost:8080" // Default to localhost
	}
	return url
}

func getIntEnv(name string, defaultValue int) int {
	str := os.Getenv(name)
	if str == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}

	return val
}

// postJSON sends a JSON body and decodes the response into out when the
// status matches. The raw body is returned for error reporting.
func postJSON(t *testing.T, path string, body any, wantStatus int, out any) []byte {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	resp, err := httpClient.Post(apiBaseURL()+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s returned status %d, want %d: %s", path, resp.StatusCode, wantStatus, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v", path, err)
		}
	}

	return raw
}

func getJSON(t *testing.T, path string, wantStatus int, out any) []byte {
	t.Helper()

	resp, err := httpClient.Get(apiBaseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s returned status %d, want %d: %s", path, resp.StatusCode, wantStatus, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v", path, err)
		}
	}

	return raw
}

func TestHealthCheck(t *testing.T) {
	resp, err := httpClient.Get(apiBaseURL() + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("GET /health returned unexpected status %d", resp.StatusCode)
	}

	var health struct {
		Status     string                 `json:"status"`
		Service    string                 `json:"service"`
		Components map[string]interface{} `json:"components"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}

	if health.Service != "tyrian-world" {
		t.Errorf("Service = %q, want tyrian-world", health.Service)
	}
	if _, ok := health.Components["redis"]; !ok {
		t.Error("Health response missing redis component")
	}
	if resp.StatusCode == http.StatusServiceUnavailable {
		t.Logf("Service reported degraded: %v", health.Components)
	}
}

func TestWorldGenerationFlow(t *testing.T) {
	// Generate synchronously so the flow does not depend on a worker
	var rec session.Record
	postJSON(t, "/v1/worlds", map[string]any{
		"seed": "INTEGRATION",
		"sync": true,
		"options": map[string]any{
			"episode_1": "goal",
			"episode_2": "on",
		},
	}, http.StatusCreated, &rec)

	if rec.Status != session.StatusComplete {
		t.Fatalf("Created world has status %q, want complete", rec.Status)
	}
	if rec.Seed != "INTEGRATION" {
		t.Errorf("Seed = %q, want INTEGRATION", rec.Seed)
	}
	if rec.LocationCount == 0 || rec.PoolSize == 0 {
		t.Errorf("Expected nonzero location and pool counts, got %d and %d", rec.LocationCount, rec.PoolSize)
	}
	if rec.LocationCount != rec.PoolSize {
		t.Errorf("Pool size %d does not match location count %d", rec.PoolSize, rec.LocationCount)
	}
	if len(rec.SlotData) == 0 {
		t.Error("Expected slot data in completed record")
	}

	// Read it back
	var loaded session.Record
	getJSON(t, "/v1/worlds/"+rec.ID.String(), http.StatusOK, &loaded)
	if loaded.Seed != rec.Seed {
		t.Errorf("Loaded seed = %q, want %q", loaded.Seed, rec.Seed)
	}

	// Spoiler log is plain text
	resp, err := httpClient.Get(apiBaseURL() + "/v1/worlds/" + rec.ID.String() + "/spoiler")
	if err != nil {
		t.Fatalf("GET spoiler failed: %v", err)
	}
	spoiler, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET spoiler returned status %d: %s", resp.StatusCode, spoiler)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Spoiler Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(string(spoiler), "Seed: INTEGRATION") {
		t.Errorf("Spoiler log does not mention the seed:\n%s", spoiler)
	}

	// With no items toggled, the opening sphere should still be nonempty
	var reach struct {
		Locations []string `json:"locations"`
		Beatable  bool     `json:"beatable"`
	}
	postJSON(t, "/v1/worlds/"+rec.ID.String()+"/reachable", map[string]any{
		"items": map[string]int{},
	}, http.StatusOK, &reach)
	if len(reach.Locations) == 0 {
		t.Error("Expected at least one location in logic with only the starting inventory")
	}
	if reach.Beatable {
		t.Error("World should not be beatable with only the starting inventory")
	}

	// Delete evicts the hot copy; the archived copy may still serve reads
	req, _ := http.NewRequest(http.MethodDelete, apiBaseURL()+"/v1/worlds/"+rec.ID.String(), nil)
	delResp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("DELETE returned status %d, want 204", delResp.StatusCode)
	}
}

func TestDeterministicGeneration(t *testing.T) {
	body := map[string]any{
		"seed": "REPEATABLE",
		"sync": true,
		"options": map[string]any{
			"shop_mode":      "standard",
			"starting_money": 2000,
		},
	}

	var first, second session.Record
	postJSON(t, "/v1/worlds", body, http.StatusCreated, &first)
	postJSON(t, "/v1/worlds", body, http.StatusCreated, &second)

	if first.ID == second.ID {
		t.Fatal("Expected distinct world IDs for separate requests")
	}
	if first.Spoiler != second.Spoiler {
		t.Error("Same seed and options produced different spoiler logs")
	}
	if first.PoolSize != second.PoolSize {
		t.Errorf("Same seed produced pool sizes %d and %d", first.PoolSize, second.PoolSize)
	}
}

func TestAsyncGenerationFlow(t *testing.T) {
	// Queued generation requires a running worker
	var rec session.Record
	postJSON(t, "/v1/worlds", map[string]any{}, http.StatusAccepted, &rec)

	if rec.Status != session.StatusQueued {
		t.Fatalf("Created world has status %q, want queued", rec.Status)
	}

	timeout := time.Duration(getIntEnv("TEST_TIMEOUT_SECONDS", 60)) * time.Second
	deadline := time.Now().Add(timeout)

	for {
		var loaded session.Record
		getJSON(t, "/v1/worlds/"+rec.ID.String(), http.StatusOK, &loaded)

		switch loaded.Status {
		case session.StatusComplete:
			if loaded.Seed == "" {
				t.Error("Completed world has no seed")
			}
			if loaded.Spoiler == "" {
				t.Error("Completed world has no spoiler log")
			}
			return
		case session.StatusFailed:
			t.Fatalf("Generation failed: %s", loaded.Error)
		}

		if time.Now().After(deadline) {
			t.Fatalf("World still %q after %v; is a worker running?", loaded.Status, timeout)
		}
		time.Sleep(2 * time.Second)
	}
}

func TestPresetFlow(t *testing.T) {
	var list struct {
		Presets []string `json:"presets"`
	}
	getJSON(t, "/v1/presets", http.StatusOK, &list)

	if len(list.Presets) == 0 {
		t.Skip("No presets installed")
	}

	preset := list.Presets[0]
	getJSON(t, "/v1/presets/"+preset, http.StatusOK, nil)

	var rec session.Record
	postJSON(t, "/v1/worlds", map[string]any{
		"preset": preset,
		"sync":   true,
	}, http.StatusCreated, &rec)

	if rec.Status != session.StatusComplete {
		t.Errorf("Preset world has status %q, want complete", rec.Status)
	}
}

func TestRequestValidation(t *testing.T) {
	// Unknown preset
	postJSON(t, "/v1/worlds", map[string]any{
		"preset": "does-not-exist",
		"sync":   true,
	}, http.StatusBadRequest, nil)

	// Preset and options together
	postJSON(t, "/v1/worlds", map[string]any{
		"preset":  "anything",
		"options": map[string]any{},
	}, http.StatusBadRequest, nil)

	// Options that fail validation
	postJSON(t, "/v1/worlds", map[string]any{
		"sync": true,
		"options": map[string]any{
			"starting_money": -100,
		},
	}, http.StatusBadRequest, nil)

	// Malformed world ID
	getJSON(t, "/v1/worlds/not-a-uuid", http.StatusBadRequest, nil)

	// Unknown world
	getJSON(t, "/v1/worlds/00000000-0000-0000-0000-000000000000", http.StatusNotFound, nil)
}
