package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/pkg/session"
)

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func getRecord(client *http.Client, baseURL string, worldID uuid.UUID) (*session.Record, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/worlds/%s", baseURL, worldID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get world: %s", errorResp.Error)
	}

	var record session.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to parse world response: %w", err)
	}
	return &record, nil
}

// createWorldRequest matches the API request structure
type createWorldRequest struct {
	Preset string `json:"preset,omitempty"`
	Sync   bool   `json:"sync"`
}

// createWorld asks the API to generate a world inline, optionally from
// a named preset.
func createWorld(client *http.Client, baseURL string, preset string) (*session.Record, error) {
	req := createWorldRequest{
		Preset: preset,
		Sync:   true,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/worlds",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to create world: %s", errorResp.Error)
	}

	var record session.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to parse world response: %w", err)
	}

	return &record, nil
}

func listPresets(client *http.Client, baseURL string) ([]string, error) {
	resp, err := client.Get(baseURL + "/v1/presets")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Presets []string `json:"presets"`
	}
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, err
	}
	return listResp.Presets, nil
}
