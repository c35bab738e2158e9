package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/redshift-games/tyrian-world/internal/services"
)

// PresetListResponse lists the preset names available for world creation
type PresetListResponse struct {
	Presets []string `json:"presets"`
}

type PresetHandler struct {
	log     *slog.Logger
	storage services.Storage
}

func NewPresetHandler(log *slog.Logger, storage services.Storage) *PresetHandler {
	return &PresetHandler{
		log:     log,
		storage: storage,
	}
}

func (h *PresetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PresetHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/presets"), "/")

	if name == "" {
		h.handleList(w, r)
		return
	}

	if strings.Contains(name, "..") || strings.Contains(name, "/") {
		http.Error(w, "Invalid preset name", http.StatusBadRequest)
		return
	}

	preset, err := h.storage.GetPreset(r.Context(), name)
	if err != nil {
		h.log.Error("Failed to get preset", "error", err, "name", name)
		http.Error(w, "Failed to retrieve preset", http.StatusInternalServerError)
		return
	}
	if preset == nil {
		http.Error(w, "Preset not found", http.StatusNotFound)
		return
	}

	data, err := json.Marshal(preset)
	if err != nil {
		h.log.Error("Failed to marshal preset", "error", err, "name", name)
		http.Error(w, "Failed to process preset", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *PresetHandler) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := h.storage.ListPresets(r.Context())
	if err != nil {
		h.log.Error("Failed to list presets", "error", err)
		http.Error(w, "Failed to list presets", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PresetListResponse{Presets: names}); err != nil {
		h.log.Error("Failed to encode preset list", "error", err)
	}
}
