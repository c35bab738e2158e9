package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/pkg/options"
	queuePkg "github.com/redshift-games/tyrian-world/pkg/queue"
	"github.com/redshift-games/tyrian-world/pkg/session"
	"github.com/redshift-games/tyrian-world/pkg/world"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Enqueuer submits generation requests for asynchronous processing
type Enqueuer interface {
	EnqueueRequest(ctx context.Context, req *queuePkg.Request) error
	QueueDepth(ctx context.Context) (int64, error)
}

// CreateWorldRequest defines the request body for generating a world.
// Options and Preset are mutually exclusive; both empty means defaults.
type CreateWorldRequest struct {
	Seed    string       `json:"seed,omitempty"`
	Options *options.Raw `json:"options,omitempty"`
	Preset  string       `json:"preset,omitempty"`

	// Sync generates inline instead of queueing. Requests are also
	// generated inline when no queue is configured.
	Sync bool `json:"sync,omitempty"`
}

// ReachableRequest lists the item names a player holds, with counts
type ReachableRequest struct {
	Items map[string]int `json:"items"`
}

// ReachableResponse lists what is in logic for that inventory
type ReachableResponse struct {
	Locations []string `json:"locations"`
	Events    []string `json:"events,omitempty"`
	Beatable  bool     `json:"beatable"`
}

type WorldHandler struct {
	storage services.Storage
	archive services.Archive
	queue   Enqueuer
	logger  *slog.Logger
}

// NewWorldHandler creates a world handler. archive and queue may be nil;
// without a queue every request generates synchronously.
func NewWorldHandler(logger *slog.Logger, storage services.Storage, archive services.Archive, queue Enqueuer) *WorldHandler {
	return &WorldHandler{
		logger:  logger,
		storage: storage,
		archive: archive,
		queue:   queue,
	}
}

// ServeHTTP handles HTTP requests for world generation
// Routes:
// POST /v1/worlds                 - Generate a world (queued or inline)
// GET /v1/worlds/{id}             - Read a generation record by ID
// DELETE /v1/worlds/{id}          - Delete a generation record by ID
// GET /v1/worlds/{id}/spoiler     - Read the spoiler log as plain text
// POST /v1/worlds/{id}/reachable  - List in-logic locations for an inventory
func (h *WorldHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/worlds"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.logger.Warn("Method not allowed for worlds endpoint", "method", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			response := ErrorResponse{
				Error: "Method not allowed. Supported methods: POST",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.Split(path, "/")
	worldID, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid world ID", "id", parts[0], "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid world ID format",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.handleRead(w, r, worldID)

	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.handleDelete(w, r, worldID)

	case len(parts) == 2 && parts[1] == "spoiler" && r.Method == http.MethodGet:
		h.handleSpoiler(w, r, worldID)

	case len(parts) == 2 && parts[1] == "reachable" && r.Method == http.MethodPost:
		h.handleReachable(w, r, worldID)

	case len(parts) == 1 || (len(parts) == 2 && (parts[1] == "spoiler" || parts[1] == "reachable")):
		h.logger.Warn("Method not allowed for worlds endpoint", "method", r.Method, "path", r.URL.Path)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "Not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
	}
}

func (h *WorldHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new world")

	var req CreateWorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if req.Preset != "" && req.Options != nil {
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "preset and options are mutually exclusive",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	opts := req.Options
	if req.Preset != "" {
		preset, err := h.storage.GetPreset(r.Context(), req.Preset)
		if err != nil {
			h.logger.Error("Failed to load preset", "preset", req.Preset, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			response := ErrorResponse{
				Error: "Failed to load preset",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		if preset == nil {
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Unknown preset: " + req.Preset,
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		opts = preset
	}
	if opts == nil {
		opts = &options.Raw{}
	}

	// Resolve now so option errors come back on the request instead of
	// surfacing later as a failed record.
	set, err := opts.Resolve()
	if err != nil {
		h.logger.Warn("Options failed to resolve", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: err.Error(),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	rec := session.NewRecord(opts, req.Seed)

	if h.queue == nil || req.Sync {
		h.generateInline(w, r, rec, set)
		return
	}

	if err := h.storage.SaveRecord(r.Context(), rec); err != nil {
		h.logger.Error("Failed to save new record", "error", err, "world_id", rec.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to create world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	queueReq := &queuePkg.Request{
		RequestID:  uuid.New().String(),
		Type:       queuePkg.RequestTypeGenerate,
		WorldID:    rec.ID,
		Options:    opts,
		Seed:       req.Seed,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := h.queue.EnqueueRequest(r.Context(), queueReq); err != nil {
		h.logger.Error("Failed to enqueue generation request", "error", err, "world_id", rec.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to enqueue generation request",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	h.logger.Info("World generation queued", "world_id", rec.ID.String(), "request_id", queueReq.RequestID)
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("Failed to encode record response", "error", err)
	}
}

// generateInline builds the world on the request goroutine. Generation
// is sub-second, so the sync path stays well inside server timeouts.
func (h *WorldHandler) generateInline(w http.ResponseWriter, r *http.Request, rec *session.Record, set *options.Set) {
	seed := rec.Seed
	if seed == "" {
		seed = world.RandomSeed()
		rec.Seed = seed
	}

	gw, err := world.Generate(r.Context(), set, seed)
	if err != nil {
		h.logger.Error("Failed to generate world", "error", err, "world_id", rec.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to generate world: " + err.Error(),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if err := rec.Complete(gw); err != nil {
		h.logger.Error("Failed to assemble world outputs", "error", err, "world_id", rec.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to assemble world outputs",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if err := h.storage.SaveRecord(r.Context(), rec); err != nil {
		h.logger.Error("Failed to save record", "error", err, "world_id", rec.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to save world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	if h.archive != nil {
		if err := h.archive.SaveRecord(r.Context(), rec); err != nil {
			h.logger.Error("Failed to archive record", "error", err, "world_id", rec.ID.String())
		}
	}

	h.logger.Info("World generated", "world_id", rec.ID.String(), "seed", rec.Seed, "locations", rec.LocationCount)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("Failed to encode record response", "error", err)
	}
}

// loadRecord reads a record from the session store, falling back to the
// archive for worlds that already aged out of Redis.
func (h *WorldHandler) loadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	rec, err := h.storage.LoadRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil && h.archive != nil {
		return h.archive.LoadRecord(ctx, id)
	}
	return rec, nil
}

func (h *WorldHandler) handleRead(w http.ResponseWriter, r *http.Request, worldID uuid.UUID) {
	rec, err := h.loadRecord(r.Context(), worldID)
	if err != nil {
		h.logger.Error("Failed to load record", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if rec == nil {
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "World not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("Failed to encode record response", "error", err)
	}
}

func (h *WorldHandler) handleDelete(w http.ResponseWriter, r *http.Request, worldID uuid.UUID) {
	if err := h.storage.DeleteRecord(r.Context(), worldID); err != nil {
		h.logger.Error("Failed to delete record", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to delete world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	h.logger.Debug("World record deleted", "world_id", worldID.String())
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorldHandler) handleSpoiler(w http.ResponseWriter, r *http.Request, worldID uuid.UUID) {
	rec, err := h.loadRecord(r.Context(), worldID)
	if err != nil {
		h.logger.Error("Failed to load record", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	if rec == nil {
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "World not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	if rec.Status != session.StatusComplete {
		w.WriteHeader(http.StatusConflict)
		response := ErrorResponse{
			Error: "World is not generated yet: " + string(rec.Status),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rec.Spoiler)); err != nil {
		h.logger.Error("Failed to write spoiler response", "error", err)
	}
}

// handleReachable regenerates the world from its stored options and
// seed, then runs the reachability search for the posted inventory.
// Generation is deterministic, so the rebuilt world matches the record.
func (h *WorldHandler) handleReachable(w http.ResponseWriter, r *http.Request, worldID uuid.UUID) {
	var req ReachableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	rec, err := h.loadRecord(r.Context(), worldID)
	if err != nil {
		h.logger.Error("Failed to load record", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load world record",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	if rec == nil {
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "World not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	if rec.Status != session.StatusComplete || rec.Seed == "" {
		w.WriteHeader(http.StatusConflict)
		response := ErrorResponse{
			Error: "World is not generated yet: " + string(rec.Status),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	opts := rec.Options
	if opts == nil {
		opts = &options.Raw{}
	}
	set, err := opts.Resolve()
	if err != nil {
		h.logger.Error("Stored options no longer resolve", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to resolve stored options",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	gw, err := world.Generate(r.Context(), set, rec.Seed)
	if err != nil {
		h.logger.Error("Failed to regenerate world", "error", err, "world_id", worldID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to regenerate world",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	inv := world.NewInventory(gw.Precollected...)
	for name, count := range req.Items {
		for i := 0; i < count; i++ {
			inv.Add(name)
		}
	}

	reach := gw.Reachable(inv)
	response := ReachableResponse{
		Locations: make([]string, 0, len(reach)),
		Beatable:  gw.Beatable(inv),
	}
	for name, ok := range reach {
		if !ok {
			continue
		}
		loc, known := gw.Location(name)
		if !known {
			continue
		}
		if loc.Event != "" {
			response.Events = append(response.Events, name)
		} else {
			response.Locations = append(response.Locations, name)
		}
	}
	sort.Strings(response.Locations)
	sort.Strings(response.Events)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode reachable response", "error", err)
	}
}
