package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akhmetovr/go-grid-keeper/internal/logger"
	"github.com/akhmetovr/go-grid-keeper/models"
)

// Handler holds the REST handlers of the reference driver service.
type Handler struct {
	store *DriverStore
	log   *logger.Logger
}

// NewHandler creates the handler set over the given store.
func NewHandler(store *DriverStore, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{store: store, log: log}
}

// listEnvelope is the paged response of GET /api/drivers.
type listEnvelope struct {
	Drivers []models.Driver `json:"drivers"`
	Total   int             `json:"total"`
	HasMore bool            `json:"hasMore"`
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.ListFilter{
		Team: q.Get("team"),
		Name: q.Get("name"),
	}
	if v := q.Get("minWins"); v != "" {
		minWins, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "minWins must be an integer")
			return
		}
		filter.MinWins = &minWins
	}
	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			h.writeError(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		filter.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	sort := models.ListSort{
		By:    q.Get("sortBy"),
		Order: models.SortOrder(q.Get("sortOrder")),
	}

	drivers, total, hasMore := h.store.List(filter, sort)
	h.writeJSON(w, http.StatusOK, listEnvelope{Drivers: drivers, Total: total, HasMore: hasMore})
}

func (h *Handler) getDriver(w http.ResponseWriter, r *http.Request, id string) {
	driver, err := h.store.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Driver not found")
		return
	}
	h.writeJSON(w, http.StatusOK, driver)
}

func (h *Handler) createDriver(w http.ResponseWriter, r *http.Request) {
	var payload models.DriverPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.store.Create(payload)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Info().Str("driver", created.ID).Msg("driver created")
	h.writeJSON(w, http.StatusCreated, created)
}

// updateRequest is the PATCH body: the target id plus the changed fields.
type updateRequest struct {
	ID string `json:"id"`
	models.DriverPatch
}

func (h *Handler) updateDriver(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if req.ID == "" {
		h.writeError(w, http.StatusBadRequest, "Driver id is required")
		return
	}

	updated, err := h.store.Update(req.ID, req.DriverPatch)
	switch {
	case errors.Is(err, ErrDriverNotFound):
		h.writeError(w, http.StatusNotFound, "Driver not found")
	case err != nil:
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Info().Str("driver", updated.ID).Msg("driver updated")
		h.writeJSON(w, http.StatusOK, updated)
	}
}

func (h *Handler) deleteDriver(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "Driver id is required")
		return
	}

	deleted, err := h.store.Delete(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Driver not found")
		return
	}

	h.log.Info().Str("driver", deleted.ID).Msg("driver deleted")
	h.writeJSON(w, http.StatusOK, deleted)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
