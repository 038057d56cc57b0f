// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/predio-track/cliparse"
	"github.com/danielhkuo/predio-track/middleware"
	"github.com/danielhkuo/predio-track/models"
	"github.com/danielhkuo/predio-track/store"
)

// Number of history entries returned with a parcel detail.
const detailHistoryLimit = 20

type PredioHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	predios  *store.Predios
	changes  *store.Changes
	resolver *store.Resolver
}

func NewPredioHandler(db *sql.DB, cfg cliparse.Config) *PredioHandler {
	changes := store.NewChanges(db)
	return &PredioHandler{
		db:       db,
		cfg:      cfg,
		predios:  store.NewPredios(db),
		changes:  changes,
		resolver: store.NewResolver(changes),
	}
}

// List handles GET /predios?sections=a,b
// An empty or absent sections parameter returns every parcel. The filter
// matches the stored section column only, never the history fallback.
func (h *PredioHandler) List(w http.ResponseWriter, r *http.Request) {
	var sections []string
	if raw := r.URL.Query().Get("sections"); raw != "" {
		for _, sec := range strings.Split(raw, ",") {
			if sec = strings.TrimSpace(sec); sec != "" {
				sections = append(sections, sec)
			}
		}
	}

	predios, err := h.predios.List(r.Context(), sections)
	if err != nil {
		slog.Error("failed to list predios", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, predios)
}

// Get handles GET /predios/{id}
// Returns the current row plus the resolved section and recent history.
func (h *PredioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	predio, err := h.predios.Get(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Predio not found")
		return
	}
	if err != nil {
		slog.Error("failed to query predio", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	effective, err := h.resolver.Effective(r.Context(), predio)
	if err != nil {
		slog.Error("failed to resolve section", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	history, err := h.changes.RecentFor(r.Context(), id, detailHistoryLimit)
	if err != nil {
		slog.Error("failed to query history", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PredioDetail{
		Predio:           predio,
		EffectiveSection: effective,
		History:          history,
	})
}

// UpdateStatus handles POST /predios/{id}/status
// Validation happens before any storage call; the upsert and the log
// append share one transaction so current state and history cannot
// diverge on a crash between them.
func (h *PredioHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Omitted status defaults to neutral
	if req.Status == "" {
		req.Status = models.StatusNeutral
	}
	if !models.ValidStatus(req.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be one of: rojo, azul, neutral")
		return
	}

	// Empty-string section and actor count as absent
	if req.Section != nil && *req.Section == "" {
		req.Section = nil
	}
	if req.Actor != nil && *req.Actor == "" {
		req.Actor = nil
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if err := store.NewPredios(tx).Upsert(r.Context(), id, req.Status, req.Section); err != nil {
		slog.Error("failed to upsert predio", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record status")
		return
	}

	if err := store.NewChanges(tx).Append(r.Context(), id, req.Status, req.Section, req.Actor); err != nil {
		slog.Error("failed to append change", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record status")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err, "predio_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record status")
		return
	}

	slog.Info("status recorded", "predio_id", id, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateStatusResponse{
		ID:      id,
		Status:  req.Status,
		Section: req.Section,
		Message: "Status recorded",
	})
}
