// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/predio-track/cliparse"
	"github.com/danielhkuo/predio-track/middleware"
	"github.com/danielhkuo/predio-track/store"
)

// History size when the caller does not ask for one. The store still
// clamps whatever arrives into [1, 500].
const defaultHistoryLimit = 100

type StatsHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	stats    *store.Stats
	changes  *store.Changes
	sessions *store.Sessions
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{
		db:       db,
		cfg:      cfg,
		stats:    store.NewStats(db),
		changes:  store.NewChanges(db),
		sessions: store.NewSessions(db),
	}
}

// Summary handles GET /stats/sections
// Per-section counts of each status over the resolved sections.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.stats.Summarize(r.Context())
	if err != nil {
		slog.Error("failed to summarize sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// History handles GET /changes?limit=n
// Out-of-range limits are clamped, never rejected.
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	events, err := h.changes.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list changes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// Actors handles GET /actors
// One row per distinct actor with last_seen and the sections they touched.
func (h *StatsHandler) Actors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.sessions.ListActors(r.Context())
	if err != nil {
		slog.Error("failed to list actors", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, actors)
}
