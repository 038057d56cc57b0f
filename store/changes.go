// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/predio-track/models"
)

// History listing limits. Requested limits are clamped into this range,
// never rejected.
const (
	MinHistoryLimit = 1
	MaxHistoryLimit = 500
)

// Changes is the append-only status history. Rows are inserted once and
// never updated or deleted.
type Changes struct {
	db DBTX
}

func NewChanges(db DBTX) *Changes {
	return &Changes{db: db}
}

// Append records one status change. Plain insert - no upsert, no dedup.
func (s *Changes) Append(ctx context.Context, predioID, status string, section, actor *string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO change_log (id, predio_id, status, section, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), predioID, status, section, actor, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("append change: %w", err)
	}
	return nil
}

// LastSection returns the section of the most recent change-log entry for
// the parcel that carried one. Returns sql.ErrNoRows when no entry has a
// section.
func (s *Changes) LastSection(ctx context.Context, predioID string) (string, error) {
	var section string
	err := s.db.QueryRowContext(ctx, `
		SELECT section FROM change_log
		WHERE predio_id = $1 AND section IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1
	`, predioID).Scan(&section)
	if err != nil {
		return "", err
	}
	return section, nil
}

// Recent returns change events across all parcels, newest first.
func (s *Changes) Recent(ctx context.Context, limit int) ([]models.ChangeEvent, error) {
	return s.query(ctx, `
		SELECT id, predio_id, status, section, actor, created_at
		FROM change_log
		ORDER BY created_at DESC
		LIMIT $1
	`, clampLimit(limit))
}

// RecentFor returns change events for one parcel, newest first.
func (s *Changes) RecentFor(ctx context.Context, predioID string, limit int) ([]models.ChangeEvent, error) {
	return s.query(ctx, `
		SELECT id, predio_id, status, section, actor, created_at
		FROM change_log
		WHERE predio_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, predioID, clampLimit(limit))
}

func (s *Changes) query(ctx context.Context, query string, args ...any) ([]models.ChangeEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()

	events := []models.ChangeEvent{}
	for rows.Next() {
		var ev models.ChangeEvent
		if err := rows.Scan(&ev.ID, &ev.PredioID, &ev.Status, &ev.Section, &ev.Actor, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	return events, nil
}

func clampLimit(limit int) int {
	if limit < MinHistoryLimit {
		return MinHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
