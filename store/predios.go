// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/predio-track/models"
)

// Predios is the current-state table: one row per parcel, last write wins.
type Predios struct {
	db DBTX
}

func NewPredios(db DBTX) *Predios {
	return &Predios{db: db}
}

// Upsert replaces the parcel's status, section, and updated_at, inserting
// the row if it does not exist yet. Single conditional statement, so
// concurrent writers against the same id cannot lose updates.
func (s *Predios) Upsert(ctx context.Context, id, status string, section *string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO predio (id, status, section, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			section = excluded.section,
			updated_at = excluded.updated_at
	`, id, status, section, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("upsert predio: %w", err)
	}
	return nil
}

// Get returns the current row for a single parcel.
// Returns sql.ErrNoRows when the parcel does not exist.
func (s *Predios) Get(ctx context.Context, id string) (models.Predio, error) {
	var p models.Predio
	err := s.db.QueryRowContext(ctx, `
		SELECT id, status, section, updated_at
		FROM predio
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Status, &p.Section, &p.UpdatedAt)
	if err != nil {
		return models.Predio{}, err
	}
	return p, nil
}

// List returns all parcels, or only those whose stored section matches one
// of the given values. The filter reads the section column as written;
// sections only recoverable through the change-log fallback do not match.
func (s *Predios) List(ctx context.Context, sections []string) ([]models.Predio, error) {
	query := `
		SELECT id, status, section, updated_at
		FROM predio
	`
	var args []any
	if len(sections) > 0 {
		placeholders := make([]string, len(sections))
		for i, sec := range sections {
			placeholders[i] = "$" + strconv.Itoa(i+1)
			args = append(args, sec)
		}
		query += ` WHERE section IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list predios: %w", err)
	}
	defer rows.Close()

	predios := []models.Predio{}
	for rows.Next() {
		var p models.Predio
		if err := rows.Scan(&p.ID, &p.Status, &p.Section, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan predio: %w", err)
		}
		predios = append(predios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predios: %w", err)
	}

	return predios, nil
}
