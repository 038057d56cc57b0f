// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/predio-track/models"
)

// Resolver derives the effective section of a parcel for reporting.
// It never mutates stored data: the stored section wins, then the most
// recent logged section, then the SectionUnknown bucket.
type Resolver struct {
	changes *Changes
}

func NewResolver(changes *Changes) *Resolver {
	return &Resolver{changes: changes}
}

// Effective returns the reporting section for one parcel.
func (r *Resolver) Effective(ctx context.Context, p models.Predio) (string, error) {
	if p.Section != nil && *p.Section != "" {
		return *p.Section, nil
	}

	section, err := r.changes.LastSection(ctx, p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SectionUnknown, nil
	}
	if err != nil {
		return "", err
	}
	return section, nil
}
