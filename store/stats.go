// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/predio-track/models"
)

// Stats computes per-section status counts over the full parcel set.
type Stats struct {
	db DBTX
}

func NewStats(db DBTX) *Stats {
	return &Stats{db: db}
}

// Summarize groups every parcel into exactly one section bucket and counts
// each status plus the total. The section is the stored column when set,
// otherwise the most recent logged section, otherwise SectionUnknown - the
// same rule as Resolver.Effective, inlined as a correlated subquery so the
// whole report is one round trip.
func (s *Stats) Summarize(ctx context.Context) ([]models.SectionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(p.section,
		         (SELECT c.section FROM change_log c
		           WHERE c.predio_id = p.id AND c.section IS NOT NULL
		           ORDER BY c.created_at DESC
		           LIMIT 1),
		         $1) AS section,
		       SUM(CASE WHEN p.status = $2 THEN 1 ELSE 0 END) AS rojo,
		       SUM(CASE WHEN p.status = $3 THEN 1 ELSE 0 END) AS azul,
		       SUM(CASE WHEN p.status = $4 THEN 1 ELSE 0 END) AS neutral,
		       COUNT(*) AS total
		FROM predio p
		GROUP BY 1
		ORDER BY 1 ASC
	`, models.SectionUnknown, models.StatusRojo, models.StatusAzul, models.StatusNeutral)
	if err != nil {
		return nil, fmt.Errorf("summarize sections: %w", err)
	}
	defer rows.Close()

	summaries := []models.SectionSummary{}
	for rows.Next() {
		var sum models.SectionSummary
		if err := rows.Scan(&sum.Section, &sum.Rojo, &sum.Azul, &sum.Neutral, &sum.Total); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("summarize sections: %w", err)
	}

	return summaries, nil
}
