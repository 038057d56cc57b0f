// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/predio-track/models"
)

// Sessions records actor logins. Rows are insert-only; multiple rows per
// actor are expected and folded together by ListActors.
type Sessions struct {
	db DBTX
}

func NewSessions(db DBTX) *Sessions {
	return &Sessions{db: db}
}

// Record inserts one login row and returns its id. Sections are stored as
// a comma-joined string.
func (s *Sessions) Record(ctx context.Context, actor string, sections []string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, actor, sections, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, actor, strings.Join(sections, ","), time.Now().UTC())

	if err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}
	return id, nil
}

// ListActors returns one entry per distinct actor: last_seen is the newest
// session timestamp, sections is the distinct set of section strings seen
// across all of the actor's rows, joined with commas. Ordered by last_seen
// descending.
//
// The fold happens in Go because string_agg/group_concat differ between
// the two supported drivers.
func (s *Sessions) ListActors(ctx context.Context) ([]models.ActorActivity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT actor, sections, created_at
		FROM session
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	type actorAgg struct {
		lastSeen time.Time
		sections map[string]bool
	}
	byActor := map[string]*actorAgg{}

	for rows.Next() {
		var actor, sections string
		var createdAt time.Time
		if err := rows.Scan(&actor, &sections, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		agg := byActor[actor]
		if agg == nil {
			agg = &actorAgg{sections: map[string]bool{}}
			byActor[actor] = agg
		}
		if createdAt.After(agg.lastSeen) {
			agg.lastSeen = createdAt
		}
		for _, sec := range strings.Split(sections, ",") {
			if sec != "" {
				agg.sections[sec] = true
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	actors := []models.ActorActivity{}
	for actor, agg := range byActor {
		secs := make([]string, 0, len(agg.sections))
		for sec := range agg.sections {
			secs = append(secs, sec)
		}
		sort.Strings(secs)

		actors = append(actors, models.ActorActivity{
			Actor:    actor,
			LastSeen: agg.lastSeen,
			Sections: strings.Join(secs, ","),
		})
	}

	sort.Slice(actors, func(i, j int) bool {
		return actors[i].LastSeen.After(actors[j].LastSeen)
	})

	return actors, nil
}
