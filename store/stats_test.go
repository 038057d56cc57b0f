// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/danielhkuo/predio-track/models"
	"github.com/danielhkuo/predio-track/testutil"
)

func TestSummarizeGroupsAndCounts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	stats := NewStats(conn)

	testutil.SeedPredio(t, conn, "P1", models.StatusRojo, testutil.StringPtr("356"))
	testutil.SeedPredio(t, conn, "P2", models.StatusAzul, testutil.StringPtr("356"))
	testutil.SeedPredio(t, conn, "P3", models.StatusNeutral, testutil.StringPtr("356"))
	testutil.SeedPredio(t, conn, "P4", models.StatusRojo, testutil.StringPtr("357"))

	summaries, err := stats.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Section != "356" {
		t.Errorf("Expected first group 356, got %s", first.Section)
	}
	if first.Rojo != 1 || first.Azul != 1 || first.Neutral != 1 || first.Total != 3 {
		t.Errorf("Group 356: expected 1/1/1 total 3, got %d/%d/%d total %d",
			first.Rojo, first.Azul, first.Neutral, first.Total)
	}

	second := summaries[1]
	if second.Section != "357" || second.Rojo != 1 || second.Total != 1 {
		t.Errorf("Group 357: expected rojo=1 total=1, got %+v", second)
	}
}

func TestSummarizeConservation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	stats := NewStats(conn)

	testutil.SeedPredio(t, conn, "P1", models.StatusRojo, testutil.StringPtr("356"))
	testutil.SeedPredio(t, conn, "P2", models.StatusAzul, nil)
	testutil.SeedPredio(t, conn, "P3", models.StatusNeutral, testutil.StringPtr("400"))
	testutil.SeedPredio(t, conn, "P4", models.StatusRojo, nil)
	testutil.SeedChange(t, conn, "P4", models.StatusRojo, testutil.StringPtr("356"), nil, time.Now().Add(-time.Hour))

	summaries, err := stats.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	grandTotal := 0
	for _, s := range summaries {
		if s.Rojo+s.Azul+s.Neutral != s.Total {
			t.Errorf("Group %s: counts not conserved: %d+%d+%d != %d",
				s.Section, s.Rojo, s.Azul, s.Neutral, s.Total)
		}
		grandTotal += s.Total
	}
	if grandTotal != 4 {
		t.Errorf("Sum of group totals should equal parcel count 4, got %d", grandTotal)
	}
}

func TestSummarizeHistoryFallback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	stats := NewStats(conn)

	// P2: azul, no stored section, prior log entry carries 357
	testutil.SeedPredio(t, conn, "P2", models.StatusAzul, nil)
	base := time.Now().Add(-time.Hour)
	testutil.SeedChange(t, conn, "P2", models.StatusRojo, testutil.StringPtr("356"), nil, base)
	testutil.SeedChange(t, conn, "P2", models.StatusAzul, testutil.StringPtr("357"), nil, base.Add(time.Minute))

	summaries, err := stats.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(summaries))
	}
	if summaries[0].Section != "357" {
		t.Errorf("Expected most recent logged section 357, got %s", summaries[0].Section)
	}
	if summaries[0].Azul != 1 || summaries[0].Total != 1 {
		t.Errorf("Expected azul=1 total=1, got %+v", summaries[0])
	}
}

func TestSummarizeSentinelBucket(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	stats := NewStats(conn)

	// No stored section, and the only log entries carry no section either
	testutil.SeedPredio(t, conn, "P1", models.StatusNeutral, nil)
	testutil.SeedChange(t, conn, "P1", models.StatusNeutral, nil, nil, time.Now().Add(-time.Hour))

	summaries, err := stats.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(summaries))
	}
	if summaries[0].Section != models.SectionUnknown {
		t.Errorf("Expected sentinel bucket %q, got %q", models.SectionUnknown, summaries[0].Section)
	}
	if summaries[0].Neutral != 1 || summaries[0].Total != 1 {
		t.Errorf("Expected neutral=1 total=1, got %+v", summaries[0])
	}
}

func TestSummarizeSentinelSortsAsText(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	stats := NewStats(conn)

	// Labels chosen so the sentinel lands in the middle lexicographically
	testutil.SeedPredio(t, conn, "P1", models.StatusRojo, testutil.StringPtr("356"))
	testutil.SeedPredio(t, conn, "P2", models.StatusAzul, nil)
	testutil.SeedPredio(t, conn, "P3", models.StatusNeutral, testutil.StringPtr("zona-9"))

	summaries, err := stats.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(summaries))
	}

	labels := make([]string, len(summaries))
	for i, s := range summaries {
		labels[i] = s.Section
	}
	if !sort.StringsAreSorted(labels) {
		t.Errorf("Groups should be ordered by section label ascending, got %v", labels)
	}
	if labels[1] != models.SectionUnknown {
		t.Errorf("Sentinel should sort as plain text between %q and %q, got order %v",
			"356", "zona-9", labels)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	summaries, err := NewStats(conn).Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("Expected no groups for empty table, got %d", len(summaries))
	}
}
