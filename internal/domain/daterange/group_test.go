package daterange

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeSingleDay(t *testing.T) {
	s, err := Summarize([]time.Time{day(2026, time.February, 28)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Feb 28" {
		t.Fatalf("expected %q, got %q", "Feb 28", got)
	}
	if got := s.DurationLabel(); got != "1 Working day" {
		t.Fatalf("expected singular label, got %q", got)
	}
}

func TestSummarizeConsecutiveRun(t *testing.T) {
	s, err := Summarize([]time.Time{
		day(2026, time.April, 1),
		day(2026, time.April, 2),
		day(2026, time.April, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Apr 1-3" {
		t.Fatalf("expected %q, got %q", "Apr 1-3", got)
	}
	if got := s.DurationLabel(); got != "3 Working days" {
		t.Fatalf("expected plural label, got %q", got)
	}
}

func TestSummarizeMixedGroups(t *testing.T) {
	s, err := Summarize([]time.Time{
		day(2026, time.February, 28),
		day(2026, time.April, 1),
		day(2026, time.April, 2),
		day(2026, time.April, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Feb 28; Apr 1-3" {
		t.Fatalf("expected %q, got %q", "Feb 28; Apr 1-3", got)
	}
	if got := s.DurationLabel(); got != "4 Working days" {
		t.Fatalf("expected %q, got %q", "4 Working days", got)
	}
	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(s.Groups))
	}
}

func TestSummarizeCrossMonthRun(t *testing.T) {
	s, err := Summarize([]time.Time{
		day(2026, time.January, 30),
		day(2026, time.January, 31),
		day(2026, time.February, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Jan 30 - Feb 1" {
		t.Fatalf("expected %q, got %q", "Jan 30 - Feb 1", got)
	}
}

func TestSummarizeCrossYearRunNotCompacted(t *testing.T) {
	// A run spanning a year boundary must never render in the compact
	// same-month "MMM d-d" form.
	s, err := Summarize([]time.Time{
		day(2025, time.December, 31),
		day(2026, time.January, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Dec 31 - Jan 1" {
		t.Fatalf("expected %q, got %q", "Dec 31 - Jan 1", got)
	}
}

func TestSummarizeSortsAndDedupes(t *testing.T) {
	s, err := Summarize([]time.Time{
		time.Date(2026, time.April, 2, 14, 30, 0, 0, time.UTC),
		day(2026, time.April, 1),
		day(2026, time.April, 2),
		day(2026, time.April, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.RangeText(); got != "Apr 1-3" {
		t.Fatalf("expected time-of-day and duplicates discarded, got %q", got)
	}
	if got := s.DurationLabel(); got != "3 Working days" {
		t.Fatalf("expected 3 distinct days, got %q", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoDates) {
		t.Fatalf("expected ErrNoDates, got %v", err)
	}
}

func TestSummarizeRoundTrip(t *testing.T) {
	// Every input day must be covered by exactly one emitted group, and no
	// group may cover a day that was not selected.
	inputs := [][]time.Time{
		{day(2026, time.March, 5)},
		{day(2026, time.March, 5), day(2026, time.March, 7), day(2026, time.March, 8)},
		{day(2026, time.January, 1), day(2026, time.June, 15), day(2026, time.June, 16), day(2026, time.June, 18)},
	}
	for _, input := range inputs {
		s, err := Summarize(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		covered := make(map[time.Time]bool)
		for _, g := range s.Groups {
			for d := g.Start; !d.After(g.End); d = d.AddDate(0, 0, 1) {
				covered[d] = true
			}
		}
		if len(covered) != len(input) {
			t.Fatalf("group coverage %d does not match input %d", len(covered), len(input))
		}
		for _, d := range input {
			if !covered[d] {
				t.Fatalf("day %s missing from groups", d.Format("2006-01-02"))
			}
		}
	}
}

func TestISOList(t *testing.T) {
	s, err := Summarize([]time.Time{day(2026, time.April, 3), day(2026, time.April, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.ISOList(); got != "2026-04-01, 2026-04-03" {
		t.Fatalf("expected sorted ISO list, got %q", got)
	}
}
