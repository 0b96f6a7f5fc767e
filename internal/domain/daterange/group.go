// Package daterange consolidates sets of calendar dates into the condensed
// human-readable strings printed on the leave form, and formats filing dates.
package daterange

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNoDates is returned when a summary is requested for an empty date set.
var ErrNoDates = errors.New("no dates selected")

// Group is a maximal run of consecutive calendar days, inclusive on both ends.
type Group struct {
	Start time.Time
	End   time.Time
}

// String renders a group as "MMM d" for a single day, "MMM d-d" when start
// and end share month and year, and "MMM d - MMM d" otherwise.
func (g Group) String() string {
	if g.Start.Equal(g.End) {
		return g.Start.Format("Jan 2")
	}
	if g.Start.Month() == g.End.Month() && g.Start.Year() == g.End.Year() {
		return fmt.Sprintf("%s-%d", g.Start.Format("Jan 2"), g.End.Day())
	}
	return fmt.Sprintf("%s - %s", g.Start.Format("Jan 2"), g.End.Format("Jan 2"))
}

// Summary holds the consolidated view of a submission's selected dates.
type Summary struct {
	Days   []time.Time
	Groups []Group
}

// Summarize normalizes the input to distinct midnight-UTC days, sorts it, and
// scans once: each date either extends the open group by exactly one day or
// closes it and starts the next.
func Summarize(dates []time.Time) (Summary, error) {
	days := normalizeDays(dates)
	if len(days) == 0 {
		return Summary{}, ErrNoDates
	}

	groups := make([]Group, 0, len(days))
	current := Group{Start: days[0], End: days[0]}
	for _, day := range days[1:] {
		if day.Equal(current.End.AddDate(0, 0, 1)) {
			current.End = day
			continue
		}
		groups = append(groups, current)
		current = Group{Start: day, End: day}
	}
	groups = append(groups, current)

	return Summary{Days: days, Groups: groups}, nil
}

// RangeText joins the rendered groups with "; " in chronological order.
func (s Summary) RangeText() string {
	parts := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, "; ")
}

// DurationLabel counts distinct calendar days. The count is a label only and
// is not adjusted for weekends or holidays.
func (s Summary) DurationLabel() string {
	if len(s.Days) == 1 {
		return "1 Working day"
	}
	return fmt.Sprintf("%d Working days", len(s.Days))
}

// ISOList renders the distinct days as a comma-joined yyyy-MM-dd list.
func (s Summary) ISOList() string {
	parts := make([]string, 0, len(s.Days))
	for _, day := range s.Days {
		parts = append(parts, day.Format("2006-01-02"))
	}
	return strings.Join(parts, ", ")
}

func normalizeDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
