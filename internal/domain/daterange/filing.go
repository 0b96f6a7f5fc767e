package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FilingDate formats a raw filing-date value as "Month D, YYYY".
//
// The value may be slash-, dash-, or dot-delimited; a trailing time component
// is dropped. When the first numeric component is greater than 31 the value is
// read as year-month-day, otherwise as month-day-year with two-digit years
// expanded by adding 2000. Anything unparseable is returned unchanged so a
// human reviewing the paper form still sees the original value.
func FilingDate(raw string) string {
	str := strings.TrimSpace(raw)
	if str == "" {
		return ""
	}

	datePart := str
	if idx := strings.IndexByte(datePart, ' '); idx >= 0 {
		datePart = datePart[:idx]
	}

	var parts []string
	switch {
	case strings.Contains(datePart, "/"):
		parts = strings.Split(datePart, "/")
	case strings.Contains(datePart, "-"):
		parts = strings.Split(datePart, "-")
	case strings.Contains(datePart, "."):
		parts = strings.Split(datePart, ".")
	}
	if len(parts) < 3 {
		return str
	}

	first, err0 := strconv.Atoi(strings.TrimSpace(parts[0]))
	second, err1 := strconv.Atoi(strings.TrimSpace(parts[1]))
	third, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err0 != nil || err1 != nil || err2 != nil {
		return str
	}

	var year, month, day int
	if first > 31 {
		year, month, day = first, second, third
	} else {
		month, day, year = first, second, third
		if year < 100 {
			year += 2000
		}
	}

	if month < 1 || month > 12 {
		return str
	}

	return fmt.Sprintf("%s %d, %d", time.Month(month).String(), day, year)
}

// FilingTime formats an already-structured timestamp the same way.
func FilingTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", t.Month().String(), t.Day(), t.Year())
}
