// Package record insulates the template-fill step from header-name drift
// between the original form and the persisted sheet.
package record

import (
	"leaveform/internal/domain/textkey"
)

// Record maps normalized header labels to their raw values. Lookups succeed
// regardless of the header's casing, spacing, or punctuation.
type Record struct {
	values map[string][]string
}

// New builds a record from header→values pairs. Keys are normalized once;
// a later pair with the same normalized key overwrites an earlier one.
func New(pairs map[string][]string) Record {
	r := Record{values: make(map[string][]string, len(pairs))}
	for header, vals := range pairs {
		key := textkey.Normalize(header)
		if key == "" {
			continue
		}
		r.values[key] = vals
	}
	return r
}

// FromRow builds a record by zipping a header row with a data row. A short
// data row leaves the trailing headers mapped to empty values.
func FromRow(headers, row []string) Record {
	r := Record{values: make(map[string][]string, len(headers))}
	for i, header := range headers {
		key := textkey.Normalize(header)
		if key == "" {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		r.values[key] = []string{value}
	}
	return r
}

// Resolve tries each candidate label in order and returns the first hit's
// value, unwrapping single-element containers. No match is not an error;
// callers treat "" as "leave the field blank".
func (r Record) Resolve(candidates ...string) string {
	for _, candidate := range candidates {
		key := textkey.Normalize(candidate)
		if key == "" {
			continue
		}
		vals, ok := r.values[key]
		if !ok {
			continue
		}
		if len(vals) == 0 {
			return ""
		}
		return vals[0]
	}
	return ""
}

// Len reports how many distinct normalized headers the record carries.
func (r Record) Len() int {
	return len(r.values)
}
