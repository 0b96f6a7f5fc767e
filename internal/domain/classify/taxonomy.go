// Package classify maps free-text leave reasons onto the fixed checkbox
// fields of the CS Form No. 6 template.
package classify

import (
	"sort"

	"leaveform/internal/domain/textkey"
)

// Taxonomy is the immutable mapping from leave-type and sub-option labels to
// template field identifiers, built once at startup and injected into every
// classification pass.
type Taxonomy struct {
	entries      []entry
	attachedText map[string]string
	defaultText  string
}

type entry struct {
	label  string
	field  string
	norm   string
	tokens map[string]struct{}
}

// New builds a taxonomy from label→field maps. Labels are normalized and
// tokenized once here so matching never re-derives them.
func New(leaveTypes, subOptions map[string]string, attachedText map[string]string, defaultText string) *Taxonomy {
	t := &Taxonomy{
		attachedText: make(map[string]string, len(attachedText)),
		defaultText:  defaultText,
	}
	for field, text := range attachedText {
		t.attachedText[field] = text
	}
	for _, m := range []map[string]string{leaveTypes, subOptions} {
		labels := make([]string, 0, len(m))
		for label := range m {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			t.entries = append(t.entries, entry{
				label:  label,
				field:  m[label],
				norm:   textkey.Normalize(label),
				tokens: textkey.Tokenize(label),
			})
		}
	}
	return t
}

// Default is the CS Form No. 6 taxonomy: section 6.A leave types on the left
// column, 6.B details on the right, and the text boxes attached to the
// checkboxes that carry a written specification.
func Default() *Taxonomy {
	leaveTypes := map[string]string{
		"Vacation Leave (Sec. 51, Rule XVI, Omnibus Rules Implementing E.O. No. 292)": "B11",
		"Mandatory/Forced Leave":           "B13",
		"Sick Leave":                       "B15",
		"Maternity Leave":                  "B17",
		"Paternity Leave":                  "B19",
		"Special Privilege Leave":          "B21",
		"Solo Parent Leave":                "B23",
		"Study Leave":                      "B25",
		"10-Day VAWC Leave":                "B27",
		"Rehabilitation Privilege":         "B29",
		"Special Leave Benefits for Women": "B31",
		"Special Emergency (Calamity) Leave": "B33",
		"Adoption Leave":                     "B35",
	}
	subOptions := map[string]string{
		"Within the Philippines":         "H13",
		"Abroad":                         "H15",
		"In Hospital":                    "H19",
		"Outpatient":                     "H21",
		"Completion of Master's Degree":  "H33",
		"BAR/Board Examination Review":   "H35",
		"Monetization of Leave Credits":  "H39",
		"Terminal Leave":                 "H41",
	}
	attachedText := map[string]string{
		"H15": "J15",
		"H19": "J19",
		"H21": "J21",
		"B31": "J27",
	}
	return New(leaveTypes, subOptions, attachedText, "B41")
}

// CheckboxFields returns every checkbox field identifier, sorted and distinct.
func (t *Taxonomy) CheckboxFields() []string {
	seen := make(map[string]struct{}, len(t.entries))
	fields := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.field]; ok {
			continue
		}
		seen[e.field] = struct{}{}
		fields = append(fields, e.field)
	}
	sort.Strings(fields)
	return fields
}

// TextFields returns every attached text field plus the default destination.
func (t *Taxonomy) TextFields() []string {
	seen := map[string]struct{}{t.defaultText: {}}
	fields := []string{t.defaultText}
	for _, text := range t.attachedText {
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		fields = append(fields, text)
	}
	sort.Strings(fields)
	return fields
}

// DefaultTextField is the destination for residue when no matched checkbox
// carries its own text box.
func (t *Taxonomy) DefaultTextField() string {
	return t.defaultText
}
