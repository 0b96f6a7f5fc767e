package classify

import (
	"regexp"
	"strings"

	"leaveform/internal/domain/textkey"
)

// Result is one classification pass over a submission's free-text values.
// Active always covers the taxonomy's full checkbox universe so applying a
// result to the template resets stale state from earlier fills.
type Result struct {
	Active     map[string]bool
	TextTarget string
	Residue    string
}

// Legal citations never count as unmatched reasons: leading statute tokens,
// or fragments that are nothing but section/rule numerals.
var (
	citationPrefixRe = regexp.MustCompile(`(?i)^(sec|section|rule|ra|r\.a\.|s\.|no\.|omnibus|e\.?o\.?)`)
	andSplitRe       = regexp.MustCompile(`(?i)\s+and\s+`)
)

// Classify runs every input through splitting, noise and citation filtering,
// and the ordered matching strategy (exact, bidirectional token subset,
// substring fallback). It never fails: malformed input degrades to residue
// text routed to the default field.
func (t *Taxonomy) Classify(inputs []string) Result {
	result := Result{
		Active:     make(map[string]bool, len(t.entries)),
		TextTarget: t.defaultText,
	}
	for _, field := range t.CheckboxFields() {
		result.Active[field] = false
	}

	var residue []string
	for _, input := range inputs {
		if strings.TrimSpace(input) == "" {
			continue
		}
		for _, piece := range splitTopLevel(input) {
			// A piece can equal a full taxonomy label, citation and all;
			// try that before breaking out parenthetical spans.
			if t.matchExact(piece, &result) {
				continue
			}
			for _, fragment := range decompose(piece) {
				t.classifyFragment(fragment, &result, &residue)
			}
		}
	}

	result.Residue = joinResidue(residue)
	return result
}

func (t *Taxonomy) classifyFragment(fragment string, result *Result, residue *[]string) {
	fragment = strings.TrimSpace(fragment)
	if len(fragment) < 3 {
		return
	}
	norm := textkey.Normalize(fragment)
	if norm == "" || isNumericOnly(norm) {
		return
	}
	if citationPrefixRe.MatchString(fragment) || isSectionNumber(norm) {
		return
	}

	if t.matchExact(fragment, result) {
		return
	}
	if t.matchTokens(fragment, result) {
		return
	}
	if t.matchSubstring(norm, result) {
		return
	}

	*residue = append(*residue, fragment)
}

func (t *Taxonomy) matchExact(fragment string, result *Result) bool {
	norm := textkey.Normalize(fragment)
	if norm == "" {
		return false
	}
	matched := false
	for _, e := range t.entries {
		if norm == e.norm {
			t.activate(e, result)
			matched = true
		}
	}
	return matched
}

// matchTokens activates entries whose token set is contained in the
// fragment's, or that contain the fragment's token set entirely. The
// bidirectional check covers both "abbreviated key, verbose fragment" and
// "verbose key, abbreviated fragment".
func (t *Taxonomy) matchTokens(fragment string, result *Result) bool {
	fragTokens := textkey.Tokenize(fragment)
	if len(fragTokens) == 0 {
		return false
	}
	matched := false
	for _, e := range t.entries {
		if len(e.tokens) == 0 {
			continue
		}
		if subset(e.tokens, fragTokens) || subset(fragTokens, e.tokens) {
			t.activate(e, result)
			matched = true
		}
	}
	return matched
}

func (t *Taxonomy) matchSubstring(norm string, result *Result) bool {
	matched := false
	for _, e := range t.entries {
		if e.norm == "" {
			continue
		}
		if strings.Contains(norm, e.norm) || strings.Contains(e.norm, norm) {
			t.activate(e, result)
			matched = true
		}
	}
	return matched
}

func (t *Taxonomy) activate(e entry, result *Result) {
	result.Active[e.field] = true
	if text, ok := t.attachedText[e.field]; ok {
		result.TextTarget = text
	}
}

func subset(inner, outer map[string]struct{}) bool {
	for tok := range inner {
		if _, ok := outer[tok]; !ok {
			return false
		}
	}
	return true
}

func isNumericOnly(norm string) bool {
	for _, r := range norm {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isSectionNumber reports whether a normalized fragment is a bare rule or
// section number: digits mixed with roman-numeral letters, or a short pure
// roman numeral like "xvi".
func isSectionNumber(norm string) bool {
	if norm == "" {
		return false
	}
	hasDigit := false
	for _, r := range norm {
		if r >= '0' && r <= '9' {
			hasDigit = true
			continue
		}
		if !strings.ContainsRune("ivxlcdm", r) {
			return false
		}
	}
	return hasDigit || len(norm) <= 4
}

// splitTopLevel breaks a raw value on the statement delimiters, ignoring any
// delimiter inside a parenthesized span so citations survive in one piece.
func splitTopLevel(raw string) []string {
	var pieces []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if piece := strings.TrimSpace(current.String()); piece != "" {
			pieces = append(pieces, piece)
		}
		current.Reset()
	}
	for _, r := range raw {
		switch r {
		case '(':
			depth++
			current.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case ',', ';', '/', '|', '&', ':', '\n', '\r':
			if depth == 0 {
				flush()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return pieces
}

// decompose separates a piece into its text outside parentheses, split on the
// word "and", followed by each parenthesized span as its own fragment.
func decompose(piece string) []string {
	var outer strings.Builder
	var spans []string
	var span strings.Builder
	depth := 0
	for _, r := range piece {
		switch r {
		case '(':
			if depth == 0 {
				depth++
				continue
			}
			depth++
			span.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
				if depth == 0 {
					spans = append(spans, span.String())
					span.Reset()
					continue
				}
				span.WriteRune(r)
				continue
			}
			outer.WriteRune(r)
		default:
			if depth > 0 {
				span.WriteRune(r)
			} else {
				outer.WriteRune(r)
			}
		}
	}
	if span.Len() > 0 {
		spans = append(spans, span.String())
	}

	var fragments []string
	for _, part := range andSplitRe.Split(outer.String(), -1) {
		if part = strings.TrimSpace(part); part != "" {
			fragments = append(fragments, part)
		}
	}
	for _, s := range spans {
		if s = strings.TrimSpace(s); s != "" {
			fragments = append(fragments, s)
		}
	}
	return fragments
}

func joinResidue(residue []string) string {
	kept := residue[:0]
	for _, part := range residue {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "other", "others":
		default:
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "; ")
}
