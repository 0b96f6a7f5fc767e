package classify

import (
	"reflect"
	"testing"
)

func activeFields(r Result) []string {
	var out []string
	for _, field := range []string{
		"B11", "B13", "B15", "B17", "B19", "B21", "B23", "B25", "B27",
		"B29", "B31", "B33", "B35", "H13", "H15", "H19", "H21", "H33",
		"H35", "H39", "H41",
	} {
		if r.Active[field] {
			out = append(out, field)
		}
	}
	return out
}

func TestClassifyVacationWithCitation(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Vacation Leave (Sec. 51, Rule XVI, Omnibus Rules Implementing E.O. No. 292)"})

	if got := activeFields(r); !reflect.DeepEqual(got, []string{"B11"}) {
		t.Fatalf("expected only vacation field active, got %v", got)
	}
	if r.Residue != "" {
		t.Fatalf("expected citation discarded from residue, got %q", r.Residue)
	}
	if r.TextTarget != "B41" {
		t.Fatalf("expected default text target, got %q", r.TextTarget)
	}
}

func TestClassifySickInHospital(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Sick Leave; In Hospital (Pneumonia)"})

	if got := activeFields(r); !reflect.DeepEqual(got, []string{"B15", "H19"}) {
		t.Fatalf("expected sick and in-hospital fields, got %v", got)
	}
	if r.TextTarget != "J19" {
		t.Fatalf("expected in-hospital text box, got %q", r.TextTarget)
	}
	if r.Residue != "Pneumonia" {
		t.Fatalf("expected illness routed to residue, got %q", r.Residue)
	}
}

func TestClassifyUnmatchedGoesToDefaultField(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Other: Compassionate leave due to emergency"})

	if got := activeFields(r); got != nil {
		t.Fatalf("expected no activation, got %v", got)
	}
	if r.Residue != "Compassionate leave due to emergency" {
		t.Fatalf("unexpected residue %q", r.Residue)
	}
	if r.TextTarget != "B41" {
		t.Fatalf("expected default text target, got %q", r.TextTarget)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	taxonomy := Default()
	inputs := []string{"Sick Leave; In Hospital (Pneumonia)", "Study Leave"}

	first := taxonomy.Classify(inputs)
	second := taxonomy.Classify(inputs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification is not idempotent: %v vs %v", first, second)
	}

	// Every checkbox in the universe is present so a later fill resets
	// whatever an earlier pass activated.
	if len(first.Active) != 21 {
		t.Fatalf("expected full field universe in result, got %d", len(first.Active))
	}
}

func TestClassifyAbbreviatedFragment(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"VAWC"})
	if !r.Active["B27"] {
		t.Fatalf("expected abbreviated fragment to activate VAWC field: %v", activeFields(r))
	}
}

func TestClassifySubstringFallback(t *testing.T) {
	// "Masters" does not tokenize like "Master's", so only the substring
	// stage can land this one.
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Completion of Masters"})
	if !r.Active["H33"] {
		t.Fatalf("expected substring fallback to activate study reason: %v", activeFields(r))
	}
}

func TestClassifyAndDelimiter(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Monetization and Terminal Leave"})
	if got := activeFields(r); !reflect.DeepEqual(got, []string{"H39", "H41"}) {
		t.Fatalf("expected monetization and terminal fields, got %v", got)
	}
}

func TestClassifyAbroadSetsTextTarget(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"Abroad (Japan)"})
	if !r.Active["H15"] {
		t.Fatalf("expected abroad field active: %v", activeFields(r))
	}
	if r.TextTarget != "J15" {
		t.Fatalf("expected abroad text box, got %q", r.TextTarget)
	}
	if r.Residue != "Japan" {
		t.Fatalf("expected country in residue, got %q", r.Residue)
	}
}

func TestClassifyNoiseDiscarded(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify([]string{"51; XVI; --; ab", "Sec. 51", "R.A. No. 292"})
	if got := activeFields(r); got != nil {
		t.Fatalf("expected nothing activated, got %v", got)
	}
	if r.Residue != "" {
		t.Fatalf("expected noise and citations discarded, got %q", r.Residue)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	taxonomy := Default()
	r := taxonomy.Classify(nil)
	if got := activeFields(r); got != nil {
		t.Fatalf("expected nothing active, got %v", got)
	}
	if r.Residue != "" || r.TextTarget != "B41" {
		t.Fatalf("unexpected result %+v", r)
	}
}
