package textkey

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Office / Department", "officedepartment"},
		{"  Sick Leave ", "sickleave"},
		{"R.A. No. 292", "rano292"},
		{"", ""},
		{"---", ""},
		{"Within the Philippines", "withinthephilippines"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("In Hospital (Pneumonia)")
	for _, want := range []string{"in", "hospital", "pneumonia"} {
		if _, ok := tokens[want]; !ok {
			t.Fatalf("expected token %q in %v", want, tokens)
		}
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
}

func TestTokenizeMergesDuplicates(t *testing.T) {
	tokens := Tokenize("leave, leave, LEAVE")
	if len(tokens) != 1 {
		t.Fatalf("expected duplicates merged, got %v", tokens)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
	if got := Tokenize(" ;;; "); len(got) != 0 {
		t.Fatalf("expected empty set for punctuation, got %v", got)
	}
}

func TestTokenListOrder(t *testing.T) {
	got := TokenList("Monetization of Leave Credits")
	want := []string{"monetization", "of", "leave", "credits"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
