package lang

import (
	"sort"
	"testing"
)

func TestDefault_SortedAndComplete(t *testing.T) {
	s := Default()

	names := s.Names()
	if len(names) != 26 {
		t.Fatalf("expected 26 languages, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("expected Names() to be sorted")
	}
	if names[0] != "c" {
		t.Errorf("expected first language = %q, got %q", "c", names[0])
	}
	if names[len(names)-1] != "visual basic" {
		t.Errorf("expected last language = %q, got %q", "visual basic", names[len(names)-1])
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]string{"go", "rust", "go"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for duplicate language")
	}
}

func TestTag_Overrides(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		want string
	}{
		{"visual basic", "vb.net"},
		{"node", "node.js"},
		{"objective c", "objective-c"},
		{"java", "java"},
		{"c++", "c++"},
		{"not-a-language", "not-a-language"}, // identity fallback
	}
	for _, tt := range tests {
		if got := s.Tag(tt.name); got != tt.want {
			t.Errorf("Tag(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if got := s.TagLike("node"); got != "%<node.js>%" {
		t.Errorf("TagLike(node) = %q, want %q", got, "%<node.js>%")
	}
}

func TestTextPattern(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		want string
	}{
		{"c", `/\bin c\b/`},
		{"r", `/\bin r\b/`},
		{"go", `/\bin go\b/`},
		{"java", `/\bjava\b/`},
		{"c++", `/\bc++\b/`},
		{"visual basic", `/\bvisual basic\b/`},
	}
	for _, tt := range tests {
		if got := s.TextPattern(tt.name); got != tt.want {
			t.Errorf("TextPattern(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestToken_RoundTrip(t *testing.T) {
	s := Default()

	overrides := map[string]string{
		"c#":           "cs",
		"c++":          "cpp",
		"objective c":  "objectivec",
		"visual basic": "visualbasic",
	}
	for name, token := range overrides {
		if got := s.Token(name); got != token {
			t.Errorf("Token(%q) = %q, want %q", name, got, token)
		}
		if got := s.FromToken(token); got != name {
			t.Errorf("FromToken(%q) = %q, want %q", token, got, name)
		}
	}

	// No override: both directions are identity.
	for _, name := range []string{"java", "python", "kotlin"} {
		if got := s.Token(name); got != name {
			t.Errorf("Token(%q) = %q, want identity", name, got)
		}
		if got := s.FromToken(name); got != name {
			t.Errorf("FromToken(%q) = %q, want identity", name, got)
		}
	}
}

func TestColumnToken_StripsSpaces(t *testing.T) {
	s := Default()

	// All column tokens must be distinct and space-free.
	seen := make(map[string]bool)
	for _, name := range s.Names() {
		tok := s.ColumnToken(name)
		if tok == "" {
			t.Errorf("empty column token for %q", name)
		}
		for _, r := range tok {
			if r == ' ' {
				t.Errorf("column token %q contains a space", tok)
			}
		}
		if seen[tok] {
			t.Errorf("duplicate column token %q", tok)
		}
		seen[tok] = true
	}
}

func TestContains(t *testing.T) {
	s := Default()
	if !s.Contains("haskell") {
		t.Error("expected Contains(haskell) = true")
	}
	if s.Contains("brainfuck") {
		t.Error("expected Contains(brainfuck) = false")
	}
}
