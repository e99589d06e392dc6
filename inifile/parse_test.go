package inifile

import (
	"bytes"
	"strings"
	"testing"
)

const sample = `
# soquery configuration
[bigquery]
project = my-research-project
location = US

[output]
dir = /Volumes/TarDisk/soposts2
counts_dir = langcounts

; cache is optional
[cache]
path =
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	if len(f.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(f.Sections))
	}
	if got := f.Get("bigquery", "project"); got != "my-research-project" {
		t.Errorf("project = %q", got)
	}
	if got := f.Get("output", "counts_dir"); got != "langcounts" {
		t.Errorf("counts_dir = %q", got)
	}
	if got := f.Get("cache", "path"); got != "" {
		t.Errorf("empty value should stay empty, got %q", got)
	}
	if got := f.Get("missing", "key"); got != "" {
		t.Errorf("missing section should return empty, got %q", got)
	}
}

func TestParse_CaseInsensitiveAndLastValueWins(t *testing.T) {
	f, err := Parse(strings.NewReader("[BigQuery]\nLocation = EU\nlocation = US\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Get("bigquery", "location"); got != "US" {
		t.Errorf("expected last value to win, got %q", got)
	}
}

func TestParse_SkipsMalformedAndOrphanLines(t *testing.T) {
	f, err := Parse(strings.NewReader("orphan = 1\n[s]\nno equals here\nk = v\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := f.Section("s")
	if s == nil || len(s.Values) != 1 {
		t.Fatalf("expected exactly one value, got %+v", s)
	}
}

func TestSetAndWrite_RoundTrip(t *testing.T) {
	f := &File{}
	f.Set("bigquery", "project", "p1")
	f.Set("bigquery", "location", "US")
	f.Set("output", "dir", "soposts")
	f.Set("bigquery", "project", "p2") // overwrite

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "[bigquery]\nproject = p2\nlocation = US\n") {
		t.Errorf("unexpected output:\n%s", out)
	}

	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.Get("bigquery", "project"); got != "p2" {
		t.Errorf("round-trip project = %q", got)
	}
	if got := parsed.Get("output", "dir"); got != "soposts" {
		t.Errorf("round-trip dir = %q", got)
	}
}
