package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pocmirror/internal/failure"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"volume": 1, "year": 2010, "month": "January", "description": "First", "files": ["a.pdf"]},
		{"volume": 2, "year": 2010, "month": "March", "description": "Second", "files": ["b.pdf", "c.pdf"]}
	]`)

	c, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(c))
	}
	second := c[1]
	if second.Volume != 2 || second.Year != 2010 || second.Month != March || second.Description != "Second" {
		t.Fatalf("unexpected issue %+v", second)
	}
	if len(second.Files) != 2 || second.Files[0] != "b.pdf" || second.Files[1] != "c.pdf" {
		t.Fatalf("unexpected files %v", second.Files)
	}
}

func TestParseJSONWithComments(t *testing.T) {
	data := []byte(`[
		// the first one
		{"volume": 0, "year": 2013, "month": "August", "description": "Zero", "files": ["pocorgtfo00.pdf",],},
	]`)

	c, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c) != 1 || c[0].Month != August || c[0].PrimaryFile() != "pocorgtfo00.pdf" {
		t.Fatalf("unexpected catalog %+v", c)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
- volume: 3
  year: 2014
  month: February
  description: Third
  files:
    - pocorgtfo03.pdf
`)
	c, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c) != 1 || c[0].Volume != 3 || c[0].Month != February {
		t.Fatalf("unexpected catalog %+v", c)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr string
	}{
		{"not an array", FormatJSON, `{"volume": 1}`, "invalid json"},
		{"null document", FormatJSON, `null`, "list of issues"},
		{"unknown month", FormatJSON, `[{"volume":1,"year":2010,"month":"january","description":"x","files":["a"]}]`, `unknown month "january"`},
		{"numeric month", FormatJSON, `[{"volume":1,"year":2010,"month":0,"description":"x","files":["a"]}]`, "month must be a string"},
		{"volume overflow", FormatJSON, `[{"volume":256,"year":2010,"month":"May","description":"x","files":["a"]}]`, "invalid json"},
		{"negative year", FormatJSON, `[{"volume":1,"year":-1,"month":"May","description":"x","files":["a"]}]`, "invalid json"},
		{"missing fields", FormatJSON, `[{"volume":1,"month":"May","files":["a"]}]`, "missing field(s) year, description"},
		{"empty files", FormatJSON, `[{"volume":1,"year":2010,"month":"May","description":"x","files":[]}]`, "issue has no files"},
		{"escaping file", FormatJSON, `[{"volume":1,"year":2010,"month":"May","description":"x","files":["../etc/passwd"]}]`, "invalid file name"},
		{"yaml unknown month", FormatYAML, "- volume: 1\n  year: 2010\n  month: Smarch\n  description: x\n  files: [a]\n", `unknown month "Smarch"`},
		{"yaml numeric description", FormatYAML, "- volume: 1\n  year: 2010\n  month: May\n  description: 42\n  files: [a]\n", "description must be a string"},
		{"yaml non-string files", FormatYAML, "- volume: 1\n  year: 2010\n  month: May\n  description: x\n  files: [1, true]\n", "file name must be a string"},
		{"yaml numeric month", FormatYAML, "- volume: 1\n  year: 2010\n  month: 5\n  description: x\n  files: [a]\n", "month must be a string"},
		{"json numeric description", FormatJSON, `[{"volume":1,"year":2010,"month":"May","description":42,"files":["a"]}]`, "invalid json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseYAMLQuotedScalars(t *testing.T) {
	data := []byte("- volume: 4\n  year: 2014\n  month: \"March\"\n  description: \"42\"\n  files: [\"2014\"]\n")
	c, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c[0].Description != "42" || c[0].PrimaryFile() != "2014" {
		t.Fatalf("quoted scalars not kept as text: %+v", c[0])
	}
}

func TestLoadWrapsInputErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "config.json"))
	if !failure.Is(err, failure.Input) {
		t.Fatalf("expected input failure for missing catalog, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("[{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = Load(bad)
	if !failure.Is(err, failure.Input) {
		t.Fatalf("expected input failure for malformed catalog, got %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Fatalf("expected error to name %s, got %v", bad, err)
	}
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "- {volume: 7, year: 2015, month: March, description: Seven, files: [pocorgtfo07.pdf]}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c) != 1 || c[0].Volume != 7 {
		t.Fatalf("unexpected catalog %+v", c)
	}
}

func TestIssueValidateRequiresFiles(t *testing.T) {
	issue := Issue{Volume: 1, Year: 2010, Month: January, Description: "x"}
	if err := issue.Validate(); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
	issue.Files = []File{"a.pdf"}
	if err := issue.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDuplicateVolumes(t *testing.T) {
	c := Catalog{
		{Volume: 1, Files: []File{"a"}},
		{Volume: 2, Files: []File{"b"}},
		{Volume: 1, Files: []File{"c"}},
		{Volume: 1, Files: []File{"d"}},
	}
	dups := c.DuplicateVolumes()
	if len(dups) != 1 || dups[0] != 1 {
		t.Fatalf("expected [1], got %v", dups)
	}
}

func TestMonthNames(t *testing.T) {
	if January.String() != "January" || December.String() != "December" {
		t.Fatalf("unexpected month names")
	}
	for m := January; m <= December; m++ {
		parsed, err := ParseMonth(m.String())
		if err != nil || parsed != m {
			t.Fatalf("ParseMonth(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if Month(12).String() != "Month(12)" {
		t.Fatalf("out-of-range month should not index the table")
	}
}
