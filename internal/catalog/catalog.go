package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"pocmirror/internal/failure"
)

// Catalog is the flat issue list as authored, before sorting or grouping.
type Catalog []Issue

// Format selects the catalog syntax.
type Format int

const (
	// FormatJSON accepts JSON with comments and trailing commas.
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks a format from the catalog file extension. Anything that
// is not .yml or .yaml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawIssue mirrors Issue with pointer fields so missing keys can be told
// apart from zero values.
type rawIssue struct {
	Volume      *uint8       `json:"volume" yaml:"volume"`
	Year        *uint16      `json:"year" yaml:"year"`
	Month       *Month       `json:"month" yaml:"month"`
	Description *description `json:"description" yaml:"description"`
	Files       *[]File      `json:"files" yaml:"files"`
}

// description is the YAML-strict form of Issue.Description.
type description string

func (d *description) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalarString(value, "description")
	if err != nil {
		return err
	}
	*d = description(s)
	return nil
}

// scalarString returns the value of a YAML string scalar. Plain scalars
// that resolve to numbers, booleans or null are rejected.
func scalarString(value *yaml.Node, what string) (string, error) {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return "", fmt.Errorf("line %d: %s must be a string", value.Line, what)
	}
	return value.Value, nil
}

func (r rawIssue) issue() (Issue, error) {
	var missing []string
	if r.Volume == nil {
		missing = append(missing, "volume")
	}
	if r.Year == nil {
		missing = append(missing, "year")
	}
	if r.Month == nil {
		missing = append(missing, "month")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.Files == nil {
		missing = append(missing, "files")
	}
	if len(missing) > 0 {
		return Issue{}, fmt.Errorf("missing field(s) %s", strings.Join(missing, ", "))
	}
	return Issue{
		Volume:      *r.Volume,
		Year:        *r.Year,
		Month:       *r.Month,
		Description: string(*r.Description),
		Files:       *r.Files,
	}, nil
}

// Parse decodes a catalog document. Every entry must carry all five fields
// and pass Issue.Validate; the first problem aborts the parse.
func Parse(data []byte, format Format) (Catalog, error) {
	var raw []rawIssue
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	}
	if raw == nil {
		return nil, errors.New("catalog must be a list of issues")
	}

	c := make(Catalog, 0, len(raw))
	for i, r := range raw {
		issue, err := r.issue()
		if err != nil {
			return nil, fmt.Errorf("issue %d: %w", i, err)
		}
		if err := issue.Validate(); err != nil {
			return nil, fmt.Errorf("issue %d (volume %d): %w", i, issue.Volume, err)
		}
		c = append(c, issue)
	}
	return c, nil
}

// Load reads and parses the catalog at path. Errors are failure.Input.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.New(failure.Input, "read catalog", path, err)
	}
	c, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, failure.New(failure.Input, "parse catalog", path, err)
	}
	return c, nil
}

// DuplicateVolumes lists volume numbers that occur more than once, in
// first-seen order.
func (c Catalog) DuplicateVolumes() []uint8 {
	seen := make(map[uint8]int, len(c))
	var dups []uint8
	for _, issue := range c {
		seen[issue.Volume]++
		if seen[issue.Volume] == 2 {
			dups = append(dups, issue.Volume)
		}
	}
	return dups
}
