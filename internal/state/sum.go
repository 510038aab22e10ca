package state

import (
	"fmt"
	"os"
	"sort"

	"pocmirror/internal/digest"
)

// Sum is the integrity ledger written next to a published mirror. It maps
// every published file name to the digests shown in the index.
type Sum struct {
	Version int                `yaml:"version"`
	Title   string             `yaml:"title,omitempty"`
	Files   map[string]FileSum `yaml:"files"`
}

// FileSum holds the recorded digests and size of one published file.
type FileSum struct {
	SHA1   string `yaml:"sha1"`
	SHA256 string `yaml:"sha256"`
	Size   int64  `yaml:"size"`
}

// NewSum builds a ledger from the files hashed during a render. A file
// referenced more than once keeps its last digests; they are identical
// unless the file changed mid-run.
func NewSum(title string, hashed []digest.HashedFile) *Sum {
	s := &Sum{Version: 1, Title: title, Files: make(map[string]FileSum, len(hashed))}
	for _, hf := range hashed {
		s.SetFile(hf)
	}
	return s
}

// SetFile sets or updates a file entry.
func (s *Sum) SetFile(hf digest.HashedFile) {
	if s.Files == nil {
		s.Files = make(map[string]FileSum)
	}
	s.Files[hf.Name] = FileSum{SHA1: hf.SHA1, SHA256: hf.SHA256, Size: hf.Size}
}

// Names returns the recorded file names in sorted order.
func (s *Sum) Names() []string {
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSum parses the ledger at path. Returns an error satisfying
// os.IsNotExist if it is missing.
func LoadSum(path string) (*Sum, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, err
	}

	var sum Sum
	if err := ReadYAML(path, &sum); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if sum.Version != 1 {
		return nil, fmt.Errorf("%s: unsupported ledger version %d", path, sum.Version)
	}
	if sum.Files == nil {
		sum.Files = make(map[string]FileSum)
	}
	return &sum, nil
}

// SaveSum writes the ledger to path. yaml.v3 emits map keys sorted, so the
// output is deterministic.
func SaveSum(path string, s *Sum) error {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Files == nil {
		s.Files = make(map[string]FileSum)
	}
	return WriteYAML(path, s)
}
