package diff

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"pocmirror/internal/digest"
	"pocmirror/internal/log"
	"pocmirror/internal/state"
)

// Status is the outcome of checking one published file against the ledger.
type Status string

const (
	StatusOK        Status = "OK"
	StatusModified  Status = "MODIFIED"
	StatusMissing   Status = "MISSING"
	StatusUntracked Status = "UNTRACKED"
)

// Item is the verification result for a single file.
type Item struct {
	Status Status
	Path   string
	Reason string
}

// Check re-hashes every file recorded in sum from fsys (the published files
// directory) and reports files present on disk but absent from the ledger.
// Items are sorted by path.
func Check(sum *state.Sum, fsys fs.FS) ([]Item, error) {
	var items []Item

	for _, name := range sum.Names() {
		known := sum.Files[name]
		hf, err := digest.HashFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				items = append(items, Item{Status: StatusMissing, Path: name, Reason: "Recorded in ledger; not on disk"})
				continue
			}
			return nil, err
		}
		status, reason := determineStatus(hf, known)
		items = append(items, Item{Status: status, Path: name, Reason: reason})
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// No published directory at all: every ledger entry is already MISSING.
			if path == "." && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := sum.Files[path]; !ok {
			items = append(items, Item{Status: StatusUntracked, Path: path, Reason: "On disk; not recorded in ledger"})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk published files: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

// determineStatus contains the pure comparison logic.
func determineStatus(current digest.HashedFile, known state.FileSum) (Status, string) {
	switch {
	case current.SHA256 != known.SHA256:
		return StatusModified, "SHA-256 differs"
	case current.SHA1 != known.SHA1:
		return StatusModified, "SHA-1 differs"
	case current.Size != known.Size:
		return StatusModified, fmt.Sprintf("Size %d, recorded %d", current.Size, known.Size)
	default:
		return StatusOK, "Up to date"
	}
}

// Clean reports whether every item is OK.
func Clean(items []Item) bool {
	for _, item := range items {
		if item.Status != StatusOK {
			return false
		}
	}
	return true
}

// PrintSummary prints counts per status followed by every problem item.
func PrintSummary(items []Item) {
	counts := make(map[Status]int)
	for _, item := range items {
		counts[item.Status]++
	}

	log.Println("---------------------------------------------------")
	log.Printf("VERIFY SUMMARY: %d files checked\n", len(items))
	for _, s := range []Status{StatusOK, StatusModified, StatusMissing, StatusUntracked} {
		if counts[s] > 0 {
			log.Printf("   %-10s %d\n", s, counts[s])
		}
	}
	log.Println("---------------------------------------------------")

	printGroup(items, StatusModified)
	printGroup(items, StatusMissing)
	printGroup(items, StatusUntracked)
}

func printGroup(items []Item, status Status) {
	hasItems := false
	for _, item := range items {
		if item.Status == status {
			hasItems = true
			break
		}
	}
	if !hasItems {
		return
	}

	log.Printf("\n%s\n", status)
	for _, item := range items {
		if item.Status == status {
			log.Printf("   %s\n", item.Path)
			log.Printf("     └─ Reason: %s\n", item.Reason)
		}
	}
}
