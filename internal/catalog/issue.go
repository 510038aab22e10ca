package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrNoFiles is returned by Validate for an issue without any file.
var ErrNoFiles = errors.New("issue has no files")

// File is the name of a file under the source directory. It does not own
// any bytes; content is read when the file is hashed or copied.
type File string

// Name returns the file name as a string.
func (f File) Name() string { return string(f) }

func (f *File) UnmarshalYAML(value *yaml.Node) error {
	name, err := scalarString(value, "file name")
	if err != nil {
		return err
	}
	*f = File(name)
	return nil
}

// Issue is one catalog entry.
//
// Issues are ordered and compared by Volume alone, see CompareByVolume.
// Description is emitted into the index verbatim.
type Issue struct {
	Volume      uint8
	Year        uint16
	Month       Month
	Description string
	Files       []File
}

// PrimaryFile is the issue's main download, the first declared file.
// Callers must have validated the issue.
func (i Issue) PrimaryFile() File {
	return i.Files[0]
}

// Validate checks that the issue has at least one file and that every
// file name is a clean relative path that stays inside its directory.
func (i Issue) Validate() error {
	if len(i.Files) == 0 {
		return ErrNoFiles
	}
	for _, f := range i.Files {
		if !fs.ValidPath(f.Name()) || f.Name() == "." {
			return fmt.Errorf("invalid file name %q", f.Name())
		}
	}
	return nil
}

// CompareByVolume orders issues by volume number only. Issues with equal
// volumes compare equal even when their years differ.
func CompareByVolume(a, b Issue) int {
	return cmp.Compare(a.Volume, b.Volume)
}

// SameVolume reports whether a and b are the same issue under the
// volume-only ordering.
func SameVolume(a, b Issue) bool {
	return CompareByVolume(a, b) == 0
}
