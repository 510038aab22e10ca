// Package failure defines the error kinds a mirror build can end with.
//
// Every stage returns an *Error instead of exiting; only the command layer
// turns one into a process exit.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies which stage of the build failed.
type Kind int

const (
	// Input means the catalog was missing or malformed.
	Input Kind = iota + 1
	// HashIO means a referenced file could not be read while hashing.
	HashIO
	// Output means the output directory or the index could not be written.
	Output
	// Copy means a referenced file could not be copied to the output tree.
	Copy
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case HashIO:
		return "hash"
	case Output:
		return "output"
	case Copy:
		return "copy"
	default:
		return "unknown"
	}
}

// Error is a stage failure. Op names the operation, Path the file or
// directory involved when there is one.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind.
func New(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Is reports whether any error in err's chain is an *Error of kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
