// Package digest computes the integrity digests shown next to every
// mirrored file: a SHA-1 for legacy tooling and a SHA-256.
package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"

	"pocmirror/internal/failure"
)

// Digests holds the lower-case hex SHA-1 (40 chars) and SHA-256 (64 chars)
// of one byte sequence.
type Digests struct {
	SHA1   string
	SHA256 string
}

// HashedFile is a file name paired with its digests. It only lives for the
// duration of a render.
type HashedFile struct {
	Name string
	Size int64
	Digests
}

// Sum hashes content with both algorithms.
func Sum(content []byte) Digests {
	s1 := sha1.Sum(content)
	s256 := sha256.Sum256(content)
	return Digests{
		SHA1:   hex.EncodeToString(s1[:]),
		SHA256: hex.EncodeToString(s256[:]),
	}
}

// SumReader streams r once through both hashers and returns the digests
// along with the number of bytes read.
func SumReader(r io.Reader) (Digests, int64, error) {
	h1 := sha1.New()
	h256 := sha256.New()
	n, err := io.Copy(io.MultiWriter(h1, h256), r)
	if err != nil {
		return Digests{}, n, err
	}
	return Digests{
		SHA1:   hex.EncodeToString(h1.Sum(nil)),
		SHA256: hex.EncodeToString(h256.Sum(nil)),
	}, n, nil
}

// HashFile reads name from fsys and hashes it. Any read error is returned
// as a failure.HashIO error; callers treat it as fatal for the whole run.
func HashFile(fsys fs.FS, name string) (HashedFile, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return HashedFile{}, failure.New(failure.HashIO, "hash", name, err)
	}
	defer f.Close()

	d, n, err := SumReader(f)
	if err != nil {
		return HashedFile{}, failure.New(failure.HashIO, "hash", name, err)
	}
	return HashedFile{Name: name, Size: n, Digests: d}, nil
}
