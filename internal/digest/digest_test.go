package digest

import (
	"bytes"
	"regexp"
	"testing"
	"testing/fstest"

	"pocmirror/internal/failure"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		input  string
		sha1   string
		sha256 string
	}{
		{
			input:  "",
			sha1:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			sha256: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			input:  "abc",
			sha1:   "a9993e364706816aba3e25717850c26c9cd0d89d",
			sha256: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sum([]byte(tt.input))
			if got.SHA1 != tt.sha1 {
				t.Errorf("SHA1 = %s, want %s", got.SHA1, tt.sha1)
			}
			if got.SHA256 != tt.sha256 {
				t.Errorf("SHA256 = %s, want %s", got.SHA256, tt.sha256)
			}
		})
	}
}

func TestSumIsDeterministicAndFixedLength(t *testing.T) {
	content := bytes.Repeat([]byte("PoC||GTFO"), 1000)
	a := Sum(content)
	b := Sum(content)
	if a != b {
		t.Fatalf("digests differ between runs: %+v vs %+v", a, b)
	}
	if len(a.SHA1) != 40 || !lowerHex.MatchString(a.SHA1) {
		t.Fatalf("bad SHA1 %q", a.SHA1)
	}
	if len(a.SHA256) != 64 || !lowerHex.MatchString(a.SHA256) {
		t.Fatalf("bad SHA256 %q", a.SHA256)
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	content := []byte("streamed through both hashers")
	d, n, err := SumReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if n != int64(len(content)) {
		t.Fatalf("expected %d bytes read, got %d", len(content), n)
	}
	if d != Sum(content) {
		t.Fatalf("streamed digests differ from in-memory digests")
	}
}

func TestHashFile(t *testing.T) {
	fsys := fstest.MapFS{"a.pdf": {Data: []byte("abc")}}

	hf, err := HashFile(fsys, "a.pdf")
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if hf.Name != "a.pdf" || hf.Size != 3 {
		t.Fatalf("unexpected file info %+v", hf)
	}
	if hf.SHA1 != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Fatalf("unexpected SHA1 %s", hf.SHA1)
	}
}

func TestHashFileMissingIsHashIOError(t *testing.T) {
	_, err := HashFile(fstest.MapFS{}, "missing.pdf")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !failure.Is(err, failure.HashIO) {
		t.Fatalf("expected HashIO failure, got %v", err)
	}
}
