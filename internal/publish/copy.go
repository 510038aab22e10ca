package publish

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"pocmirror/internal/state"
)

var errSameFile = errors.New("source and destination are the same file")

// copyFile streams src to dst, creating dst's parent directory when the
// file name has a directory part. dst must not be src itself.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if srcInfo, err := in.Stat(); err == nil {
		if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
			return errSameFile
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), state.DirPerm); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, state.FilePerm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
