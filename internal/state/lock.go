package state

import (
	"fmt"

	"github.com/gofrs/flock"

	"pocmirror/internal/log"
)

// AcquireLock takes an exclusive advisory lock on path so two builds never
// write the same output tree at once. It returns a release function which
// should be deferred by the caller. If another process holds the lock an
// error is returned immediately.
func AcquireLock(path string) (func() error, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s is held by another build", path)
	}
	log.Debug("acquired lock", "path", path)

	release := func() error {
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("release lock %s: %w", path, err)
		}
		log.Debug("released lock", "path", path)
		return nil
	}
	return release, nil
}
