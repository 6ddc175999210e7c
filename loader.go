package marina

import (
	"fmt"
	"log"
	"os"

	"github.com/gofrs/flock"
)

// LoadFleet reads the whole fleet file at path.
//
// A file that cannot be opened is not fatal: the session starts with an
// empty fleet and a warning, and the file is created on save.
func LoadFleet(path string, capacity int) (*Fleet, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("warning: could not open %q for reading, starting with an empty fleet", path)
		return NewFleet(capacity), nil
	}
	defer f.Close()

	fleet, err := DecodeFleet(f, capacity)
	if err != nil {
		return nil, fmt.Errorf("could not decode fleet file %q: %w", path, err)
	}
	return fleet, nil
}

// SaveFleet rewrites the whole fleet file at path. On failure to open the
// file for writing the error is returned and the prior on-disk state is
// left unchanged.
func SaveFleet(path string, fleet *Fleet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeFleet(f, fleet); err != nil {
		return fmt.Errorf("could not save fleet to %q: %w", path, err)
	}
	return nil
}

// LockSession takes an advisory lock next to the fleet file so that a
// second session cannot silently overwrite this one's save. The caller
// must Unlock the returned lock when the session ends.
func LockSession(path string) (*flock.Flock, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock fleet file %q: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("fleet file %q is in use by another session", path)
	}
	return lock, nil
}
