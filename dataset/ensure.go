package dataset

import (
	"errors"
	"fmt"
	"os"
)

// ErrFetchIncomplete indicates the fetch function returned without creating
// the marker path.
var ErrFetchIncomplete = errors.New("dataset: fetch did not produce the marker")

// EnsureLocal makes sure a local copy exists. When marker (a file or a
// directory) is present it returns (false, nil) without calling fetch.
// Otherwise it calls fetch once and reports (true, nil) if the marker exists
// afterwards. Repeated calls are cheap once the copy is in place.
func EnsureLocal(marker string, fetch func() error) (fetched bool, err error) {
	ok, err := exists(marker)
	if err != nil {
		return false, fmt.Errorf("EnsureLocal: %w", err)
	}
	if ok {
		return false, nil
	}

	if err := fetch(); err != nil {
		return false, fmt.Errorf("EnsureLocal: fetch: %w", err)
	}
	if ok, err = exists(marker); err != nil {
		return true, fmt.Errorf("EnsureLocal: %w", err)
	}
	if !ok {
		return true, fmt.Errorf("EnsureLocal: %s: %w", marker, ErrFetchIncomplete)
	}
	return true, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
