package files

import (
	"errors"
	"fmt"
	"io/fs"
)

type ListingErrorKind int

const (
	Unreadable ListingErrorKind = iota
	NotFound
	NotADirectory
)

func (k ListingErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotADirectory:
		return "not a directory"
	default:
		return "unreadable"
	}
}

// ListingError is returned when a directory can not be listed.
// Callers keep whatever listing they had before.
type ListingError struct {
	Path string
	Kind ListingErrorKind
	Err  error
}

func (e *ListingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("can not list %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("can not list %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

func newListingError(dirPath string, err error) *ListingError {
	kind := Unreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = NotFound
	}
	return &ListingError{Path: dirPath, Kind: kind, Err: err}
}
