package providers

import (
	"errors"
	"fmt"
)

// FetchError captures transport failures, timeouts and non-2xx responses from the upstream provider.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream fetch %s failed (status=%d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ShapeError reports upstream JSON that does not match the expected structure at a path.
type ShapeError struct {
	Path     string
	Expected string
	Got      any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid upstream shape at %s: expected %s, got %T", e.Path, e.Expected, e.Got)
}

// NotFoundError reports that no upstream candidate could produce the requested resource.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s not found: %v", e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AsShapeError attempts to unwrap an error into a ShapeError.
func AsShapeError(err error) (*ShapeError, bool) {
	var se *ShapeError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
