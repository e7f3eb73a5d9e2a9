package orthography

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors for unrecognized caller arguments,
// e.g. an unknown target standard.
var ErrInvalidArgument = errors.New("invalid argument")

// ResourceError reports a persisted artifact which exists but cannot be
// decoded. It is returned only from explicit load calls, never from
// conversion or classification.
type ResourceError struct {
	Resource string // file name or identifier of the artifact
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource %q: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// IsResourceError is a predicate for err wrapping a *ResourceError.
func IsResourceError(err error) bool {
	var rerr *ResourceError
	return errors.As(err, &rerr)
}
