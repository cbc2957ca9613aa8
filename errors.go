package md5

import "fmt"

// ReadError is returned when the source being hashed fails. No digest is
// produced for that source.
type ReadError struct {
	// N is the number of bytes consumed before the failure.
	N   int64
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("md5: read failed after %d bytes: %v", e.N, e.Err)
}

// Unwrap returns the error reported by the source.
func (e *ReadError) Unwrap() error { return e.Err }

// Cause is Unwrap for github.com/pkg/errors.
func (e *ReadError) Cause() error { return e.Err }
