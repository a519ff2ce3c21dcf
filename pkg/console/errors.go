package console

import "fmt"

// WriteFailure reports a write that did not reach the OS in full.
type WriteFailure struct {
	Stream  Stream
	Written int
	Err     error
}

func (e *WriteFailure) Error() string {
	if e.Written > 0 {
		return fmt.Sprintf("write to %s failed after %d bytes: %v", e.Stream, e.Written, e.Err)
	}
	return fmt.Sprintf("write to %s failed: %v", e.Stream, e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}
