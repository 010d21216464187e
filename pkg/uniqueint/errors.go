package uniqueint

import "fmt"

// ReadError means the input could not be loaded. No output was touched.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read input %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError means the results were computed but could not be stored.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
