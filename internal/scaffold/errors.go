package scaffold

import "fmt"

// PathError reports a failed directory or file operation during fallback
// layout materialization. The scaffold is left partially written; directory
// creation is idempotent so a retry is safe.
type PathError struct {
	Op   string // "mkdir" or "write".
	Path string // Exact path that failed.
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *PathError) Unwrap() error {
	return e.Err
}
