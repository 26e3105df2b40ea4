package repositories

import "errors"

// ErrNotFound reports that no record matched the requested id. Callers
// dispatch on it with errors.Is.
var ErrNotFound = errors.New("record not found")
