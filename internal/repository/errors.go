package repository

import "errors"

// ErrNotFound is returned when a record lookup finds no matching row.
var ErrNotFound = errors.New("not found")
