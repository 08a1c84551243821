package repository

import "errors"

// ErrNotFound is returned when a lookup by id or key matches no row.
var ErrNotFound = errors.New("not found")
