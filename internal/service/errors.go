package service

import "errors"

// ErrCompressionFailed wraps every failed compression. The underlying
// compression sentinel stays reachable through errors.Is.
var ErrCompressionFailed = errors.New("compression failed")

// ErrInvalidPreferences marks scheduling preferences that fail validation.
var ErrInvalidPreferences = errors.New("invalid schedule preferences")
