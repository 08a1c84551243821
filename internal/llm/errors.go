package llm

import "errors"

var (
	// ErrUnsupportedProvider indicates an unknown provider name.
	ErrUnsupportedProvider = errors.New("unsupported ai provider")

	// ErrMissingCredentials indicates a provider was selected without the
	// API key or account it needs.
	ErrMissingCredentials = errors.New("ai provider credentials missing")

	// ErrTimeout indicates the request exceeded the caller's deadline.
	ErrTimeout = errors.New("ai request timed out")

	// ErrEmptyCompletion indicates the provider answered with no text.
	ErrEmptyCompletion = errors.New("ai provider returned an empty completion")

	// ErrAllProvidersFailed indicates every backend in a fallback chain failed.
	ErrAllProvidersFailed = errors.New("all ai providers failed")
)
