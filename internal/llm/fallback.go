package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// NamedBackend pairs a backend with the provider it talks to.
type NamedBackend struct {
	Provider Provider
	Backend  Backend
}

// FallbackBackend tries each backend in order and returns the first
// success. It is the provider-selection collaborator; the compression
// engine itself never retries.
type FallbackBackend struct {
	chain []NamedBackend
}

// NewFallbackBackend chains backends in priority order.
func NewFallbackBackend(chain ...NamedBackend) *FallbackBackend {
	return &FallbackBackend{chain: chain}
}

func (f *FallbackBackend) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	var errs []error
	for _, nb := range f.chain {
		c, err := nb.Backend.Complete(ctx, req)
		if err == nil {
			return c, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", nb.Provider, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

func (f *FallbackBackend) Stream(ctx context.Context, req CompletionRequest) (io.ReadCloser, error) {
	var errs []error
	for _, nb := range f.chain {
		rc, err := nb.Backend.Stream(ctx, req)
		if err == nil {
			return rc, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", nb.Provider, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}
