package testutil

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/alexanderramin/braindump/internal/llm"
)

// FakeBackend is a scripted llm.Backend that records every request.
type FakeBackend struct {
	mu       sync.Mutex
	Content  string
	Err      error
	Requests []llm.CompletionRequest
}

func NewFakeBackend(content string) *FakeBackend {
	return &FakeBackend{Content: content}
}

func (f *FakeBackend) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	return &llm.Completion{Content: f.Content, Provider: "fake", Model: "fake-1"}, nil
}

func (f *FakeBackend) Stream(ctx context.Context, req llm.CompletionRequest) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	return io.NopCloser(strings.NewReader(f.Content)), nil
}

// Calls returns how many requests were made.
func (f *FakeBackend) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}
