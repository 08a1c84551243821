// Package compression turns a brain dump into a short task list, either
// through an AI backend or by slicing a pre-itemised list.
package compression

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/llm"
)

var (
	// ErrEmptyInput means there was no text to compress.
	ErrEmptyInput = errors.New("empty brain dump")

	// ErrBackend wraps any failure of the AI backend call.
	ErrBackend = errors.New("ai backend failed")

	// ErrParse means the completion held no parseable JSON.
	ErrParse = errors.New("failed to parse ai response")

	// ErrInvalidStructure means the JSON did not match the task shape.
	ErrInvalidStructure = errors.New("invalid task structure")
)

// Messages shown to users for each failure kind.
const (
	MsgEmptyInput       = "Brain dump text is required"
	MsgParseFailed      = "Failed to parse AI response"
	MsgInvalidStructure = "Invalid task structure from AI"
)

// Result is the tagged outcome of Compress. Callers branch on Success;
// Err carries one of the package sentinels for errors.Is.
type Result struct {
	Success bool
	Tasks   []domain.Task
	Error   string
	Err     error
}

func failure(sentinel error, msg string, cause error) Result {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %v", sentinel, cause)
	}
	return Result{Error: msg, Err: err}
}

// Engine compresses text through an injected AI backend.
type Engine struct {
	backend llm.Backend
	task    llm.TaskConfig
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithTaskConfig overrides the sampling parameters sent with each request.
// Zero fields keep the defaults.
func WithTaskConfig(tc llm.TaskConfig) EngineOption {
	return func(e *Engine) {
		if tc.Temperature > 0 {
			e.task.Temperature = tc.Temperature
		}
		if tc.MaxTokens > 0 {
			e.task.MaxTokens = tc.MaxTokens
		}
	}
}

// NewEngine creates an Engine. The backend is the only collaborator; no
// process environment is read.
func NewEngine(backend llm.Backend, opts ...EngineOption) *Engine {
	e := &Engine{
		backend: backend,
		task:    llm.TaskConfig{Temperature: llm.CompressTemperature, MaxTokens: llm.CompressMaxTokens},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) request(text string, c *domain.AICapacity) llm.CompletionRequest {
	return llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt(c)},
			{Role: llm.RoleUser, Content: text},
		},
		Temperature: e.task.Temperature,
		MaxTokens:   e.task.MaxTokens,
	}
}

// Compress sends text to the backend and returns a validated task list no
// longer than the capacity allows. It never returns an error or panics
// with a well-behaved backend; every failure is folded into the Result.
// There is no timeout here: a hanging backend hangs the call unless ctx
// carries a deadline.
func (e *Engine) Compress(ctx context.Context, text string, c *domain.AICapacity) Result {
	if strings.TrimSpace(text) == "" {
		return failure(ErrEmptyInput, MsgEmptyInput, nil)
	}

	completion, err := e.backend.Complete(ctx, e.request(text, c))
	if err != nil {
		return failure(ErrBackend, err.Error(), err)
	}

	candidate, ok := parseCompletion(completion.Content)
	if !ok {
		return failure(ErrParse, MsgParseFailed, nil)
	}
	if !ValidateAIResponse(candidate) {
		return failure(ErrInvalidStructure, MsgInvalidStructure, nil)
	}
	tasks, err := decodeTasks(candidate)
	if err != nil {
		return failure(ErrInvalidStructure, MsgInvalidStructure, err)
	}

	if c != nil {
		if limit := capacity.MaxTasks(*c); len(tasks) > limit {
			tasks = tasks[:limit]
		}
	}
	return Result{Success: true, Tasks: tasks}
}

// Stream starts a completion with the same prompt selection as Compress and
// hands back the provider's bytes unparsed and unvalidated.
func (e *Engine) Stream(ctx context.Context, text string, c *domain.AICapacity) (io.ReadCloser, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	rc, err := e.backend.Stream(ctx, e.request(text, c))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return rc, nil
}
