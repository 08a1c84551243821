package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat message sent to a backend.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest holds the parameters for a completion call.
type CompletionRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Usage reports token accounting when the provider supplies it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the text a backend produced.
type Completion struct {
	Content   string
	Usage     *Usage
	Provider  Provider
	Model     string
	LatencyMs int64
}

// Backend is the AI completion capability the compression engine depends
// on. Implementations must support at least system and user messages.
type Backend interface {
	// Complete returns the full completion text.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)

	// Stream returns the completion as raw bytes while it is generated.
	// The caller must Close the reader.
	Stream(ctx context.Context, req CompletionRequest) (io.ReadCloser, error)
}

// chatBackend adapts an Eino chat model to Backend.
type chatBackend struct {
	provider Provider
	model    string
	chat     model.BaseChatModel
	observer Observer
}

// NewChatBackend wraps an Eino chat model. It is exported so tests and
// custom wiring can supply their own model.
func NewChatBackend(provider Provider, modelName string, chat model.BaseChatModel, observer Observer) Backend {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &chatBackend{provider: provider, model: modelName, chat: chat, observer: observer}
}

func (b *chatBackend) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	start := time.Now()

	resp, err := b.chat.Generate(ctx, toSchemaMessages(req.Messages), generateOptions(req)...)
	if err == nil && (resp == nil || resp.Content == "") {
		err = ErrEmptyCompletion
	}
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = classifyError(ctx, err)
		b.observer.OnCallComplete(CallEvent{
			Provider: b.provider, Model: b.model, LatencyMs: latency,
			ErrorCode: errorCode(err),
		})
		return nil, fmt.Errorf("%s completion: %w", b.provider, err)
	}

	usage := usageFrom(resp)
	b.observer.OnCallComplete(CallEvent{
		Provider: b.provider, Model: b.model, LatencyMs: latency,
		Success: true, Usage: usage,
	})
	return &Completion{
		Content:   resp.Content,
		Usage:     usage,
		Provider:  b.provider,
		Model:     b.model,
		LatencyMs: latency,
	}, nil
}

func (b *chatBackend) Stream(ctx context.Context, req CompletionRequest) (io.ReadCloser, error) {
	start := time.Now()

	sr, err := b.chat.Stream(ctx, toSchemaMessages(req.Messages), generateOptions(req)...)
	if err != nil {
		err = classifyError(ctx, err)
		b.observer.OnCallComplete(CallEvent{
			Provider: b.provider, Model: b.model, Streamed: true,
			LatencyMs: time.Since(start).Milliseconds(), ErrorCode: errorCode(err),
		})
		return nil, fmt.Errorf("%s stream: %w", b.provider, err)
	}

	pr, pw := io.Pipe()
	go func() {
		err := pumpStream(sr, pw)
		b.observer.OnCallComplete(CallEvent{
			Provider: b.provider, Model: b.model, Streamed: true,
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil, ErrorCode: errorCode(err),
		})
	}()
	return pr, nil
}

// pumpStream copies message chunks into the pipe until the stream ends or
// the reader side is closed.
func pumpStream(sr *schema.StreamReader[*schema.Message], pw *io.PipeWriter) error {
	defer sr.Close()
	for {
		chunk, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			return pw.Close()
		}
		if err != nil {
			_ = pw.CloseWithError(err)
			return err
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		if _, err := pw.Write([]byte(chunk.Content)); err != nil {
			// Reader closed; stop pulling from the provider.
			return nil
		}
	}
}

func toSchemaMessages(msgs []Message) []*schema.Message {
	out := make([]*schema.Message, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, schema.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, schema.AssistantMessage(m.Content, nil))
		default:
			out = append(out, schema.UserMessage(m.Content))
		}
	}
	return out
}

func generateOptions(req CompletionRequest) []model.Option {
	var opts []model.Option
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(req.Temperature)))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}
	return opts
}

func usageFrom(msg *schema.Message) *Usage {
	if msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return nil
	}
	u := msg.ResponseMeta.Usage
	return &Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

func classifyError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrEmptyCompletion):
		return "EMPTY"
	case errors.Is(err, ErrMissingCredentials):
		return "CREDENTIALS"
	default:
		return "UNKNOWN"
	}
}
