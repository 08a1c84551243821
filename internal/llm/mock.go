package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// MockBackend answers with tasks derived from the user's own lines. It is
// what the app uses when no provider is configured, so the whole flow can
// be tried offline.
type MockBackend struct{}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

type mockTask struct {
	Title           string  `json:"title"`
	DurationMinutes float64 `json:"duration_minutes"`
	Color           string  `json:"color"`
	Reasoning       string  `json:"reasoning"`
}

var mockColors = []string{"blue", "green", "orange", "coral", "purple"}

func (m *MockBackend) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mock completion: %w", err)
	}
	body, err := json.Marshal(mockTasks(lastUserMessage(req.Messages)))
	if err != nil {
		return nil, fmt.Errorf("mock completion: %w", err)
	}
	return &Completion{Content: string(body), Provider: ProviderMock, Model: DefaultModel(ProviderMock)}, nil
}

func (m *MockBackend) Stream(ctx context.Context, req CompletionRequest) (io.ReadCloser, error) {
	c, err := m.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(c.Content)), nil
}

func lastUserMessage(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

// mockTasks splits text on newlines, semicolons and sentence ends.
func mockTasks(text string) []mockTask {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';' || r == '.' || r == '!' || r == '?'
	})

	tasks := make([]mockTask, 0, len(parts))
	for _, p := range parts {
		title := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(p), "-*•"))
		if title == "" {
			continue
		}
		if len(title) > 60 {
			title = strings.TrimSpace(title[:57]) + "..."
		}
		i := len(tasks)
		tasks = append(tasks, mockTask{
			Title:           capitalize(title),
			DurationMinutes: float64(15 + (i%3)*10),
			Color:           mockColors[i%len(mockColors)],
			Reasoning:       "Taken straight from your brain dump",
		})
	}
	if len(tasks) == 0 {
		tasks = append(tasks, mockTask{
			Title:           "Take five minutes to write down what is on your mind",
			DurationMinutes: 5,
			Color:           "purple",
			Reasoning:       "Nothing concrete was listed yet",
		})
	}
	return tasks
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
