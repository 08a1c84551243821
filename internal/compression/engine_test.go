package compression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	content string
	err     error
	lastReq llm.CompletionRequest
	calls   int
}

func (f *fakeBackend) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Content: f.content}, nil
}

func (f *fakeBackend) Stream(ctx context.Context, req llm.CompletionRequest) (io.ReadCloser, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func tasksJSON(t *testing.T, n int) string {
	t.Helper()
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{
			Title:           fmt.Sprintf("Task %d", i+1),
			DurationMinutes: 15,
			Color:           domain.ColorBlue,
			Reasoning:       "r",
		}
	}
	raw, err := json.Marshal(tasks)
	require.NoError(t, err)
	return string(raw)
}

func capPtr(c domain.AICapacity) *domain.AICapacity { return &c }

func TestCompress_TruncatesToCapacityInOrder(t *testing.T) {
	backend := &fakeBackend{content: tasksJSON(t, 10)}
	eng := NewEngine(backend)

	res := eng.Compress(context.Background(), "everything at once", capPtr(domain.CapacityFull))

	require.True(t, res.Success, res.Error)
	require.Len(t, res.Tasks, 7)
	for i, task := range res.Tasks {
		assert.Equal(t, fmt.Sprintf("Task %d", i+1), task.Title)
	}
}

func TestCompress_OutputLengthEqualsMaxForEveryCapacity(t *testing.T) {
	want := map[domain.AICapacity]int{
		domain.CapacityLight:  3,
		domain.CapacityMedium: 5,
		domain.CapacityFull:   7,
	}
	for c, max := range want {
		t.Run(string(c), func(t *testing.T) {
			eng := NewEngine(&fakeBackend{content: tasksJSON(t, max+4)})
			res := eng.Compress(context.Background(), "dump", capPtr(c))
			require.True(t, res.Success)
			assert.Len(t, res.Tasks, max)
		})
	}
}

func TestCompress_NoCapacityKeepsAllTasks(t *testing.T) {
	backend := &fakeBackend{content: tasksJSON(t, 10)}
	res := NewEngine(backend).Compress(context.Background(), "dump", nil)

	require.True(t, res.Success)
	assert.Len(t, res.Tasks, 10)
	assert.Equal(t, GenericPrompt, backend.lastReq.Messages[0].Content)
}

func TestCompress_RequestShape(t *testing.T) {
	backend := &fakeBackend{content: tasksJSON(t, 1)}
	NewEngine(backend).Compress(context.Background(), "buy milk", capPtr(domain.CapacityLight))

	req := backend.lastReq
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "AT MOST 3 tasks")
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Equal(t, "buy milk", req.Messages[1].Content)
	assert.InDelta(t, llm.CompressTemperature, req.Temperature, 1e-9)
	assert.Equal(t, llm.CompressMaxTokens, req.MaxTokens)
}

func TestCompress_WithTaskConfig(t *testing.T) {
	backend := &fakeBackend{content: tasksJSON(t, 1)}
	NewEngine(backend, WithTaskConfig(llm.TaskConfig{Temperature: 0.7})).Compress(context.Background(), "buy milk", nil)

	assert.InDelta(t, 0.7, backend.lastReq.Temperature, 1e-9)
	assert.Equal(t, llm.CompressMaxTokens, backend.lastReq.MaxTokens, "zero keeps the default")
}

func TestCompress_ExtractsArrayWrappedInProse(t *testing.T) {
	content := "Sure! Here is your plan:\n" +
		`[{"title":"Call mom","duration_minutes":15,"color":"coral","reasoning":"errand"}]` +
		"\nGood luck today."
	res := NewEngine(&fakeBackend{content: content}).Compress(context.Background(), "call mom", nil)

	require.True(t, res.Success, res.Error)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Call mom", res.Tasks[0].Title)
	assert.Equal(t, domain.ColorCoral, res.Tasks[0].Color)
}

func TestCompress_ParseFailure(t *testing.T) {
	res := NewEngine(&fakeBackend{content: "I could not think of anything."}).
		Compress(context.Background(), "dump", nil)

	assert.False(t, res.Success)
	assert.Equal(t, MsgParseFailed, res.Error)
	assert.ErrorIs(t, res.Err, ErrParse)
	assert.Empty(t, res.Tasks)
}

func TestCompress_InvalidStructure(t *testing.T) {
	content := `[{"title":"Ok","duration_minutes":10,"color":"blue","reasoning":"x"},
		{"title":"Bad","duration_minutes":10,"color":"red","reasoning":"x"}]`
	res := NewEngine(&fakeBackend{content: content}).Compress(context.Background(), "dump", nil)

	assert.False(t, res.Success)
	assert.Equal(t, MsgInvalidStructure, res.Error)
	assert.ErrorIs(t, res.Err, ErrInvalidStructure)
}

func TestCompress_ObjectInsteadOfArrayIsInvalidStructure(t *testing.T) {
	res := NewEngine(&fakeBackend{content: `{"tasks":[]}`}).Compress(context.Background(), "dump", nil)

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrInvalidStructure)
}

func TestCompress_BackendError(t *testing.T) {
	res := NewEngine(&fakeBackend{err: errors.New("connection refused")}).
		Compress(context.Background(), "dump", nil)

	assert.False(t, res.Success)
	assert.Equal(t, "connection refused", res.Error)
	assert.ErrorIs(t, res.Err, ErrBackend)
}

func TestCompress_EmptyInputSkipsBackend(t *testing.T) {
	backend := &fakeBackend{content: tasksJSON(t, 1)}
	res := NewEngine(backend).Compress(context.Background(), "   \n", nil)

	assert.False(t, res.Success)
	assert.Equal(t, MsgEmptyInput, res.Error)
	assert.ErrorIs(t, res.Err, ErrEmptyInput)
	assert.Equal(t, 0, backend.calls)
}

func TestStream_PassesBytesThroughUnvalidated(t *testing.T) {
	backend := &fakeBackend{content: "not json at all"}
	rc, err := NewEngine(backend).Stream(context.Background(), "dump", capPtr(domain.CapacityMedium))
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "not json at all", string(body))
	assert.Contains(t, backend.lastReq.Messages[0].Content, "AT MOST 5 tasks")
}

func TestStream_BackendError(t *testing.T) {
	_, err := NewEngine(&fakeBackend{err: errors.New("boom")}).Stream(context.Background(), "dump", nil)
	assert.ErrorIs(t, err, ErrBackend)
}

func TestCompress_WithMockBackend(t *testing.T) {
	res := NewEngine(llm.NewMockBackend()).
		Compress(context.Background(), "email landlord\nwalk the dog\nfinish report\npay rent", capPtr(domain.CapacityLight))

	require.True(t, res.Success, res.Error)
	assert.Len(t, res.Tasks, 3)
	assert.Equal(t, "Email landlord", res.Tasks[0].Title)
}
