package compression

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAIResponse reports whether candidate, the result of decoding AI
// output into an untyped value, is a list of well-formed tasks. A single
// bad element rejects the whole batch.
func ValidateAIResponse(candidate any) bool {
	list, ok := candidate.([]any)
	if !ok {
		return false
	}
	for _, el := range list {
		if !validTaskObject(el) {
			return false
		}
	}
	return true
}

func validTaskObject(el any) bool {
	obj, ok := el.(map[string]any)
	if !ok {
		return false
	}
	if title, ok := obj["title"].(string); !ok || title == "" {
		return false
	}
	if d, ok := obj["duration_minutes"].(float64); !ok || d <= 0 {
		return false
	}
	color, ok := obj["color"].(string)
	if !ok || !domain.ValidColors[domain.Color(color)] {
		return false
	}
	if _, ok := obj["reasoning"].(string); !ok {
		return false
	}
	return true
}

// ValidateTasks applies the same rules to typed tasks via struct tags.
func ValidateTasks(tasks []domain.Task) error {
	for i := range tasks {
		if err := validate.Struct(tasks[i]); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
	}
	return nil
}

// decodeTasks converts a validated untyped candidate into tasks.
func decodeTasks(candidate any) ([]domain.Task, error) {
	raw, err := json.Marshal(candidate)
	if err != nil {
		return nil, err
	}
	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, err
	}
	if err := ValidateTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
