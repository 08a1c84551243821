package compression

import (
	"encoding/json"
	"regexp"
)

// embeddedArray spans from the first '[' to the last ']' so prose around a
// JSON array is ignored.
var embeddedArray = regexp.MustCompile(`(?s)\[.*\]`)

// parseCompletion decodes raw AI text in two stages: the text as-is, then
// the first embedded JSON array. ok is false when neither stage parses.
func parseCompletion(raw string) (candidate any, ok bool) {
	if err := json.Unmarshal([]byte(raw), &candidate); err == nil {
		return candidate, true
	}

	match := embeddedArray.FindString(raw)
	if match == "" {
		return nil, false
	}
	candidate = nil
	if err := json.Unmarshal([]byte(match), &candidate); err != nil {
		return nil, false
	}
	return candidate, true
}
