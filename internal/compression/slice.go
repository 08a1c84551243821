package compression

import (
	"strings"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/google/uuid"
)

// CompressItems keeps the first few items for a capacity. The override
// nudges the count by one step but never below the base or above base+1.
func CompressItems(c domain.SliceCapacity, items []domain.Item, override int) []domain.Item {
	base := capacity.SliceBase(c)
	limit := clamp(base+override, base, capacity.SliceCeiling(c))
	if limit > len(items) {
		limit = len(items)
	}
	out := make([]domain.Item, limit)
	copy(out, items[:limit])
	return out
}

// PinEmotional makes sure the emotional item from all is visible. When it
// fell outside the slice it is put first and the last visible item is
// dropped, so the visible length stays the same.
func PinEmotional(all, visible []domain.Item) []domain.Item {
	if len(visible) == 0 {
		return visible
	}
	var pinned *domain.Item
	for i := range all {
		if all[i].Emotional {
			pinned = &all[i]
			break
		}
	}
	if pinned == nil {
		return visible
	}
	for _, v := range visible {
		if v.ID == pinned.ID {
			return visible
		}
	}

	out := make([]domain.Item, 0, len(visible))
	out = append(out, *pinned)
	out = append(out, visible[:len(visible)-1]...)
	return out
}

// ParseItems creates one item per non-blank line.
func ParseItems(text string) []domain.Item {
	var items []domain.Item
	for _, line := range strings.Split(text, "\n") {
		label := strings.TrimSpace(line)
		if label == "" {
			continue
		}
		items = append(items, domain.Item{ID: uuid.New().String(), Label: label})
	}
	return items
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
