package compression

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []domain.Item {
	out := make([]domain.Item, n)
	for i := range out {
		out[i] = domain.Item{ID: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("item %d", i)}
	}
	return out
}

func ids(in []domain.Item) []string {
	out := make([]string, len(in))
	for i, it := range in {
		out[i] = it.ID
	}
	return out
}

func TestCompressItems_Limits(t *testing.T) {
	all := items(10)
	tests := []struct {
		c        domain.SliceCapacity
		override int
		want     int
	}{
		{domain.SliceLow, 0, 1},
		{domain.SliceLow, 1, 2},
		{domain.SliceLow, -1, 1},
		{domain.SliceLow, 5, 2},
		{domain.SliceMedium, 0, 3},
		{domain.SliceMedium, 1, 4},
		{domain.SliceHigh, 0, 5},
		{domain.SliceHigh, 1, 6},
		{domain.SliceHigh, 2, 6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s%+d", tt.c, tt.override), func(t *testing.T) {
			got := CompressItems(tt.c, all, tt.override)
			require.Len(t, got, tt.want)
			assert.Equal(t, ids(all[:tt.want]), ids(got))
		})
	}
}

func TestCompressItems_FewerItemsThanLimit(t *testing.T) {
	got := CompressItems(domain.SliceHigh, items(4), 1)
	assert.Len(t, got, 4)

	assert.Empty(t, CompressItems(domain.SliceLow, nil, 0))
}

func TestCompressItems_ReturnsCopy(t *testing.T) {
	all := items(3)
	got := CompressItems(domain.SliceMedium, all, 0)
	got[0].Label = "changed"
	assert.Equal(t, "item 0", all[0].Label)
}

func TestCompressItems_MonotonicInOverride(t *testing.T) {
	all := items(10)
	for _, c := range []domain.SliceCapacity{domain.SliceLow, domain.SliceMedium, domain.SliceHigh} {
		prev := 0
		for o := -3; o <= 3; o++ {
			n := len(CompressItems(c, all, o))
			assert.GreaterOrEqual(t, n, prev, "capacity %s override %d", c, o)
			prev = n
		}
	}
}

func TestPinEmotional_OutsideWindowIsPrepended(t *testing.T) {
	all := items(6)
	all[4].Emotional = true
	visible := CompressItems(domain.SliceMedium, all, 0)

	got := PinEmotional(all, visible)

	assert.Equal(t, []string{"i4", "i0", "i1"}, ids(got))
}

func TestPinEmotional_AlreadyVisibleUnchanged(t *testing.T) {
	all := items(6)
	all[1].Emotional = true
	visible := CompressItems(domain.SliceMedium, all, 0)

	assert.Equal(t, []string{"i0", "i1", "i2"}, ids(PinEmotional(all, visible)))
}

func TestPinEmotional_LastInUnslicedOrder(t *testing.T) {
	all := items(5)
	all[4].Emotional = true
	visible := CompressItems(domain.SliceLow, all, 1)

	got := PinEmotional(all, visible)

	// The single pinned slot displaces the previous last visible item.
	assert.Equal(t, []string{"i4", "i0"}, ids(got))
}

func TestPinEmotional_SingleVisibleSlotIsReplaced(t *testing.T) {
	all := items(3)
	all[2].Emotional = true
	visible := CompressItems(domain.SliceLow, all, 0)

	assert.Equal(t, []string{"i2"}, ids(PinEmotional(all, visible)))
}

func TestPinEmotional_NoEmotionalItem(t *testing.T) {
	all := items(4)
	visible := all[:2]
	assert.Equal(t, ids(visible), ids(PinEmotional(all, visible)))
}

func TestParseItems(t *testing.T) {
	got := ParseItems("  laundry \n\n call dentist\n   \nemail boss")
	require.Len(t, got, 3)
	assert.Equal(t, "laundry", got[0].Label)
	assert.Equal(t, "call dentist", got[1].Label)
	assert.Equal(t, "email boss", got[2].Label)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Len(t, got[0].ID, 36)
}
