package cli

import (
	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/spf13/pflag"
)

// aiCapacityValue is a pflag.Value accepting light, medium or full.
type aiCapacityValue struct {
	c *domain.AICapacity
}

var _ pflag.Value = (*aiCapacityValue)(nil)

func (v *aiCapacityValue) String() string {
	if v.c == nil {
		return ""
	}
	return string(*v.c)
}

func (v *aiCapacityValue) Set(s string) error {
	c, err := capacity.ParseAICapacity(s)
	if err != nil {
		return err
	}
	v.c = &c
	return nil
}

func (v *aiCapacityValue) Type() string { return "capacity" }

// Capacity returns the parsed flag, or nil when it was not given.
func (v *aiCapacityValue) Capacity() *domain.AICapacity { return v.c }

func addAICapacityFlag(fs *pflag.FlagSet, v *aiCapacityValue) {
	fs.VarP(v, "capacity", "c", "How much you can take on today: light, medium or full")
}

// sliceCapacityValue is a pflag.Value accepting low, medium or high.
type sliceCapacityValue struct {
	c domain.SliceCapacity
}

var _ pflag.Value = (*sliceCapacityValue)(nil)

func (v *sliceCapacityValue) String() string { return string(v.c) }

func (v *sliceCapacityValue) Set(s string) error {
	c, err := capacity.ParseSliceCapacity(s)
	if err != nil {
		return err
	}
	v.c = c
	return nil
}

func (v *sliceCapacityValue) Type() string { return "capacity" }
