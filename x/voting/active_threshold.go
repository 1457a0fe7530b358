package voting

import (
	"fmt"

	"cosmossdk.io/math"
)

// ActiveThreshold is the minimum amount of backing a voting module needs
// before the DAO it powers may act. Exactly one of the two fields is set.
type ActiveThreshold struct {
	// AbsoluteCount requires at least this much total power.
	AbsoluteCount *math.Int `json:"absolute_count,omitempty"`
	// Percentage requires total power to reach this share of the backing
	// token's supply, expressed as a decimal in (0, 1].
	Percentage *math.LegacyDec `json:"percentage,omitempty"`
}

// Validate checks that exactly one variant is set and its value is sane.
func (t ActiveThreshold) Validate() error {
	if t.AbsoluteCount != nil && t.Percentage != nil {
		return fmt.Errorf("active threshold: only one of absolute_count and percentage may be set")
	}
	switch {
	case t.AbsoluteCount != nil:
		if t.AbsoluteCount.IsNil() || !t.AbsoluteCount.IsPositive() {
			return fmt.Errorf("active threshold: absolute count must be positive")
		}
	case t.Percentage != nil:
		if t.Percentage.IsNil() || !t.Percentage.IsPositive() {
			return fmt.Errorf("active threshold: percentage must be positive")
		}
		if t.Percentage.GT(math.LegacyOneDec()) {
			return fmt.Errorf("active threshold: percentage cannot exceed 1")
		}
	default:
		return fmt.Errorf("active threshold: one of absolute_count or percentage must be set")
	}
	return nil
}

// Met reports whether the given total power satisfies the threshold against
// the backing supply. Supply is only consulted for the percentage variant.
func (t ActiveThreshold) Met(total math.Int, supply math.Int) bool {
	if t.AbsoluteCount != nil {
		return total.GTE(*t.AbsoluteCount)
	}
	if t.Percentage != nil {
		if supply.IsZero() {
			return false
		}
		required := t.Percentage.MulInt(supply).Ceil().TruncateInt()
		return total.GTE(required)
	}
	return true
}
