package partner

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	minShiftHour = 0
	maxShiftHour = 23
)

// ErrShiftIsNotConstructed is returned when a Shift was created bypassing
// the NewShift constructor.
var ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift constructor")

// Shift is a value object describing the hour-of-day window during which a
// delivery partner is eligible for assignment.
//
// Both bounds are inclusive: a partner whose shift runs 9-17 is considered
// on shift at hour 9 and at hour 17. A boundary hour is therefore valid for
// both adjacent shifts, which is the deliberate policy of this system.
//
// Invariants: start and end are hours in [0,23] and start <= end.
type Shift struct {
	start int
	end   int

	guard kernel.ConstructorGuard
}

// NewShift creates a Shift and validates the hour bounds.
func NewShift(start, end int) (Shift, error) {
	shift := Shift{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		shift.setStart(start),
		shift.setEnd(end),
	); err != nil {
		return Shift{}, err
	}

	if start > end {
		return Shift{}, errs.NewValueIsInvalidErrorWithCause(
			"shift",
			fmt.Errorf("start hour %d is after end hour %d", start, end),
		)
	}

	return shift, nil
}

// Start returns the first on-shift hour.
func (s Shift) Start() int {
	return s.start
}

// End returns the last on-shift hour.
func (s Shift) End() int {
	return s.end
}

// Contains reports whether the given hour of day falls inside the shift
// window, inclusive on both ends.
func (s Shift) Contains(hour int) bool {
	return hour >= s.start && hour <= s.end
}

// IsEqual compares two shifts by their bounds.
func (s Shift) IsEqual(other Shift) bool {
	return s.start == other.start && s.end == other.end
}

// Validate ensures the Shift was created through NewShift.
func (s Shift) Validate() error {
	return s.guard.Validate(ErrShiftIsNotConstructed)
}

func (s *Shift) setStart(start int) error {
	if start < minShiftHour || start > maxShiftHour {
		return errs.NewValueIsOutOfRangeError("shift start", start, minShiftHour, maxShiftHour)
	}
	s.start = start
	return nil
}

func (s *Shift) setEnd(end int) error {
	if end < minShiftHour || end > maxShiftHour {
		return errs.NewValueIsOutOfRangeError("shift end", end, minShiftHour, maxShiftHour)
	}
	s.end = end
	return nil
}
