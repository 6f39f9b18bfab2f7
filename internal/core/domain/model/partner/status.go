package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the operational state of a delivery partner.
//
// The status is informational: partner management operations flip it, but
// the assignment pipeline does not consult it when evaluating eligibility.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Active marks a partner as operational.
	Active

	// Inactive marks a partner as off duty.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Active:        "active",
		Inactive:      "inactive",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// StatusFromString parses the wire representation of a partner status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is either Active or Inactive.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
