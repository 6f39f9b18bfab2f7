package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the terminal outcome of a single assignment evaluation.
// There are only two: the evaluation either assigned the order or it did not.
// A failed evaluation is a normal outcome, not an error.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Success means every rule passed and the order was assigned.
	Success

	// Failed means a rule rejected the pairing; the record carries the reason.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Success:       "success",
		Failed:        "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Success: "success",
		Failed:  "failed",
	}
}

// StatusFromString parses the wire representation of an outcome status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is either Success or Failed.
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
