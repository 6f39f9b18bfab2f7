package commands

import "time"

// Clock abstracts the current time so handlers stay deterministic under test.
// The evaluation instant matters: its local hour of day drives the shift rule
// and the same instant is stamped on the audit record.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
