// Package queries contains read-only operations in the CQRS split.
// Query handlers read the database directly into flat read models,
// bypassing the aggregate repositories used by the write side.
package queries

import "time"

// Clock abstracts the current time so the metrics report stays deterministic
// under test; record ages are measured against it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
