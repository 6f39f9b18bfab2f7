package services

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// MetricsReport summarizes the full assignment history.
type MetricsReport struct {
	// TotalAssigned is the count of all recorded evaluation attempts.
	TotalAssigned int

	// SuccessRate is successful attempts divided by TotalAssigned.
	// When no attempts are recorded the rate is 0: an empty history reports
	// as "no data", it never divides by zero or propagates an error.
	SuccessRate float64

	// AverageTime is the mean age, in milliseconds, of successful records at
	// the moment the report is computed. Note this measures how long ago
	// successes were recorded, not delivery latency; the quirk is inherited
	// from the records carrying a single timestamp. 0 when there are no
	// successes.
	AverageTime float64

	// FailureReasons counts failed attempts grouped by reason. Failed records
	// without a reason are bucketed under assignment.ReasonUnknown.
	FailureReasons map[string]int
}

// MetricsCalculator computes aggregate statistics over assignment records.
// It is a pure domain service: a single O(n) pass over the records with no
// side effects, so computing the same history twice yields identical reports.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a MetricsCalculator instance.
func NewMetricsCalculator() MetricsCalculator {
	return MetricsCalculator{}
}

// Calculate aggregates the given records into a MetricsReport.
// The now argument anchors the age computation for AverageTime.
func (MetricsCalculator) Calculate(records []*assignment.Assignment, now time.Time) MetricsReport {
	var (
		successCount int
		totalAge     float64
	)
	failureReasons := make(map[string]int)

	for _, record := range records {
		if record.IsSuccess() {
			successCount++
			totalAge += float64(now.Sub(record.Timestamp()).Milliseconds())
			continue
		}

		reason := assignment.ReasonUnknown
		if record.Reason() != nil && *record.Reason() != "" {
			reason = *record.Reason()
		}
		failureReasons[reason]++
	}

	report := MetricsReport{
		TotalAssigned:  len(records),
		FailureReasons: failureReasons,
	}
	if len(records) > 0 {
		report.SuccessRate = float64(successCount) / float64(len(records))
	}
	if successCount > 0 {
		report.AverageTime = totalAge / float64(successCount)
	}

	return report
}
