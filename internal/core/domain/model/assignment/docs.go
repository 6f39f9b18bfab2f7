// Package assignment contains the immutable Assignment audit record.
// One record is written per evaluation attempt, capturing the outcome and,
// for rejected attempts, the machine-readable failure reason that the
// metrics aggregation later groups by.
package assignment
