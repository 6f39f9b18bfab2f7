// Package services contains stateless domain services that operate across
// aggregates: the AssignmentEvaluator rule pipeline that decides whether a
// partner may take an order, and the MetricsCalculator that aggregates the
// assignment history into a report.
package services
