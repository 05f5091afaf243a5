package attendance

import "context"

type Service interface {
	// ListRecords returns an employee's records, optionally narrowed to a
	// month.
	ListRecords(ctx context.Context, employeeID, month string) ([]RecordResponse, error)

	// GetSummary returns the stored monthly rollup.
	GetSummary(ctx context.Context, employeeID, month string) (SummaryResponse, error)

	// RecomputeSummary derives the rollup from the month's records. Half days
	// count as half a present day towards the percentage.
	RecomputeSummary(ctx context.Context, employeeID, month string) (SummaryResponse, error)
}
