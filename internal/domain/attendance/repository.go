package attendance

import "context"

type Repository interface {
	// ListRecords returns an employee's records, optionally narrowed to a
	// "YYYY-MM" month (empty month means all). Source order is preserved.
	ListRecords(ctx context.Context, employeeID string, month string) ([]Record, error)

	// GetSummary returns the stored monthly rollup for an employee.
	GetSummary(ctx context.Context, employeeID string, month string) (Summary, error)

	// ListSummaries returns all stored rollups for an employee.
	ListSummaries(ctx context.Context, employeeID string) ([]Summary, error)
}
