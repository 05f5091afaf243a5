package settlement

import "context"

type Service interface {
	GetByID(ctx context.Context, id string) (Response, error)

	// List returns settlements, optionally filtered by status (nil means all).
	List(ctx context.Context, status *Status) ([]Response, error)

	// Calculate computes the full-and-final components for an exiting
	// employee and moves the settlement to calculated. A settlement that
	// already exists for the employee is recomputed in place if its status
	// allows it; otherwise a new one is opened.
	Calculate(ctx context.Context, req CalculateRequest, calculatedBy string) (Response, error)

	// Approve moves a calculated settlement to approved.
	Approve(ctx context.Context, id, approvedBy string) (Response, error)

	// MarkPaid moves an approved settlement to paid. Paid is terminal.
	MarkPaid(ctx context.Context, id string) (Response, error)

	// Cancel moves any pre-paid settlement to cancelled.
	Cancel(ctx context.Context, id string) (Response, error)
}
