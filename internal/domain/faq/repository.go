package faq

import "context"

type Repository interface {
	// List returns active FAQs sorted ascending by display order, optionally
	// filtered by category (empty means all).
	List(ctx context.Context, category string) ([]FAQ, error)

	// Search matches the query case-insensitively against question and
	// answer text of active FAQs, sorted by display order.
	Search(ctx context.Context, query string) ([]FAQ, error)

	// Categories returns the sorted distinct categories of active FAQs.
	Categories(ctx context.Context) ([]string, error)
}
