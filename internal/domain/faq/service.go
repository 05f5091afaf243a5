package faq

import "context"

type Service interface {
	// List returns active FAQs, optionally filtered by category and narrowed
	// by a free-text query.
	List(ctx context.Context, category, query string) ([]FAQ, error)

	// Categories returns the sorted distinct categories.
	Categories(ctx context.Context) ([]string, error)
}
