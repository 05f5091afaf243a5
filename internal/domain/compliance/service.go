package compliance

import "context"

type Service interface {
	// ListRules returns active rules, optionally filtered by type (empty
	// string means all).
	ListRules(ctx context.Context, ruleType string) ([]RuleResponse, error)

	// GetTaxSlab returns the configured jurisdiction's slab.
	GetTaxSlab(ctx context.Context) (SlabResponse, error)
}
