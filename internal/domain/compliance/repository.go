package compliance

import "context"

type Repository interface {
	// ListRulesByType returns active rules of the given type in source order.
	ListRulesByType(ctx context.Context, ruleType RuleType) ([]Rule, error)

	// ListActiveRules returns every active rule in source order.
	ListActiveRules(ctx context.Context) ([]Rule, error)

	// GetSlab fetches the tax slab for a jurisdiction and financial year.
	GetSlab(ctx context.Context, jurisdiction, financialYear string) (Slab, error)
}
