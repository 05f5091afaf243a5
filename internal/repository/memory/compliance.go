package memory

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
)

type complianceRepositoryImpl struct {
	rules []compliance.Rule
	slabs []compliance.Slab
}

func NewComplianceRepository(rules []compliance.Rule, slabs []compliance.Slab) compliance.Repository {
	return &complianceRepositoryImpl{rules: rules, slabs: slabs}
}

// ListRulesByType implements compliance.Repository.
func (r *complianceRepositoryImpl) ListRulesByType(ctx context.Context, ruleType compliance.RuleType) ([]compliance.Rule, error) {
	var out []compliance.Rule
	for _, rule := range r.rules {
		if rule.IsActive && rule.Type == ruleType {
			out = append(out, rule)
		}
	}
	return out, nil
}

// ListActiveRules implements compliance.Repository.
func (r *complianceRepositoryImpl) ListActiveRules(ctx context.Context) ([]compliance.Rule, error) {
	var out []compliance.Rule
	for _, rule := range r.rules {
		if rule.IsActive {
			out = append(out, rule)
		}
	}
	return out, nil
}

// GetSlab implements compliance.Repository.
func (r *complianceRepositoryImpl) GetSlab(ctx context.Context, jurisdiction, financialYear string) (compliance.Slab, error) {
	for _, slab := range r.slabs {
		if slab.Jurisdiction == jurisdiction && slab.FinancialYear == financialYear {
			return slab, nil
		}
	}
	return compliance.Slab{}, compliance.ErrSlabNotFound
}
