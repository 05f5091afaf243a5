package compliance

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
)

type ComplianceServiceImpl struct {
	complianceRepo compliance.Repository
	jurisdiction   string
	financialYear  string
}

func NewComplianceService(complianceRepo compliance.Repository, jurisdiction, financialYear string) compliance.Service {
	return &ComplianceServiceImpl{
		complianceRepo: complianceRepo,
		jurisdiction:   jurisdiction,
		financialYear:  financialYear,
	}
}

// ListRules implements compliance.Service.
func (s *ComplianceServiceImpl) ListRules(ctx context.Context, ruleType string) ([]compliance.RuleResponse, error) {
	var (
		rules []compliance.Rule
		err   error
	)
	if ruleType == "" {
		rules, err = s.complianceRepo.ListActiveRules(ctx)
	} else {
		rules, err = s.complianceRepo.ListRulesByType(ctx, compliance.RuleType(ruleType))
	}
	if err != nil {
		return nil, err
	}
	return compliance.ToRuleResponses(rules), nil
}

// GetTaxSlab implements compliance.Service.
func (s *ComplianceServiceImpl) GetTaxSlab(ctx context.Context) (compliance.SlabResponse, error) {
	slab, err := s.complianceRepo.GetSlab(ctx, s.jurisdiction, s.financialYear)
	if err != nil {
		return compliance.SlabResponse{}, err
	}
	return compliance.ToSlabResponse(slab), nil
}
