package compliance

import "github.com/shopspring/decimal"

type RuleResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Jurisdiction  string           `json:"jurisdiction"`
	Type          string           `json:"type"`
	Rule          string           `json:"rule"`
	EffectiveDate string           `json:"effective_date"`
	EndDate       *string          `json:"end_date,omitempty"`
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

func ToRuleResponses(rules []Rule) []RuleResponse {
	result := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, RuleResponse{
			ID:            r.ID,
			Name:          r.Name,
			Jurisdiction:  r.Jurisdiction,
			Type:          string(r.Type),
			Rule:          r.Rule,
			EffectiveDate: r.EffectiveDate,
			EndDate:       r.EndDate,
			Percentage:    r.Percentage,
			Amount:        r.Amount,
		})
	}
	return result
}

type BracketResponse struct {
	MinAmount         decimal.Decimal  `json:"min_amount"`
	MaxAmount         *decimal.Decimal `json:"max_amount,omitempty"`
	TaxRate           decimal.Decimal  `json:"tax_rate"`
	StandardDeduction *decimal.Decimal `json:"standard_deduction,omitempty"`
}

type SlabResponse struct {
	ID            string            `json:"id"`
	Jurisdiction  string            `json:"jurisdiction"`
	FinancialYear string            `json:"financial_year"`
	Brackets      []BracketResponse `json:"brackets"`
	Surcharge     decimal.Decimal   `json:"surcharge"`
	CessPercent   decimal.Decimal   `json:"cess_percent"`
}

func ToSlabResponse(s Slab) SlabResponse {
	brackets := make([]BracketResponse, 0, len(s.Brackets))
	for _, b := range s.Brackets {
		brackets = append(brackets, BracketResponse{
			MinAmount:         b.MinAmount,
			MaxAmount:         b.MaxAmount,
			TaxRate:           b.TaxRate,
			StandardDeduction: b.StandardDeduction,
		})
	}
	return SlabResponse{
		ID:            s.ID,
		Jurisdiction:  s.Jurisdiction,
		FinancialYear: s.FinancialYear,
		Brackets:      brackets,
		Surcharge:     s.Surcharge,
		CessPercent:   s.CessPercent,
	}
}
