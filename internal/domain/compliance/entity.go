package compliance

import "github.com/shopspring/decimal"

// RuleType enum
type RuleType string

const (
	RuleTypeTax       RuleType = "tax"
	RuleTypeDeduction RuleType = "deduction"
	RuleTypeEarning   RuleType = "earning"
	RuleTypeLeave     RuleType = "leave"
	RuleTypeOther     RuleType = "other"
)

// Rule is one jurisdictional compliance entry. Rules are fixture data in
// this scope; there is no update path.
type Rule struct {
	ID            string
	Name          string
	Jurisdiction  string
	Type          RuleType
	Rule          string
	EffectiveDate string
	EndDate       *string
	Percentage    *decimal.Decimal
	Amount        *decimal.Decimal
	IsActive      bool
}

// Bracket is one marginal band of a tax slab. MaxAmount nil means unbounded.
// StandardDeduction is only meaningful on the bottom bracket and is applied
// once before bracket evaluation.
type Bracket struct {
	MinAmount         decimal.Decimal
	MaxAmount         *decimal.Decimal
	TaxRate           decimal.Decimal
	StandardDeduction *decimal.Decimal
}

// Slab is a jurisdiction- and year-specific ordered schedule of brackets,
// ascending and non-overlapping by MinAmount.
type Slab struct {
	ID            string
	Jurisdiction  string
	FinancialYear string
	Brackets      []Bracket
	Surcharge     decimal.Decimal
	CessPercent   decimal.Decimal
}
