package salary

import "github.com/shopspring/decimal"

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning   ComponentType = "earning"
	ComponentTypeDeduction ComponentType = "deduction"
)

// Component is a named earning or deduction line item. IsPercentage is
// carried from the source data but the calculation engine treats every
// amount as flat; see the payroll service.
type Component struct {
	ID           string
	Name         string
	Type         ComponentType
	Amount       decimal.Decimal
	IsPercentage bool
}

// Structure owns an employee's basic salary plus ordered earning and
// deduction components. One structure per employee in the demo dataset.
type Structure struct {
	ID            string
	EmployeeID    string
	BasicSalary   decimal.Decimal
	Allowances    []Component
	Deductions    []Component
	EffectiveDate string
	EndDate       *string
}
