package employee

type Employee struct {
	ID                string
	FirstName         string
	LastName          string
	Email             string
	Phone             *string
	Department        string
	Designation       string
	EmploymentDate    string
	ExitDate          *string
	Status            Status
	SalaryStructureID string
	PersonalEmail     *string
	Address           *string
	City              *string
	State             *string
	PinCode           *string
	PANNumber         *string
	AadharNumber      *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
