package attendance

// Status enum for one calendar day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
	StatusWeekend Status = "weekend"
)

// Record is one calendar-day attendance entry for an employee.
type Record struct {
	ID           string
	EmployeeID   string
	Date         string
	Status       Status
	CheckInTime  *string
	CheckOutTime *string
	Remarks      *string
}

// Summary is the monthly rollup. It is a derived quantity: recomputing it
// from the records of the same month must reproduce the stored counts.
type Summary struct {
	EmployeeID           string
	Month                string
	TotalWorkingDays     int
	PresentDays          int
	AbsentDays           int
	HalfDays             int
	LeaveDays            int
	AttendancePercentage float64
}
