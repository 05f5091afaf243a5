package attendance

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

func ToRecordResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, RecordResponse{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			Date:         r.Date,
			Status:       string(r.Status),
			CheckInTime:  r.CheckInTime,
			CheckOutTime: r.CheckOutTime,
			Remarks:      r.Remarks,
		})
	}
	return result
}

type SummaryResponse struct {
	EmployeeID           string  `json:"employee_id"`
	Month                string  `json:"month"`
	TotalWorkingDays     int     `json:"total_working_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	HalfDays             int     `json:"half_days"`
	LeaveDays            int     `json:"leave_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:           s.EmployeeID,
		Month:                s.Month,
		TotalWorkingDays:     s.TotalWorkingDays,
		PresentDays:          s.PresentDays,
		AbsentDays:           s.AbsentDays,
		HalfDays:             s.HalfDays,
		LeaveDays:            s.LeaveDays,
		AttendancePercentage: s.AttendancePercentage,
	}
}
