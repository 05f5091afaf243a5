package dateutil

import (
	"fmt"
	"time"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for year-month tokens.
	MonthLayout = "2006-01"
)

// ParseDate parses a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMonth parses a "YYYY-MM" month token to the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDays counts days in [startDate, endDate] inclusive, excluding
// Saturdays and Sundays. Returns 0 when endDate is before startDate.
func WorkingDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days++
		}
	}
	return days, nil
}

// DaysBetween returns the inclusive calendar-day count between two dates,
// i.e. the day difference plus one.
func DaysBetween(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// CurrentMonth formats now as a "YYYY-MM" token.
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// PreviousMonth returns the month token preceding the given one.
func PreviousMonth(month string) (string, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	return first.AddDate(0, 0, -1).Format(MonthLayout), nil
}

// NextMonth returns the month token following the given one. Adding 32 days
// to the first of the month always overflows into the next month regardless
// of month length.
func NextMonth(month string) (string, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	return first.AddDate(0, 0, 32).Format(MonthLayout), nil
}

// WorkingDaysInMonth counts the weekday days of a "YYYY-MM" month.
func WorkingDaysInMonth(month string) (int, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)
	return WorkingDays(first.Format(DateLayout), last.Format(DateLayout))
}

// MonthName returns the display form of a month token, e.g. "January 2025".
// Unparsable input is echoed back unchanged.
func MonthName(month string) string {
	first, err := ParseMonth(month)
	if err != nil {
		return month
	}
	return first.Format("January 2006")
}

// InRange reports whether date lies within [startDate, endDate] inclusive.
func InRange(date, startDate, endDate string) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return false, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return false, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	return !d.Before(start) && !d.After(end), nil
}

// IsLeaveDay reports whether date is a leave day: an approved request's
// inclusive range contains it, or an attendance record on that exact date has
// the leave status. The sources are independent; either one suffices and
// disagreement between them is not an error.
func IsLeaveDay(date string, requests []leave.Request, records []attendance.Record) (bool, error) {
	for _, req := range requests {
		if req.Status != leave.RequestStatusApproved {
			continue
		}
		in, err := InRange(date, req.StartDate, req.EndDate)
		if err != nil {
			return false, err
		}
		if in {
			return true, nil
		}
	}

	for _, rec := range records {
		if rec.Date == date && rec.Status == attendance.StatusLeave {
			return true, nil
		}
	}
	return false, nil
}

// WholeYearsBetween returns the number of completed years between two dates,
// floored at zero. Used for tenure figures such as years of service.
func WholeYearsBetween(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	years := end.Year() - start.Year()
	anniversary := start.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, nil
}
