package salary

import (
	"strings"
	"time"

	"hradmin/internal/shared/dateutil"
)

// EmployeeDates carries the lifecycle fields the proration rules read. Dates
// are accepted in any representation dateutil.Normalize understands;
// unparseable values behave as absent.
type EmployeeDates struct {
	JoiningDate       any
	EmploymentEndDate any
	EmploymentStatus  string
}

// DaysWorked computes the attributable calendar days for the month
// [monthStart, monthEnd], both inclusive. Rules apply in order:
//
//  1. An end date before the month yields 0.
//  2. An end date inside the month counts from month start, regardless of
//     status. This also governs a same-month hire-and-leave, so the count
//     runs from month start rather than the joining date.
//  3. A resigned or terminated status with no end date in or before the
//     month yields 0.
//  4. A joining date inside the month counts from hire to month end.
//  5. Otherwise the full month counts.
func DaysWorked(emp EmployeeDates, monthStart, monthEnd time.Time) int {
	end, hasEnd := parseLifecycleDate(emp.EmploymentEndDate)

	if hasEnd && end.Before(monthStart) {
		return 0
	}
	if hasEnd && !end.Before(monthStart) && !end.After(monthEnd) {
		days := int(end.Sub(monthStart).Hours()/24) + 1
		if days < 0 {
			return 0
		}
		return days
	}
	if hasLeftStatus(emp.EmploymentStatus) && (!hasEnd || end.After(monthEnd)) {
		return 0
	}

	joined, hasJoined := parseLifecycleDate(emp.JoiningDate)
	if hasJoined && joined.After(monthStart) && !joined.After(monthEnd) {
		days := int(monthEnd.Sub(joined).Hours()/24) + 1
		if days < 0 {
			return 0
		}
		return days
	}

	return int(monthEnd.Sub(monthStart).Hours()/24) + 1
}

func parseLifecycleDate(v any) (time.Time, bool) {
	iso := dateutil.Normalize(v)
	if iso == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func hasLeftStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "resigned", "terminated":
		return true
	}
	return false
}
