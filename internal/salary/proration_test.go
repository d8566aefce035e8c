package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func jan2025() (time.Time, time.Time) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestDaysWorkedMidMonthHire(t *testing.T) {
	start, end := jan2025()
	emp := EmployeeDates{JoiningDate: "2025-01-10", EmploymentStatus: "Active"}

	assert.Equal(t, 22, DaysWorked(emp, start, end))
}

func TestDaysWorkedMidMonthLeave(t *testing.T) {
	start, end := jan2025()

	for _, status := range []string{"Active", "Resigned", "Terminated", ""} {
		emp := EmployeeDates{
			JoiningDate:       "2023-03-01",
			EmploymentEndDate: "2025-01-15",
			EmploymentStatus:  status,
		}
		assert.Equal(t, 15, DaysWorked(emp, start, end), "status %q", status)
	}
}

func TestDaysWorkedLeftBeforeMonth(t *testing.T) {
	start, end := jan2025()
	emp := EmployeeDates{
		JoiningDate:       "2023-03-01",
		EmploymentEndDate: "2024-12-20",
		EmploymentStatus:  "Resigned",
	}

	assert.Equal(t, 0, DaysWorked(emp, start, end))
}

func TestDaysWorkedStatusOverridesMissingEndDate(t *testing.T) {
	start, end := jan2025()

	emp := EmployeeDates{JoiningDate: "2023-03-01", EmploymentStatus: "resigned"}
	assert.Equal(t, 0, DaysWorked(emp, start, end))

	emp.EmploymentEndDate = "2025-03-31"
	assert.Equal(t, 0, DaysWorked(emp, start, end), "end date after the month behaves like missing")
}

func TestDaysWorkedFullMonth(t *testing.T) {
	start, end := jan2025()

	emp := EmployeeDates{JoiningDate: "2023-03-01", EmploymentStatus: "Active"}
	assert.Equal(t, 31, DaysWorked(emp, start, end))

	emp = EmployeeDates{EmploymentStatus: "Active"}
	assert.Equal(t, 31, DaysWorked(emp, start, end), "missing joining date counts the full month")
}

// An employee who joins and leaves inside the same month is counted from
// month start, not the joining date. The end-date rule runs first.
func TestDaysWorkedSameMonthHireAndLeave(t *testing.T) {
	start, end := jan2025()
	emp := EmployeeDates{
		JoiningDate:       "2025-01-10",
		EmploymentEndDate: "2025-01-20",
		EmploymentStatus:  "Resigned",
	}

	assert.Equal(t, 20, DaysWorked(emp, start, end))
}

func TestDaysWorkedUnparseableDatesTreatedAsAbsent(t *testing.T) {
	start, end := jan2025()
	emp := EmployeeDates{
		JoiningDate:       "not a date",
		EmploymentEndDate: "also not a date",
		EmploymentStatus:  "Active",
	}

	assert.Equal(t, 31, DaysWorked(emp, start, end))
}

func TestDaysWorkedBoundedByMonthLength(t *testing.T) {
	cases := []EmployeeDates{
		{JoiningDate: "2025-01-01", EmploymentStatus: "Active"},
		{JoiningDate: "2025-01-31", EmploymentStatus: "Active"},
		{EmploymentEndDate: "2025-01-01"},
		{EmploymentEndDate: "2025-01-31"},
		{EmploymentEndDate: float64(44561), EmploymentStatus: "Active"},
		{EmploymentStatus: "Terminated"},
	}

	start, end := jan2025()
	for _, emp := range cases {
		got := DaysWorked(emp, start, end)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 31)
	}
}
