package offboarding

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Offboarding is the single active scheduling row per employee in
// Employee_Offboarding. Scheduling upserts; cancellation removes the row and
// clears the employee's Employment_End_Date.
type Offboarding struct {
	EmployeeID        int64     `gorm:"column:Employee_ID"`
	EmploymentEndDate time.Time `gorm:"column:Employment_End_Date"`
	Status            string    `gorm:"column:Status"`
	Note              *string   `gorm:"column:Note"`
	ScheduledBy       *string   `gorm:"column:Scheduled_By"`
}

func (Offboarding) TableName() string {
	return "Employee_Offboarding"
}
