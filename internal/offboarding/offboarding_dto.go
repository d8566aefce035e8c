package offboarding

type ScheduleRequest struct {
	EmploymentEndDate string  `json:"employment_end_date" binding:"required"`
	Note              *string `json:"note"`
}

type OffboardingResponse struct {
	EmployeeID        int64   `json:"employee_id"`
	EmploymentEndDate string  `json:"employment_end_date"`
	Status            string  `json:"status"`
	Note              *string `json:"note,omitempty"`
	ScheduledBy       *string `json:"scheduled_by,omitempty"`
}
