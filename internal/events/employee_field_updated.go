package events

import "time"

const EmployeeFieldUpdatedTopic = "hr.employee.field-updates.v1"

type EmployeeFieldUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	Fields     []string  `json:"fields"`
	UpdatedBy  string    `json:"updated_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
