package onboarding

// requiredFields is the fixed intake contract; submissions missing any of
// these are rejected outright.
var requiredFields = []string{
	"full_name",
	"personal_email",
	"contact_number",
	"cnic_id",
	"designation",
	"department",
	"joining_date",
}

type SubmissionResponse struct {
	SubmissionID string         `json:"submission_id"`
	Status       string         `json:"status"`
	Payload      map[string]any `json:"payload"`
	SlackTS      *string        `json:"slack_ts,omitempty"`
	SlackChannel *string        `json:"slack_channel,omitempty"`
	ApprovedBy   *string        `json:"approved_by,omitempty"`
	EmployeeID   *int64         `json:"employee_id,omitempty"`
	CNICFront    *string        `json:"cnic_front,omitempty"`
	CNICBack     *string        `json:"cnic_back,omitempty"`
	Photo        *string        `json:"photo,omitempty"`
}
