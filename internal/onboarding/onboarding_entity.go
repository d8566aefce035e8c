package onboarding

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is one intake form. Payload keeps the raw form as JSON because
// the form evolves faster than the directory schema; attachments are object
// storage paths filled per slot.
type Submission struct {
	SubmissionID string    `gorm:"column:Submission_ID"`
	Status       string    `gorm:"column:Status"`
	Payload      []byte    `gorm:"column:Payload"`
	SlackTS      *string   `gorm:"column:Slack_TS"`
	SlackChannel *string   `gorm:"column:Slack_Channel"`
	ApprovedBy   *string   `gorm:"column:Approved_By"`
	EmployeeID   *int64    `gorm:"column:Employee_ID"`
	CNICFront    *string   `gorm:"column:CNIC_Front"`
	CNICBack     *string   `gorm:"column:CNIC_Back"`
	Photo        *string   `gorm:"column:Photo"`
	CreatedAt    time.Time `gorm:"column:Created_At"`
	UpdatedAt    time.Time `gorm:"column:Updated_At"`
}

func (Submission) TableName() string {
	return "Onboarding_Submissions"
}

// AttachmentSlots maps multipart form field names to their storage columns.
var AttachmentSlots = []string{"cnic_front", "cnic_back", "photo"}
