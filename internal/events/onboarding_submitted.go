package events

import "time"

const OnboardingSubmittedTopic = "hr.onboarding.submissions.v1"

// OnboardingSubmittedEvent is relayed to the notification pipeline when a new
// intake form lands. Message formatting happens downstream.
type OnboardingSubmittedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SubmissionID string    `json:"submission_id"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	Designation  string    `json:"designation"`
	OccurredAt   time.Time `json:"occurred_at"`
}
