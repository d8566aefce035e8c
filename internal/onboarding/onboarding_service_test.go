package onboarding

import (
	"context"
	"encoding/json"
	"testing"

	"hradmin/internal/messaging/kafka"
	onboardingerrors "hradmin/internal/onboarding/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSubmissionRepository struct {
	createFn       func(ctx context.Context, sub Submission) error
	findByIDFn     func(ctx context.Context, id string) (*Submission, error)
	updateFn       func(ctx context.Context, sub *Submission) error
	countPendingFn func(ctx context.Context) (int64, error)

	calls []string
}

func (f *fakeSubmissionRepository) Create(ctx context.Context, sub Submission) error {
	f.calls = append(f.calls, "Create")
	if f.createFn != nil {
		return f.createFn(ctx, sub)
	}
	return nil
}

func (f *fakeSubmissionRepository) FindByID(ctx context.Context, id string) (*Submission, error) {
	f.calls = append(f.calls, "FindByID")
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepository) Update(ctx context.Context, sub *Submission) error {
	f.calls = append(f.calls, "Update")
	if f.updateFn != nil {
		return f.updateFn(ctx, sub)
	}
	return nil
}

func (f *fakeSubmissionRepository) CountPending(ctx context.Context) (int64, error) {
	f.calls = append(f.calls, "CountPending")
	if f.countPendingFn != nil {
		return f.countPendingFn(ctx)
	}
	return 0, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return f.err
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func validPayload() map[string]any {
	return map[string]any{
		"full_name":      "Ali Khan",
		"personal_email": "ali@example.com",
		"contact_number": "0300-1234567",
		"cnic_id":        "12345-1234567-1",
		"designation":    "Engineer",
		"department":     "Engineering",
		"joining_date":   "06/15/2025",
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	repo := &fakeSubmissionRepository{}
	svc := NewService(repo)

	payload := validPayload()
	delete(payload, "cnic_id")
	payload["department"] = "   "

	_, err := svc.Submit(context.Background(), payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cnic_id")
	assert.Contains(t, err.Error(), "department")
	assert.Empty(t, repo.calls)
}

func TestSubmitStoresPendingAndNormalizesJoiningDate(t *testing.T) {
	var stored Submission
	repo := &fakeSubmissionRepository{
		createFn: func(ctx context.Context, sub Submission) error {
			stored = sub
			return nil
		},
	}
	svc := NewService(repo)

	res, err := svc.Submit(context.Background(), validPayload())

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, stored.Status)
	assert.NotEmpty(t, stored.SubmissionID)
	_, parseErr := uuid.Parse(stored.SubmissionID)
	assert.NoError(t, parseErr)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(stored.Payload, &decoded))
	assert.Equal(t, "2025-06-15", decoded["joining_date"])
	assert.Equal(t, StatusPending, res.Status)
}

func TestSubmitWritesOutboxEvent(t *testing.T) {
	repo := &fakeSubmissionRepository{}
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(repo, outbox)

	_, err := svc.Submit(context.Background(), validPayload())

	assert.NoError(t, err)
	if assert.Len(t, outbox.created, 1) {
		evt := outbox.created[0]
		assert.Equal(t, "onboarding_submitted", evt.EventType)
		assert.Equal(t, "hr.onboarding.submissions.v1", evt.Topic)
		assert.Contains(t, string(evt.Payload), "Ali Khan")
	}
}

func TestSubmitSucceedsWhenOutboxFails(t *testing.T) {
	repo := &fakeSubmissionRepository{}
	outbox := &fakeOutbox{err: assert.AnError}
	svc := NewServiceWithOutbox(repo, outbox)

	_, err := svc.Submit(context.Background(), validPayload())

	assert.NoError(t, err)
}

func TestUpdateSubmissionRejectsNonUUID(t *testing.T) {
	repo := &fakeSubmissionRepository{}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), "42", map[string]any{}, nil)

	assert.Error(t, err)
	assert.Empty(t, repo.calls)
}

func TestUpdateSubmissionNotFound(t *testing.T) {
	repo := &fakeSubmissionRepository{}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), uuid.NewString(), map[string]any{}, nil)

	assert.Error(t, err)
	assert.Equal(t, []string{"FindByID"}, repo.calls)
}

func TestUpdateSubmissionKeepsStoredValuesOnEmptyInput(t *testing.T) {
	id := uuid.NewString()
	existing, _ := json.Marshal(map[string]any{
		"full_name":  "Ali Khan",
		"department": "Engineering",
	})
	var updated *Submission
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending, Payload: existing}, nil
		},
		updateFn: func(ctx context.Context, sub *Submission) error {
			updated = sub
			return nil
		},
	}
	svc := NewService(repo)

	res, err := svc.UpdateSubmission(context.Background(), id, map[string]any{
		"full_name":  "",
		"department": "Product",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Ali Khan", res.Payload["full_name"], "empty value keeps the stored one")
	assert.Equal(t, "Product", res.Payload["department"])

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(updated.Payload, &decoded))
	assert.Equal(t, "Ali Khan", decoded["full_name"])
}

func TestUpdateSubmissionMapsAttachmentSlots(t *testing.T) {
	id := uuid.NewString()
	var updated *Submission
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending}, nil
		},
		updateFn: func(ctx context.Context, sub *Submission) error {
			updated = sub
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), id, nil, map[string]string{
		"cnic_front": "uploads/a.jpg",
		"photo":      "uploads/b.jpg",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, updated.CNICFront) {
		assert.Equal(t, "uploads/a.jpg", *updated.CNICFront)
	}
	if assert.NotNil(t, updated.Photo) {
		assert.Equal(t, "uploads/b.jpg", *updated.Photo)
	}
	assert.Nil(t, updated.CNICBack)
}

func TestUpdateSubmissionRejectsUnknownSlot(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), id, nil, map[string]string{
		"passport": "uploads/c.jpg",
	})

	assert.Error(t, err)
	assert.NotContains(t, repo.calls, "Update")
}

func TestUpdateSubmissionApprovalTransition(t *testing.T) {
	id := uuid.NewString()
	existing, _ := json.Marshal(map[string]any{"full_name": "Ayesha Khan"})
	var updated *Submission
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending, Payload: existing}, nil
		},
		updateFn: func(ctx context.Context, sub *Submission) error {
			updated = sub
			return nil
		},
	}
	svc := NewService(repo)

	res, err := svc.UpdateSubmission(context.Background(), id, map[string]any{
		"status":      "approved",
		"slack_ts":    "1725.0042",
		"approved_by": "hr.lead",
		"employee_id": float64(204),
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, updated.Status)
	if assert.NotNil(t, updated.SlackTS) {
		assert.Equal(t, "1725.0042", *updated.SlackTS)
	}
	if assert.NotNil(t, updated.ApprovedBy) {
		assert.Equal(t, "hr.lead", *updated.ApprovedBy)
	}
	if assert.NotNil(t, updated.EmployeeID) {
		assert.Equal(t, int64(204), *updated.EmployeeID)
	}
	assert.Equal(t, StatusApproved, res.Status)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(updated.Payload, &decoded))
	assert.Equal(t, "Ayesha Khan", decoded["full_name"])
	assert.NotContains(t, decoded, "status", "lifecycle fields stay out of the payload blob")
	assert.NotContains(t, decoded, "slack_ts")
}

func TestUpdateSubmissionRejectsUnknownStatus(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), id, map[string]any{
		"status": "archived",
	}, nil)

	assert.ErrorIs(t, err, onboardingerrors.ErrInvalidStatus)
	assert.NotContains(t, repo.calls, "Update")
}

func TestUpdateSubmissionKeepsLifecycleColumnsOnEmptyInput(t *testing.T) {
	id := uuid.NewString()
	ts := "1700.0001"
	var updated *Submission
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusApproved, SlackTS: &ts}, nil
		},
		updateFn: func(ctx context.Context, sub *Submission) error {
			updated = sub
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), id, map[string]any{
		"status":      "",
		"slack_ts":    "  ",
		"employee_id": "",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, updated.Status)
	if assert.NotNil(t, updated.SlackTS) {
		assert.Equal(t, ts, *updated.SlackTS)
	}
	assert.Nil(t, updated.EmployeeID)
}

func TestUpdateSubmissionRejectsNonNumericEmployeeID(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, sid string) (*Submission, error) {
			return &Submission{SubmissionID: id, Status: StatusPending}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdateSubmission(context.Background(), id, map[string]any{
		"employee_id": "abc",
	}, nil)

	assert.ErrorIs(t, err, onboardingerrors.ErrInvalidEmployeeRef)
	assert.NotContains(t, repo.calls, "Update")
}
