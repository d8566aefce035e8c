package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	onboardingerrors "hradmin/internal/onboarding/errors"
	"hradmin/internal/shared/contextutil"
	"hradmin/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, payload map[string]any) (SubmissionResponse, error)
	UpdateSubmission(ctx context.Context, id string, partial map[string]any, attachments map[string]string) (SubmissionResponse, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, logger...)
}

func NewServiceWithOutbox(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{repo: repo, outbox: outbox, logger: l}
}

func (s *service) Submit(ctx context.Context, payload map[string]any) (SubmissionResponse, error) {
	var missing []string
	for _, field := range requiredFields {
		if stringField(payload, field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return SubmissionResponse{}, onboardingerrors.MissingFields(missing)
	}

	if iso := dateutil.Normalize(payload["joining_date"]); iso != "" {
		payload["joining_date"] = iso
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("encode submission payload: %w", err)
	}

	sub := Submission{
		SubmissionID: uuid.NewString(),
		Status:       StatusPending,
		Payload:      raw,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return SubmissionResponse{}, mapRepositoryError(err)
	}

	s.publishSubmitted(ctx, sub.SubmissionID, payload)

	s.logger.Info("onboarding submission stored",
		zap.String("submission_id", sub.SubmissionID),
		zap.String("department", stringField(payload, "department")),
	)
	return mapSubmission(sub, payload), nil
}

// UpdateSubmission merges a partial payload into the stored one. An empty or
// missing value keeps what is already stored, so repeated form edits never
// blank out earlier answers.
func (s *service) UpdateSubmission(ctx context.Context, id string, partial map[string]any, attachments map[string]string) (SubmissionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SubmissionResponse{}, onboardingerrors.ErrInvalidSubmissionID
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmissionResponse{}, onboardingerrors.ErrSubmissionNotFound
		}
		return SubmissionResponse{}, err
	}

	stored := map[string]any{}
	if len(sub.Payload) > 0 {
		if err := json.Unmarshal(sub.Payload, &stored); err != nil {
			s.logger.Warn("stored payload unreadable, starting fresh",
				zap.String("submission_id", id),
				zap.Error(err),
			)
			stored = map[string]any{}
		}
	}

	if err := applyLifecycleFields(sub, partial); err != nil {
		return SubmissionResponse{}, err
	}

	for key, val := range partial {
		if lifecycleFields[key] {
			continue
		}
		if str, ok := val.(string); ok && strings.TrimSpace(str) == "" {
			continue
		}
		if val == nil {
			continue
		}
		stored[key] = val
	}

	for slot, path := range attachments {
		path := path
		switch slot {
		case "cnic_front":
			sub.CNICFront = &path
		case "cnic_back":
			sub.CNICBack = &path
		case "photo":
			sub.Photo = &path
		default:
			return SubmissionResponse{}, onboardingerrors.ErrUnknownAttachment
		}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("encode submission payload: %w", err)
	}
	sub.Payload = raw

	if err := s.repo.Update(ctx, sub); err != nil {
		return SubmissionResponse{}, err
	}

	return mapSubmission(*sub, stored), nil
}

// publishSubmitted follows the non-fatal outbox policy: the submission is
// durable whether or not the notification makes it out.
func (s *service) publishSubmitted(ctx context.Context, submissionID string, payload map[string]any) {
	if s.outbox == nil {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.OnboardingSubmittedEvent{
		EventType:    "onboarding_submitted",
		RequestID:    rid,
		SubmissionID: submissionID,
		FullName:     stringField(payload, "full_name"),
		Department:   stringField(payload, "department"),
		Designation:  stringField(payload, "designation"),
		OccurredAt:   time.Now().UTC(),
	}
	raw, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal onboarding event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "onboarding_submission",
		AggregateID:   submissionID,
		EventType:     event.EventType,
		Topic:         events.OnboardingSubmittedTopic,
		Payload:       raw,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("onboarding outbox persist failed",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
	}
}

func mapSubmission(sub Submission, payload map[string]any) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: sub.SubmissionID,
		Status:       sub.Status,
		Payload:      payload,
		SlackTS:      sub.SlackTS,
		SlackChannel: sub.SlackChannel,
		ApprovedBy:   sub.ApprovedBy,
		EmployeeID:   sub.EmployeeID,
		CNICFront:    sub.CNICFront,
		CNICBack:     sub.CNICBack,
		Photo:        sub.Photo,
	}
}

// lifecycleFields live in their own columns, not in the payload blob, so the
// status endpoint and Slack linkage can change without touching form answers.
var lifecycleFields = map[string]bool{
	"status":        true,
	"slack_ts":      true,
	"slack_channel": true,
	"approved_by":   true,
	"employee_id":   true,
}

// applyLifecycleFields folds recognized top-level keys into their columns.
// An empty or missing value keeps what is stored, like the payload merge.
func applyLifecycleFields(sub *Submission, partial map[string]any) error {
	if status := stringField(partial, "status"); status != "" {
		switch status {
		case StatusPending, StatusApproved, StatusRejected:
			sub.Status = status
		default:
			return onboardingerrors.ErrInvalidStatus
		}
	}
	if v := stringField(partial, "slack_ts"); v != "" {
		sub.SlackTS = &v
	}
	if v := stringField(partial, "slack_channel"); v != "" {
		sub.SlackChannel = &v
	}
	if v := stringField(partial, "approved_by"); v != "" {
		sub.ApprovedBy = &v
	}
	if raw, ok := partial["employee_id"]; ok && raw != nil {
		id, err := employeeIDValue(raw)
		if err != nil {
			return err
		}
		if id != nil {
			sub.EmployeeID = id
		}
	}
	return nil
}

// employeeIDValue accepts the number a JSON body decodes to or the string a
// multipart form carries. Returns nil for blank strings so they keep stored.
func employeeIDValue(raw any) (*int64, error) {
	switch v := raw.(type) {
	case float64:
		id := int64(v)
		return &id, nil
	case int64:
		return &v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, onboardingerrors.ErrInvalidEmployeeRef
		}
		return &id, nil
	default:
		return nil, onboardingerrors.ErrInvalidEmployeeRef
	}
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
