package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	employeeerrors "hradmin/internal/employee/errors"
	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	"hradmin/internal/shared/contextutil"
	"hradmin/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const historyLimit = 100

type Service interface {
	GetFull(ctx context.Context, id string) (FullProfileResponse, error)
	GetHistory(ctx context.Context, id string) ([]FieldUpdateResponse, error)
	UpdateField(ctx context.Context, id string, field string, newValue *string, reason *string) (UpdateFieldResponse, error)
	UpdateFields(ctx context.Context, id string, updates []FieldChange, reason *string) (BulkUpdateResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (StatusResponse, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, logger...)
}

func NewServiceWithOutbox(repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) GetFull(ctx context.Context, id string) (FullProfileResponse, error) {
	empID, err := parseEmployeeID(id)
	if err != nil {
		return FullProfileResponse{}, err
	}

	emp, err := s.fetch(ctx, empID)
	if err != nil {
		return FullProfileResponse{}, err
	}

	resp := FullProfileResponse{Profile: mapProfile(emp)}

	if row, err := s.repo.LatestSalary(ctx, empID); err != nil {
		return FullProfileResponse{}, err
	} else if row != nil {
		resp.LatestSalary = &SalarySummary{
			PayrollMonth: row.PayrollMonth.Format("2006-01"),
			Currency:     row.Currency,
			GrossIncome:  row.GrossIncome,
			NetIncome:    row.NetIncome,
		}
	}

	if row, err := s.repo.LatestEOBI(ctx, empID); err != nil {
		return FullProfileResponse{}, err
	} else if row != nil {
		resp.LatestEOBI = &EOBISummary{
			PayrollMonth:      row.PayrollMonth.Format("2006-01"),
			EOBINumber:        row.EOBINumber,
			TotalContribution: row.TotalContribution,
		}
	}

	history, err := s.repo.ListFieldUpdates(ctx, empID, historyLimit)
	if err != nil {
		return FullProfileResponse{}, err
	}
	resp.History = mapHistory(history)

	if row, err := s.repo.ActiveOffboarding(ctx, empID); err != nil {
		return FullProfileResponse{}, err
	} else if row != nil {
		resp.Offboarding = &OffboardingSummary{
			EmploymentEndDate: row.EmploymentEndDate.Format("2006-01-02"),
			Status:            row.Status,
			Note:              row.Note,
			ScheduledBy:       row.ScheduledBy,
		}
	}

	return resp, nil
}

func (s *service) GetHistory(ctx context.Context, id string) ([]FieldUpdateResponse, error) {
	empID, err := parseEmployeeID(id)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListFieldUpdates(ctx, empID, historyLimit)
	if err != nil {
		return nil, err
	}
	return mapHistory(history), nil
}

// UpdateField validates, diffs, writes, then audits. The read-update-audit
// sequence is not atomic: two concurrent updates to the same field race with
// last-write-wins on the column, and both may audit against a stale old value.
// Accepted gap for this warehouse.
func (s *service) UpdateField(
	ctx context.Context,
	id string,
	field string,
	newValue *string,
	reason *string,
) (UpdateFieldResponse, error) {
	resp, err := s.UpdateFields(ctx, id, []FieldChange{{Field: field, NewValue: newValue}}, reason)
	if err != nil {
		return UpdateFieldResponse{}, err
	}

	if resp.AppliedCount == 0 {
		// Unchanged short-circuit still reports the current value
		f, _ := ParseUpdatableField(field)
		empID, _ := parseEmployeeID(id)
		emp, err := s.fetch(ctx, empID)
		if err != nil {
			return UpdateFieldResponse{}, err
		}
		old := f.CurrentValue(emp)
		return UpdateFieldResponse{Field: field, OldValue: old, NewValue: old, Changed: false}, nil
	}

	return resp.Updates[0], nil
}

func (s *service) UpdateFields(
	ctx context.Context,
	id string,
	updates []FieldChange,
	reason *string,
) (BulkUpdateResponse, error) {
	if len(updates) == 0 {
		return BulkUpdateResponse{}, employeeerrors.ErrNoUpdates
	}

	// Fail fast: every name must pass before anything is read or written.
	fields := make([]UpdatableField, len(updates))
	for i, u := range updates {
		f, ok := ParseUpdatableField(u.Field)
		if !ok {
			return BulkUpdateResponse{}, employeeerrors.InvalidField(u.Field, UpdatableFieldNames())
		}
		fields[i] = f
	}

	empID, err := parseEmployeeID(id)
	if err != nil {
		return BulkUpdateResponse{}, err
	}

	emp, err := s.fetch(ctx, empID)
	if err != nil {
		return BulkUpdateResponse{}, err
	}

	actor := actorFrom(ctx)

	changes := make([]AcceptedChange, 0, len(updates))
	for i, u := range updates {
		f := fields[i]
		newVal := u.NewValue
		if newVal != nil && f.IsDateField() {
			iso := dateutil.Normalize(*newVal)
			if iso == "" {
				return BulkUpdateResponse{}, employeeerrors.InvalidDateValue(u.Field, *newVal)
			}
			newVal = &iso
		}

		old := f.CurrentValue(emp)
		if equalValue(old, newVal) {
			continue
		}
		changes = append(changes, AcceptedChange{Field: f, OldValue: old, NewValue: newVal})
	}

	if len(changes) == 0 {
		return BulkUpdateResponse{AppliedCount: 0, Updates: []UpdateFieldResponse{}}, nil
	}

	if err := s.repo.UpdateFields(ctx, empID, changes, actor); err != nil {
		return BulkUpdateResponse{}, err
	}

	// Audit inserts are best-effort and independent per field: a failure is
	// logged, never surfaced, and never blocks the remaining inserts.
	log := contextutil.GetLogger(ctx, s.logger)
	applied := make([]UpdateFieldResponse, 0, len(changes))
	fieldNames := make([]string, 0, len(changes))
	for _, ch := range changes {
		rec := FieldUpdate{
			EmployeeID:  empID,
			FieldName:   string(ch.Field),
			OldValue:    ch.OldValue,
			NewValue:    ch.NewValue,
			UpdatedDate: time.Now().UTC(),
			UpdatedBy:   actor,
			Reason:      reason,
		}
		if err := s.repo.InsertFieldUpdate(ctx, rec); err != nil {
			log.Error("audit write failed",
				zap.Int64("employee_id", empID),
				zap.String("field", string(ch.Field)),
				zap.Error(err),
			)
		}

		applied = append(applied, UpdateFieldResponse{
			Field:    string(ch.Field),
			OldValue: ch.OldValue,
			NewValue: ch.NewValue,
			Changed:  true,
		})
		fieldNames = append(fieldNames, string(ch.Field))
	}

	s.publishFieldUpdated(ctx, empID, fieldNames, actor)

	return BulkUpdateResponse{AppliedCount: len(applied), Updates: applied}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (StatusResponse, error) {
	switch req.Status {
	case StatusActive, StatusResigned, StatusTerminated:
	default:
		return StatusResponse{}, employeeerrors.ErrInvalidStatus
	}

	empID, err := parseEmployeeID(id)
	if err != nil {
		return StatusResponse{}, err
	}

	emp, err := s.fetch(ctx, empID)
	if err != nil {
		return StatusResponse{}, err
	}

	actor := actorFrom(ctx)
	lifecycle := lifecycleForStatus(req.Status)

	var endDate *string
	if req.EmploymentEndDate != nil {
		if iso := dateutil.Normalize(*req.EmploymentEndDate); iso != "" {
			endDate = &iso
		} else {
			return StatusResponse{}, employeeerrors.ErrInvalidEndDate
		}
	}

	statusChanged := !equalValue(emp.EmploymentStatus, &req.Status)
	oldEndDate := dateStr(emp.EmploymentEndDate)
	endDateChanged := endDate != nil && !equalValue(oldEndDate, endDate)

	// Re-submitting the current status (and date) is a no-op: nothing is
	// written and no audit record appears.
	if !statusChanged && !endDateChanged {
		return StatusResponse{
			EmployeeID:        empID,
			EmploymentStatus:  req.Status,
			LifecycleStatus:   lifecycle,
			EmploymentEndDate: oldEndDate,
		}, nil
	}

	if err := s.repo.UpdateStatus(ctx, empID, req.Status, lifecycle, endDate, actor); err != nil {
		return StatusResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger)
	var audits []FieldUpdate
	if statusChanged {
		audits = append(audits, FieldUpdate{
			EmployeeID:  empID,
			FieldName:   "Employment_Status",
			OldValue:    emp.EmploymentStatus,
			NewValue:    &req.Status,
			UpdatedDate: time.Now().UTC(),
			UpdatedBy:   actor,
			Reason:      req.Reason,
		})
	}
	if endDateChanged {
		audits = append(audits, FieldUpdate{
			EmployeeID:  empID,
			FieldName:   "Employment_End_Date",
			OldValue:    oldEndDate,
			NewValue:    endDate,
			UpdatedDate: time.Now().UTC(),
			UpdatedBy:   actor,
			Reason:      req.Reason,
		})
	}
	for _, rec := range audits {
		if err := s.repo.InsertFieldUpdate(ctx, rec); err != nil {
			log.Error("audit write failed",
				zap.Int64("employee_id", empID),
				zap.String("field", rec.FieldName),
				zap.Error(err),
			)
		}
	}

	return StatusResponse{
		EmployeeID:        empID,
		EmploymentStatus:  req.Status,
		LifecycleStatus:   lifecycle,
		EmploymentEndDate: endDate,
	}, nil
}

func (s *service) fetch(ctx context.Context, id int64) (*Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// publishFieldUpdated is the same non-fatal policy as the audit inserts.
func (s *service) publishFieldUpdated(ctx context.Context, empID int64, fields []string, actor string) {
	if s.outbox == nil {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeFieldUpdatedEvent{
		EventType:  "employee_field_updated",
		RequestID:  rid,
		EmployeeID: empID,
		Fields:     fields,
		UpdatedBy:  actor,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal field-updated event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(empID, 10),
		EventType:     event.EventType,
		Topic:         events.EmployeeFieldUpdatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("field-updated outbox persist failed",
			zap.Int64("employee_id", empID),
			zap.Error(err),
		)
	}
}

func parseEmployeeID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return n, nil
}

func actorFrom(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return "HR Admin Portal"
}

// equalValue treats (nil, nil) as unchanged, matching the null == null rule.
func equalValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func mapProfile(e *Employee) ProfileResponse {
	return ProfileResponse{
		EmployeeID:         e.EmployeeID,
		FullName:           e.FullName,
		PersonalEmail:      e.PersonalEmail,
		OfficialEmail:      e.OfficialEmail,
		JoiningDate:        dateutil.Normalize(e.JoiningDate),
		Designation:        e.Designation,
		Department:         e.Department,
		ReportingManager:   e.ReportingManager,
		JobType:            e.JobType,
		EmploymentStatus:   e.EmploymentStatus,
		ContactNumber:      e.ContactNumber,
		CNICID:             e.CNICID,
		Gender:             e.Gender,
		BankName:           e.BankName,
		BankAccountTitle:   e.BankAccountTitle,
		BankAccountIBAN:    e.BankAccountIBAN,
		SwiftCodeBIC:       e.SwiftCodeBIC,
		RoutingNumber:      e.RoutingNumber,
		EmploymentLocation: e.EmploymentLocation,
		DateOfBirth:        dateutil.Normalize(e.DateOfBirth),
		Nationality:        e.Nationality,
		SlackID:            e.SlackID,
		EmploymentEndDate:  dateutil.Normalize(e.EmploymentEndDate),
		LifecycleStatus:    e.LifecycleStatus,
	}
}

func mapHistory(updates []FieldUpdate) []FieldUpdateResponse {
	res := make([]FieldUpdateResponse, len(updates))
	for i, u := range updates {
		res[i] = FieldUpdateResponse{
			EmployeeID:  u.EmployeeID,
			FieldName:   u.FieldName,
			OldValue:    u.OldValue,
			NewValue:    u.NewValue,
			UpdatedDate: u.UpdatedDate.UTC().Format(time.RFC3339),
			UpdatedBy:   u.UpdatedBy,
			Reason:      u.Reason,
		}
	}
	return res
}
