package offboarding

import (
	"context"
	"strconv"
	"time"

	offboardingerrors "hradmin/internal/offboarding/errors"
	"hradmin/internal/shared/contextutil"
	"hradmin/internal/shared/dateutil"

	"go.uber.org/zap"
)

type Service interface {
	Schedule(ctx context.Context, id string, req ScheduleRequest) (OffboardingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("offboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("offboarding.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Schedule(ctx context.Context, id string, req ScheduleRequest) (OffboardingResponse, error) {
	empID, err := parseEmployeeID(id)
	if err != nil {
		return OffboardingResponse{}, err
	}

	iso := dateutil.Normalize(req.EmploymentEndDate)
	if iso == "" {
		return OffboardingResponse{}, offboardingerrors.ErrInvalidEndDate
	}
	endDate, _ := time.Parse("2006-01-02", iso)

	exists, err := s.repo.EmployeeExists(ctx, empID)
	if err != nil {
		return OffboardingResponse{}, err
	}
	if !exists {
		return OffboardingResponse{}, offboardingerrors.ErrEmployeeNotFound
	}

	actor := actorFrom(ctx)
	rec := Offboarding{
		EmployeeID:        empID,
		EmploymentEndDate: endDate,
		Status:            StatusScheduled,
		Note:              req.Note,
		ScheduledBy:       &actor,
	}

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return OffboardingResponse{}, err
	}

	if err := s.repo.SetEmploymentEndDate(ctx, empID, &endDate, actor); err != nil {
		return OffboardingResponse{}, err
	}

	s.logger.Info("offboarding scheduled",
		zap.Int64("employee_id", empID),
		zap.String("end_date", iso),
	)

	return OffboardingResponse{
		EmployeeID:        empID,
		EmploymentEndDate: iso,
		Status:            StatusScheduled,
		Note:              req.Note,
		ScheduledBy:       &actor,
	}, nil
}

// Cancel removes the active scheduling row and clears the employee's
// Employment_End_Date.
func (s *service) Cancel(ctx context.Context, id string) error {
	empID, err := parseEmployeeID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteActive(ctx, empID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return offboardingerrors.ErrNotScheduled
	}

	actor := actorFrom(ctx)
	if err := s.repo.SetEmploymentEndDate(ctx, empID, nil, actor); err != nil {
		return err
	}

	s.logger.Info("offboarding cancelled", zap.Int64("employee_id", empID))
	return nil
}

func actorFrom(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return "HR Admin Portal"
}

func parseEmployeeID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, offboardingerrors.ErrInvalidEmployeeID
	}
	return n, nil
}
