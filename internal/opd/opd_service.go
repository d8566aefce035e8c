package opd

import (
	"context"

	opderrors "hradmin/internal/opd/errors"
	"hradmin/internal/shared/csvutil"
	"hradmin/internal/shared/dateutil"
	"hradmin/internal/shared/listing"

	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Employee_ID", "Full_Name", "Department", "Benefit_Month",
	"Contribution", "Claimed", "Balance", "Currency",
}

type RowResponse struct {
	EmployeeID   int64   `json:"employee_id"`
	BenefitMonth string  `json:"benefit_month"`
	FullName     *string `json:"full_name"`
	Department   *string `json:"department"`
	Contribution float64 `json:"contribution"`
	Claimed      float64 `json:"claimed"`
	Balance      float64 `json:"balance"`
	Currency     string  `json:"currency"`
}

type ListResponse struct {
	Month string        `json:"month"`
	Rows  []RowResponse `json:"rows"`
	Total int64         `json:"total"`
}

type Service interface {
	List(ctx context.Context, f listing.Filter) (ListResponse, error)
	ExportCSV(ctx context.Context, f listing.Filter) (string, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("opd.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("opd.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, f listing.Filter) (ListResponse, error) {
	rows, total, month, err := s.fetch(ctx, f)
	if err != nil {
		return ListResponse{}, err
	}

	out := make([]RowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RowResponse{
			EmployeeID:   r.EmployeeID,
			BenefitMonth: r.BenefitMonth.Format("2006-01-02"),
			FullName:     r.FullName,
			Department:   r.Department,
			Contribution: r.Contribution,
			Claimed:      r.Claimed,
			Balance:      r.Balance,
			Currency:     r.Currency,
		})
	}
	return ListResponse{Month: month, Rows: out, Total: total}, nil
}

func (s *service) ExportCSV(ctx context.Context, f listing.Filter) (string, string, error) {
	f.Limit = listing.ExportPageSize
	f.Offset = 0

	rows, _, month, err := s.fetch(ctx, f)
	if err != nil {
		return "", "", err
	}

	csvRows := make([]csvutil.Row, 0, len(rows))
	for _, r := range rows {
		csvRows = append(csvRows, csvutil.Row{
			"Employee_ID":   r.EmployeeID,
			"Full_Name":     r.FullName,
			"Department":    r.Department,
			"Benefit_Month": r.BenefitMonth.Format("2006-01-02"),
			"Contribution":  r.Contribution,
			"Claimed":       r.Claimed,
			"Balance":       r.Balance,
			"Currency":      r.Currency,
		})
	}

	filename := listing.ExportFilename("opd", "pkr", month)
	return filename, csvutil.Marshal(csvRows, exportHeaders), nil
}

func (s *service) fetch(ctx context.Context, f listing.Filter) ([]Row, int64, string, error) {
	month := f.Month
	if month == "" {
		months, err := s.repo.DistinctMonths(ctx)
		if err != nil {
			return nil, 0, "", err
		}
		if len(months) > 0 {
			month = months[0]
		}
	}
	if month != "" {
		if _, _, err := dateutil.MonthBounds(month); err != nil {
			return nil, 0, "", opderrors.ErrInvalidMonth
		}
	}
	f.Month = month

	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, "", err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, "", err
	}
	return rows, total, month, nil
}
