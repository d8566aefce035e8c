package salary

import (
	"context"
	"time"

	salaryerrors "hradmin/internal/salary/errors"
	"hradmin/internal/shared/csvutil"
	"hradmin/internal/shared/dateutil"
	"hradmin/internal/shared/listing"

	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Employee_ID", "Full_Name", "Department", "Designation", "Official_Email",
	"Payroll_Month", "Currency", "Regular_Pay", "Prorated_Pay",
	"Performance_Bonus", "Paid_Overtime", "Reimbursements", "Other",
	"Gross_Income", "Unpaid_Leaves", "Deductions", "Net_Income",
	"Worked_Days", "Comments",
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
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, f listing.Filter) (ListResponse, error) {
	rows, total, month, err := s.fetch(ctx, f)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Month: month, Rows: rows, Total: total}, nil
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
			"Employee_ID":       r.EmployeeID,
			"Full_Name":         r.FullName,
			"Department":        r.Department,
			"Designation":       r.Designation,
			"Official_Email":    r.OfficialEmail,
			"Payroll_Month":     r.PayrollMonth,
			"Currency":          r.Currency,
			"Regular_Pay":       r.RegularPay,
			"Prorated_Pay":      r.ProratedPay,
			"Performance_Bonus": r.PerformanceBonus,
			"Paid_Overtime":     r.PaidOvertime,
			"Reimbursements":    r.Reimbursements,
			"Other":             r.Other,
			"Gross_Income":      r.GrossIncome,
			"Unpaid_Leaves":     r.UnpaidLeaves,
			"Deductions":        r.Deductions,
			"Net_Income":        r.NetIncome,
			"Worked_Days":       r.WorkedDays,
			"Comments":          r.Comments,
		})
	}

	filename := listing.ExportFilename("salaries", f.Currency, month)
	return filename, csvutil.Marshal(csvRows, exportHeaders), nil
}

// fetch resolves the effective month, runs the listing, and recomputes the
// worked-days column against the resolved month so lifecycle edits made after
// the payroll import still show through.
func (s *service) fetch(ctx context.Context, f listing.Filter) ([]RowResponse, int64, string, error) {
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
	f.Month = month

	var monthStart, monthEnd time.Time
	if month != "" {
		var err error
		monthStart, monthEnd, err = dateutil.MonthBounds(month)
		if err != nil {
			return nil, 0, "", salaryerrors.ErrInvalidMonth
		}
	}

	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, "", err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, "", err
	}

	out := make([]RowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapRow(r, month, monthStart, monthEnd))
	}
	return out, total, month, nil
}

func mapRow(r Row, month string, monthStart, monthEnd time.Time) RowResponse {
	worked := 0
	if r.WorkedDays != nil {
		worked = *r.WorkedDays
	}
	if month != "" {
		status := ""
		if r.EmploymentStatus != nil {
			status = *r.EmploymentStatus
		}
		worked = DaysWorked(EmployeeDates{
			JoiningDate:       r.JoiningDate,
			EmploymentEndDate: r.EmploymentEndDate,
			EmploymentStatus:  status,
		}, monthStart, monthEnd)
	}

	return RowResponse{
		EmployeeID:       r.EmployeeID,
		PayrollMonth:     r.PayrollMonth.Format("2006-01-02"),
		Currency:         r.Currency,
		FullName:         r.FullName,
		Department:       r.Department,
		Designation:      r.Designation,
		OfficialEmail:    r.OfficialEmail,
		RegularPay:       r.RegularPay,
		ProratedPay:      r.ProratedPay,
		PerformanceBonus: r.PerformanceBonus,
		PaidOvertime:     r.PaidOvertime,
		Reimbursements:   r.Reimbursements,
		Other:            r.Other,
		GrossIncome:      r.GrossIncome,
		UnpaidLeaves:     r.UnpaidLeaves,
		Deductions:       r.Deductions,
		NetIncome:        r.NetIncome,
		WorkedDays:       worked,
		Comments:         r.Comments,
	}
}
