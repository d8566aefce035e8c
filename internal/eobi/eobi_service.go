package eobi

import (
	"context"

	eobierrors "hradmin/internal/eobi/errors"
	"hradmin/internal/shared/csvutil"
	"hradmin/internal/shared/dateutil"
	"hradmin/internal/shared/listing"

	"go.uber.org/zap"
)

// govHeaders is the government portal upload layout. Order is fixed by the
// portal, not by us.
var govHeaders = []string{
	"EOBI_Number", "CNIC", "Full_Name", "Date_of_Birth", "Joining_Date",
	"Payroll_Month", "Employee_Contribution", "Employer_Contribution",
	"Total_Contribution", "Issues",
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
	l := zap.L().Named("eobi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eobi.service")
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
		cnic := ""
		if r.CNICID != nil {
			cnic = CleanCNIC(*r.CNICID)
		}
		out = append(out, RowResponse{
			EmployeeID:           r.EmployeeID,
			PayrollMonth:         r.PayrollMonth.Format("2006-01-02"),
			EOBINumber:           r.EOBINumber,
			CNIC:                 cnic,
			CNICValid:            len(cnic) == 13,
			FullName:             r.FullName,
			JoiningDate:          dateutil.Normalize(r.JoiningDate),
			DateOfBirth:          dateutil.Normalize(r.DateOfBirth),
			EmployeeContribution: r.EmployeeContribution,
			EmployerContribution: r.EmployerContribution,
			TotalContribution:    r.TotalContribution,
		})
	}
	return ListResponse{Month: month, Rows: out, Total: total}, nil
}

// ExportCSV renders the portal upload file. Every date cell goes through the
// portal's D-Mon-YY format and rows without a 13-digit CNIC are flagged in
// the Issues column rather than dropped.
func (s *service) ExportCSV(ctx context.Context, f listing.Filter) (string, string, error) {
	f.Limit = listing.ExportPageSize
	f.Offset = 0

	rows, _, month, err := s.fetch(ctx, f)
	if err != nil {
		return "", "", err
	}

	csvRows := make([]csvutil.Row, 0, len(rows))
	for _, r := range rows {
		cnic := ""
		if r.CNICID != nil {
			cnic = CleanCNIC(*r.CNICID)
		}
		issues := ""
		if len(cnic) != 13 {
			issues = "invalid CNIC"
		}
		csvRows = append(csvRows, csvutil.Row{
			"EOBI_Number":           r.EOBINumber,
			"CNIC":                  cnic,
			"Full_Name":             r.FullName,
			"Date_of_Birth":         dateutil.NormalizeEOBI(r.DateOfBirth),
			"Joining_Date":          dateutil.NormalizeEOBI(r.JoiningDate),
			"Payroll_Month":         dateutil.NormalizeEOBI(r.PayrollMonth),
			"Employee_Contribution": r.EmployeeContribution,
			"Employer_Contribution": r.EmployerContribution,
			"Total_Contribution":    r.TotalContribution,
			"Issues":                issues,
		})
	}

	filename := listing.ExportFilename("eobi", "", month)
	return filename, csvutil.Marshal(csvRows, govHeaders), nil
}

func (s *service) fetch(ctx context.Context, f listing.Filter) ([]Contribution, int64, string, error) {
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
			return nil, 0, "", eobierrors.ErrInvalidMonth
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
