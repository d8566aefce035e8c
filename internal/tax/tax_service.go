package tax

import (
	"context"

	"hradmin/internal/shared/csvutil"
	"hradmin/internal/shared/dateutil"
	"hradmin/internal/shared/listing"
	taxerrors "hradmin/internal/tax/errors"

	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Employee_ID", "Full_Name", "Department", "Designation", "Payroll_Month",
	"Taxable_Income", "Tax_Rate", "Tax_Amount", "Tax_Type", "Tax_Bracket",
}

type RowResponse struct {
	EmployeeID    int64   `json:"employee_id"`
	PayrollMonth  string  `json:"payroll_month"`
	FullName      *string `json:"full_name"`
	Department    *string `json:"department"`
	Designation   *string `json:"designation"`
	TaxableIncome float64 `json:"taxable_income"`
	TaxRate       float64 `json:"tax_rate"`
	TaxAmount     float64 `json:"tax_amount"`
	TaxType       *string `json:"tax_type"`
	TaxBracket    string  `json:"tax_bracket"`
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
	l := zap.L().Named("tax.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tax.service")
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
		out = append(out, mapRow(r))
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
		m := mapRow(r)
		csvRows = append(csvRows, csvutil.Row{
			"Employee_ID":    m.EmployeeID,
			"Full_Name":      m.FullName,
			"Department":     m.Department,
			"Designation":    m.Designation,
			"Payroll_Month":  m.PayrollMonth,
			"Taxable_Income": m.TaxableIncome,
			"Tax_Rate":       m.TaxRate,
			"Tax_Amount":     m.TaxAmount,
			"Tax_Type":       m.TaxType,
			"Tax_Bracket":    m.TaxBracket,
		})
	}

	filename := listing.ExportFilename("tax", f.Currency, month)
	return filename, csvutil.Marshal(csvRows, exportHeaders), nil
}

// mapRow fills a missing bracket label from the annualized income so older
// warehouse rows imported without one still render.
func mapRow(r Row) RowResponse {
	bracket := ""
	if r.TaxBracket != nil && *r.TaxBracket != "" {
		bracket = *r.TaxBracket
	} else {
		_, bracket = BracketFor(r.TaxableIncome * 12)
	}

	return RowResponse{
		EmployeeID:    r.EmployeeID,
		PayrollMonth:  r.PayrollMonth.Format("2006-01-02"),
		FullName:      r.FullName,
		Department:    r.Department,
		Designation:   r.Designation,
		TaxableIncome: r.TaxableIncome,
		TaxRate:       r.TaxRate,
		TaxAmount:     r.TaxAmount,
		TaxType:       r.TaxType,
		TaxBracket:    bracket,
	}
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
			return nil, 0, "", taxerrors.ErrInvalidMonth
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
