package paytemplate

import (
	"context"

	paytemplateerrors "hradmin/internal/paytemplate/errors"
	"hradmin/internal/shared/csvutil"
	"hradmin/internal/shared/dateutil"

	"go.uber.org/zap"
)

const (
	SectionNewHires   = "new-hires"
	SectionLeavers    = "leavers"
	SectionIncrements = "increments"
)

type TemplateResponse struct {
	Month      string      `json:"month"`
	NewHires   []NewHire   `json:"new_hires"`
	Leavers    []Leaver    `json:"leavers"`
	Increments []Increment `json:"increments"`
}

type Service interface {
	Get(ctx context.Context, month string) (TemplateResponse, error)
	ExportSectionCSV(ctx context.Context, month, section string) (string, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("paytemplate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paytemplate.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, month string) (TemplateResponse, error) {
	month, err := s.resolveMonth(ctx, month)
	if err != nil {
		return TemplateResponse{}, err
	}
	if month == "" {
		return TemplateResponse{}, nil
	}

	hires, err := s.repo.NewHires(ctx, month)
	if err != nil {
		return TemplateResponse{}, err
	}
	leavers, err := s.repo.Leavers(ctx, month)
	if err != nil {
		return TemplateResponse{}, err
	}
	increments, err := s.repo.Increments(ctx, month)
	if err != nil {
		return TemplateResponse{}, err
	}

	return TemplateResponse{
		Month:      month,
		NewHires:   hires,
		Leavers:    leavers,
		Increments: increments,
	}, nil
}

func (s *service) ExportSectionCSV(ctx context.Context, month, section string) (string, string, error) {
	month, err := s.resolveMonth(ctx, month)
	if err != nil {
		return "", "", err
	}

	var rows []csvutil.Row
	var headers []string

	switch section {
	case SectionNewHires:
		hires, err := s.repo.NewHires(ctx, month)
		if err != nil {
			return "", "", err
		}
		headers = []string{
			"Employee_ID", "Employee_Name", "Designation", "Official_Email",
			"Date_of_Joining", "Currency", "Salary", "Employment_Location",
			"Bank_Name", "Bank_Account_Title", "Bank_Account_Number_IBAN",
			"Swift_Code_BIC", "Comments",
		}
		for _, h := range hires {
			rows = append(rows, csvutil.Row{
				"Employee_ID":              h.EmployeeID,
				"Employee_Name":            h.EmployeeName,
				"Designation":              h.Designation,
				"Official_Email":           h.OfficialEmail,
				"Date_of_Joining":          dateutil.Normalize(h.DateOfJoining),
				"Currency":                 h.Currency,
				"Salary":                   h.Salary,
				"Employment_Location":      h.EmploymentLocation,
				"Bank_Name":                h.BankName,
				"Bank_Account_Title":       h.BankAccountTitle,
				"Bank_Account_Number_IBAN": h.BankAccountNumberIBAN,
				"Swift_Code_BIC":           h.SwiftCodeBIC,
				"Comments":                 h.Comments,
			})
		}
	case SectionLeavers:
		leavers, err := s.repo.Leavers(ctx, month)
		if err != nil {
			return "", "", err
		}
		headers = []string{
			"Employee_ID", "Employee_Name", "Employment_End_Date",
			"Payroll_Type", "Comments", "Devices_Returned",
		}
		for _, l := range leavers {
			rows = append(rows, csvutil.Row{
				"Employee_ID":         l.EmployeeID,
				"Employee_Name":       l.EmployeeName,
				"Employment_End_Date": dateutil.Normalize(l.EmploymentEndDate),
				"Payroll_Type":        l.PayrollType,
				"Comments":            l.Comments,
				"Devices_Returned":    l.DevicesReturned,
			})
		}
	case SectionIncrements:
		increments, err := s.repo.Increments(ctx, month)
		if err != nil {
			return "", "", err
		}
		headers = []string{
			"Employee_ID", "Employee_Name", "Currency", "Previous_Salary",
			"Updated_Salary", "Effective_Date", "Comments", "Remarks",
		}
		for _, inc := range increments {
			rows = append(rows, csvutil.Row{
				"Employee_ID":     inc.EmployeeID,
				"Employee_Name":   inc.EmployeeName,
				"Currency":        inc.Currency,
				"Previous_Salary": inc.PreviousSalary,
				"Updated_Salary":  inc.UpdatedSalary,
				"Effective_Date":  dateutil.Normalize(inc.EffectiveDate),
				"Comments":        inc.Comments,
				"Remarks":         inc.Remarks,
			})
		}
	default:
		return "", "", paytemplateerrors.ErrUnknownSection
	}

	m := month
	if m == "" {
		m = "all"
	}
	filename := "pay-template-" + section + "-" + m + ".csv"
	return filename, csvutil.Marshal(rows, headers), nil
}

func (s *service) resolveMonth(ctx context.Context, month string) (string, error) {
	if month == "" {
		months, err := s.repo.DistinctMonths(ctx)
		if err != nil {
			return "", err
		}
		if len(months) > 0 {
			month = months[0]
		}
		return month, nil
	}
	if _, _, err := dateutil.MonthBounds(month); err != nil {
		return "", paytemplateerrors.ErrInvalidMonth
	}
	return month, nil
}
