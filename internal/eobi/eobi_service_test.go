package eobi

import (
	"context"
	"strings"
	"testing"
	"time"

	"hradmin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
)

type fakeEOBIRepository struct {
	listFn           func(ctx context.Context, f listing.Filter) ([]Contribution, error)
	countFn          func(ctx context.Context, f listing.Filter) (int64, error)
	distinctMonthsFn func(ctx context.Context) ([]string, error)
}

func (f *fakeEOBIRepository) List(ctx context.Context, fl listing.Filter) ([]Contribution, error) {
	if f.listFn != nil {
		return f.listFn(ctx, fl)
	}
	return nil, nil
}

func (f *fakeEOBIRepository) Count(ctx context.Context, fl listing.Filter) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, fl)
	}
	return 0, nil
}

func (f *fakeEOBIRepository) DistinctMonths(ctx context.Context) ([]string, error) {
	if f.distinctMonthsFn != nil {
		return f.distinctMonthsFn(ctx)
	}
	return nil, nil
}

func strp(s string) *string { return &s }

func sampleContribution(cnic string) Contribution {
	dob := time.Date(1992, 12, 12, 0, 0, 0, 0, time.UTC)
	joined := time.Date(2022, 12, 12, 0, 0, 0, 0, time.UTC)
	return Contribution{
		EmployeeID:           101,
		PayrollMonth:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EOBINumber:           strp("ABC-123"),
		CNICID:               strp(cnic),
		FullName:             strp("Ali Khan"),
		JoiningDate:          &joined,
		DateOfBirth:          &dob,
		EmployeeContribution: 370,
		EmployerContribution: 1850,
		TotalContribution:    2220,
	}
}

func TestCleanCNIC(t *testing.T) {
	assert.Equal(t, "1234512345671", CleanCNIC("12345-1234567-1"))
	assert.Equal(t, "1234512345671", CleanCNIC(" 12345 1234567 1 "))
	assert.Equal(t, "", CleanCNIC("no digits"))
}

func TestValidCNIC(t *testing.T) {
	assert.True(t, ValidCNIC("12345-1234567-1"))
	assert.False(t, ValidCNIC("12345-1234567"))
	assert.False(t, ValidCNIC(""))
}

func TestListFlagsShortCNIC(t *testing.T) {
	repo := &fakeEOBIRepository{
		listFn: func(ctx context.Context, f listing.Filter) ([]Contribution, error) {
			return []Contribution{sampleContribution("12345-1234567-1"), sampleContribution("999")}, nil
		},
		countFn: func(ctx context.Context, f listing.Filter) (int64, error) {
			return 2, nil
		},
	}
	svc := NewService(repo)

	res, err := svc.List(context.Background(), listing.Filter{Month: "2025-06", Limit: 50})

	assert.NoError(t, err)
	assert.True(t, res.Rows[0].CNICValid)
	assert.Equal(t, "1234512345671", res.Rows[0].CNIC)
	assert.False(t, res.Rows[1].CNICValid)
}

func TestExportCSVUsesPortalDateFormat(t *testing.T) {
	repo := &fakeEOBIRepository{
		listFn: func(ctx context.Context, f listing.Filter) ([]Contribution, error) {
			return []Contribution{sampleContribution("12345-1234567-1")}, nil
		},
		countFn: func(ctx context.Context, f listing.Filter) (int64, error) {
			return 1, nil
		},
	}
	svc := NewService(repo)

	filename, body, err := svc.ExportCSV(context.Background(), listing.Filter{Month: "2025-06"})

	assert.NoError(t, err)
	assert.Equal(t, "eobi-all-2025-06.csv", filename)

	lines := strings.Split(body, "\n")
	assert.Equal(t, "EOBI_Number,CNIC,Full_Name,Date_of_Birth,Joining_Date,Payroll_Month,Employee_Contribution,Employer_Contribution,Total_Contribution,Issues", lines[0])
	assert.Contains(t, lines[1], "12-Dec-92")
	assert.Contains(t, lines[1], "12-Dec-22")
	assert.Contains(t, lines[1], "1-Jun-25")
}

func TestExportCSVFlagsInvalidCNICInIssues(t *testing.T) {
	repo := &fakeEOBIRepository{
		listFn: func(ctx context.Context, f listing.Filter) ([]Contribution, error) {
			return []Contribution{sampleContribution("999")}, nil
		},
		countFn: func(ctx context.Context, f listing.Filter) (int64, error) {
			return 1, nil
		},
	}
	svc := NewService(repo)

	_, body, err := svc.ExportCSV(context.Background(), listing.Filter{Month: "2025-06"})

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(body, "invalid CNIC"))
}

func TestListDefaultsToLatestMonth(t *testing.T) {
	var gotMonth string
	repo := &fakeEOBIRepository{
		distinctMonthsFn: func(ctx context.Context) ([]string, error) {
			return []string{"2025-06", "2025-05"}, nil
		},
		listFn: func(ctx context.Context, f listing.Filter) ([]Contribution, error) {
			gotMonth = f.Month
			return nil, nil
		},
	}
	svc := NewService(repo)

	res, err := svc.List(context.Background(), listing.Filter{Limit: 50})

	assert.NoError(t, err)
	assert.Equal(t, "2025-06", res.Month)
	assert.Equal(t, "2025-06", gotMonth)
}
