package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Employee, error)
	UpdateFields(ctx context.Context, id int64, changes []AcceptedChange, actor string) error
	UpdateStatus(ctx context.Context, id int64, status, lifecycle string, endDate *string, actor string) error
	InsertFieldUpdate(ctx context.Context, rec FieldUpdate) error
	ListFieldUpdates(ctx context.Context, id int64, limit int) ([]FieldUpdate, error)
	LatestSalary(ctx context.Context, id int64) (*SalaryRow, error)
	LatestEOBI(ctx context.Context, id int64) (*EOBIRow, error)
	ActiveOffboarding(ctx context.Context, id int64) (*OffboardingRow, error)
}

// AcceptedChange is a validated, already-diffed field change ready to write.
type AcceptedChange struct {
	Field    UpdatableField
	OldValue *string
	NewValue *string
}

type SalaryRow struct {
	PayrollMonth time.Time `gorm:"column:Payroll_Month"`
	Currency     string    `gorm:"column:Currency"`
	GrossIncome  *float64  `gorm:"column:Gross_Income"`
	NetIncome    *float64  `gorm:"column:Net_Income"`
}

type EOBIRow struct {
	PayrollMonth      time.Time `gorm:"column:Payroll_Month"`
	EOBINumber        *string   `gorm:"column:EOBI_Number"`
	TotalContribution *float64  `gorm:"column:Total_Contribution"`
}

type OffboardingRow struct {
	EmploymentEndDate time.Time `gorm:"column:Employment_End_Date"`
	Status            string    `gorm:"column:Status"`
	Note              *string   `gorm:"column:Note"`
	ScheduledBy       *string   `gorm:"column:Scheduled_By"`
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Where(`"Employee_ID" = ? AND ("Is_Deleted" IS NULL OR "Is_Deleted" = FALSE)`, id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateFields applies all accepted changes in one multi-column statement and
// stamps Updated_At/Updated_By. It is not wrapped in a transaction with the
// audit inserts; see the service for the consistency trade-off.
func (r *repository) UpdateFields(ctx context.Context, id int64, changes []AcceptedChange, actor string) error {
	if len(changes) == 0 {
		return nil
	}

	sets := make([]string, 0, len(changes)+2)
	args := make([]any, 0, len(changes)+3)
	for _, ch := range changes {
		sets = append(sets, fmt.Sprintf(`"%s" = ?`, ch.Field))
		args = append(args, valueArg(ch.Field, ch.NewValue))
	}
	sets = append(sets, `"Updated_At" = ?`, `"Updated_By" = ?`)
	args = append(args, time.Now().UTC(), actor)

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE "Employees" SET %s WHERE "Employee_ID" = ?`, strings.Join(sets, ", "))

	return r.db.WithContext(ctx).Exec(query, args...).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status, lifecycle string, endDate *string, actor string) error {
	query := `
UPDATE "Employees"
SET
	"Employment_Status" = ?,
	"Lifecycle_Status" = ?,
	"Employment_End_Date" = COALESCE(?, "Employment_End_Date"),
	"Updated_At" = ?,
	"Updated_By" = ?
WHERE "Employee_ID" = ?
`
	var end any
	if endDate != nil {
		if t, err := time.Parse("2006-01-02", *endDate); err == nil {
			end = t
		}
	}
	return r.db.WithContext(ctx).
		Exec(query, status, lifecycle, end, time.Now().UTC(), actor, id).Error
}

func (r *repository) InsertFieldUpdate(ctx context.Context, rec FieldUpdate) error {
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *repository) ListFieldUpdates(ctx context.Context, id int64, limit int) ([]FieldUpdate, error) {
	var updates []FieldUpdate
	query := `
SELECT
	"Employee_ID", "Field_Name", "Old_Value", "New_Value", "Updated_Date", "Updated_By", "Reason"
FROM "Employee_Field_Updates"
WHERE "Employee_ID" = ?
ORDER BY "Updated_Date" DESC
LIMIT ?
`
	err := r.db.WithContext(ctx).Raw(query, id, limit).Scan(&updates).Error
	return updates, err
}

func (r *repository) LatestSalary(ctx context.Context, id int64) (*SalaryRow, error) {
	var row SalaryRow
	query := `
SELECT "Payroll_Month", "Currency", "Gross_Income", "Net_Income"
FROM "Employee_Salaries"
WHERE "Employee_ID" = ?
ORDER BY "Payroll_Month" DESC, "Currency" ASC
LIMIT 1
`
	res := r.db.WithContext(ctx).Raw(query, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) LatestEOBI(ctx context.Context, id int64) (*EOBIRow, error) {
	var row EOBIRow
	query := `
SELECT "Payroll_Month", "EOBI_Number", "Total_Contribution"
FROM "Employee_EOBI"
WHERE "Employee_ID" = ?
ORDER BY "Payroll_Month" DESC
LIMIT 1
`
	res := r.db.WithContext(ctx).Raw(query, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) ActiveOffboarding(ctx context.Context, id int64) (*OffboardingRow, error) {
	var row OffboardingRow
	query := `
SELECT "Employment_End_Date", "Status", "Note", "Scheduled_By"
FROM "Employee_Offboarding"
WHERE "Employee_ID" = ? AND "Status" = 'scheduled'
LIMIT 1
`
	res := r.db.WithContext(ctx).Raw(query, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// valueArg converts the wire string into the column's storage type. Date
// columns receive a parsed date or NULL.
func valueArg(field UpdatableField, v *string) any {
	if v == nil {
		return nil
	}
	if field.IsDateField() {
		if t, err := time.Parse("2006-01-02", *v); err == nil {
			return t
		}
		return nil
	}
	return *v
}
