package tax

import (
	"context"
	"time"

	"hradmin/internal/shared/listing"

	"gorm.io/gorm"
)

type Row struct {
	EmployeeID    int64     `gorm:"column:Employee_ID"`
	PayrollMonth  time.Time `gorm:"column:Payroll_Month"`
	FullName      *string   `gorm:"column:Full_Name"`
	Department    *string   `gorm:"column:Department"`
	Designation   *string   `gorm:"column:Designation"`
	TaxableIncome float64   `gorm:"column:Taxable_Income"`
	TaxRate       float64   `gorm:"column:Tax_Rate"`
	TaxAmount     float64   `gorm:"column:Tax_Amount"`
	TaxType       *string   `gorm:"column:Tax_Type"`
	TaxBracket    *string   `gorm:"column:Tax_Bracket"`
}

type Repository interface {
	List(ctx context.Context, f listing.Filter) ([]Row, error)
	Count(ctx context.Context, f listing.Filter) (int64, error)
	DistinctMonths(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f listing.Filter) ([]Row, error) {
	query, args := BuildListQuery(f)
	var rows []Row
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context, f listing.Filter) (int64, error) {
	query, args := BuildCountQuery(f)
	var count int64
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error
	return count, err
}

func (r *repository) DistinctMonths(ctx context.Context) ([]string, error) {
	query := `
SELECT DISTINCT to_char("Payroll_Month", 'YYYY-MM') AS month
FROM "Employee_Tax_Calculations"
ORDER BY month DESC`
	var months []string
	err := r.db.WithContext(ctx).Raw(query).Scan(&months).Error
	return months, err
}
