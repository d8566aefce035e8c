package dashboard

import (
	"context"

	"gorm.io/gorm"
)

type StatusCount struct {
	Status string `gorm:"column:Status" json:"status"`
	Count  int64  `gorm:"column:Count" json:"count"`
}

type CurrencyTotal struct {
	Currency string  `gorm:"column:Currency" json:"currency"`
	Gross    float64 `gorm:"column:Gross" json:"gross"`
	Net      float64 `gorm:"column:Net" json:"net"`
}

type OPDTotals struct {
	Contributed float64 `gorm:"column:Contributed" json:"contributed"`
	Claimed     float64 `gorm:"column:Claimed" json:"claimed"`
}

type Repository interface {
	HeadcountByStatus(ctx context.Context) ([]StatusCount, error)
	PayrollTotals(ctx context.Context, month string) ([]CurrencyTotal, error)
	EOBITotal(ctx context.Context, month string) (float64, error)
	OPDTotals(ctx context.Context, month string) (OPDTotals, error)
	PendingOnboarding(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HeadcountByStatus(ctx context.Context) ([]StatusCount, error) {
	query := `
SELECT COALESCE("Employment_Status", 'Unknown') AS "Status", COUNT(*) AS "Count"
FROM "Employees"
WHERE "Is_Deleted" IS NULL OR "Is_Deleted" = FALSE
GROUP BY 1
ORDER BY 2 DESC`
	var rows []StatusCount
	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) PayrollTotals(ctx context.Context, month string) ([]CurrencyTotal, error) {
	query := `
SELECT "Currency",
	COALESCE(SUM("Gross_Income"), 0) AS "Gross",
	COALESCE(SUM("Net_Income"), 0) AS "Net"
FROM "Employee_Salaries"
WHERE to_char("Payroll_Month", 'YYYY-MM') = ?
GROUP BY "Currency"
ORDER BY "Currency" ASC`
	var rows []CurrencyTotal
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&rows).Error
	return rows, err
}

func (r *repository) EOBITotal(ctx context.Context, month string) (float64, error) {
	query := `
SELECT COALESCE(SUM("Total_Contribution"), 0)
FROM "Employee_EOBI"
WHERE to_char("Payroll_Month", 'YYYY-MM') = ?`
	var total float64
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&total).Error
	return total, err
}

func (r *repository) OPDTotals(ctx context.Context, month string) (OPDTotals, error) {
	query := `
SELECT COALESCE(SUM("Contribution"), 0) AS "Contributed",
	COALESCE(SUM("Claimed"), 0) AS "Claimed"
FROM "Employee_OPD_Benefits"
WHERE "Currency" = 'PKR'
AND to_char("Benefit_Month", 'YYYY-MM') = ?`
	var totals OPDTotals
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&totals).Error
	return totals, err
}

func (r *repository) PendingOnboarding(ctx context.Context) (int64, error) {
	query := `
SELECT COUNT(*) FROM "Onboarding_Submissions"
WHERE "Status" = 'pending'`
	var count int64
	err := r.db.WithContext(ctx).Raw(query).Scan(&count).Error
	return count, err
}
