package paytemplate

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	NewHires(ctx context.Context, month string) ([]NewHire, error)
	Leavers(ctx context.Context, month string) ([]Leaver, error)
	Increments(ctx context.Context, month string) ([]Increment, error)
	DistinctMonths(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) NewHires(ctx context.Context, month string) ([]NewHire, error) {
	query := `
SELECT * FROM "Pay_Template_New_Hires"
WHERE "Month" = ?
ORDER BY "Employee_Name" ASC`
	var rows []NewHire
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&rows).Error
	return rows, err
}

func (r *repository) Leavers(ctx context.Context, month string) ([]Leaver, error) {
	query := `
SELECT * FROM "Pay_Template_Leavers"
WHERE "Month" = ?
ORDER BY "Employee_Name" ASC`
	var rows []Leaver
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&rows).Error
	return rows, err
}

func (r *repository) Increments(ctx context.Context, month string) ([]Increment, error) {
	query := `
SELECT * FROM "Pay_Template_Increments"
WHERE "Month" = ?
ORDER BY "Employee_Name" ASC`
	var rows []Increment
	err := r.db.WithContext(ctx).Raw(query, month).Scan(&rows).Error
	return rows, err
}

// DistinctMonths unions the three section tables so a month with only
// leavers still resolves as the latest.
func (r *repository) DistinctMonths(ctx context.Context) ([]string, error) {
	query := `
SELECT DISTINCT month FROM (
	SELECT "Month" AS month FROM "Pay_Template_New_Hires"
	UNION ALL
	SELECT "Month" AS month FROM "Pay_Template_Leavers"
	UNION ALL
	SELECT "Month" AS month FROM "Pay_Template_Increments"
) months
ORDER BY month DESC`
	var months []string
	err := r.db.WithContext(ctx).Raw(query).Scan(&months).Error
	return months, err
}
