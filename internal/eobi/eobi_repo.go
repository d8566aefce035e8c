package eobi

import (
	"context"

	"hradmin/internal/shared/listing"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, f listing.Filter) ([]Contribution, error)
	Count(ctx context.Context, f listing.Filter) (int64, error)
	DistinctMonths(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f listing.Filter) ([]Contribution, error) {
	query, args := BuildListQuery(f)
	var rows []Contribution
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
FROM "Employee_EOBI"
ORDER BY month DESC`
	var months []string
	err := r.db.WithContext(ctx).Raw(query).Scan(&months).Error
	return months, err
}
