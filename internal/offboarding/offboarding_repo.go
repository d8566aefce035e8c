package offboarding

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	EmployeeExists(ctx context.Context, id int64) (bool, error)
	Upsert(ctx context.Context, rec Offboarding) error
	DeleteActive(ctx context.Context, id int64) (int64, error)
	SetEmploymentEndDate(ctx context.Context, id int64, endDate *time.Time, actor string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	query := `
SELECT COUNT(*) FROM "Employees"
WHERE "Employee_ID" = ? AND ("Is_Deleted" IS NULL OR "Is_Deleted" = FALSE)
`
	err := r.db.WithContext(ctx).Raw(query, id).Scan(&count).Error
	return count > 0, err
}

// Upsert replaces any previous scheduling row so at most one active record
// exists per employee.
func (r *repository) Upsert(ctx context.Context, rec Offboarding) error {
	del := `DELETE FROM "Employee_Offboarding" WHERE "Employee_ID" = ?`
	if err := r.db.WithContext(ctx).Exec(del, rec.EmployeeID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *repository) DeleteActive(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM "Employee_Offboarding" WHERE "Employee_ID" = ? AND "Status" = ?`
	res := r.db.WithContext(ctx).Exec(query, id, StatusScheduled)
	return res.RowsAffected, res.Error
}

func (r *repository) SetEmploymentEndDate(ctx context.Context, id int64, endDate *time.Time, actor string) error {
	query := `
UPDATE "Employees"
SET "Employment_End_Date" = ?, "Updated_At" = ?, "Updated_By" = ?
WHERE "Employee_ID" = ?
`
	var end any
	if endDate != nil {
		end = *endDate
	}
	return r.db.WithContext(ctx).Exec(query, end, time.Now().UTC(), actor, id).Error
}
