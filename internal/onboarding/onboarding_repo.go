package onboarding

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, sub Submission) error
	FindByID(ctx context.Context, id string) (*Submission, error)
	Update(ctx context.Context, sub *Submission) error
	CountPending(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sub Submission) error {
	return r.db.WithContext(ctx).Create(&sub).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Submission, error) {
	query := `
SELECT * FROM "Onboarding_Submissions"
WHERE "Submission_ID" = ?
LIMIT 1`
	var sub Submission
	res := r.db.WithContext(ctx).Raw(query, id).Scan(&sub)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &sub, nil
}

func (r *repository) Update(ctx context.Context, sub *Submission) error {
	query := `
UPDATE "Onboarding_Submissions"
SET "Payload" = ?, "Status" = ?, "Slack_TS" = ?, "Slack_Channel" = ?,
	"Approved_By" = ?, "Employee_ID" = ?,
	"CNIC_Front" = ?, "CNIC_Back" = ?, "Photo" = ?, "Updated_At" = ?
WHERE "Submission_ID" = ?`
	return r.db.WithContext(ctx).Exec(query,
		sub.Payload, sub.Status, sub.SlackTS, sub.SlackChannel,
		sub.ApprovedBy, sub.EmployeeID,
		sub.CNICFront, sub.CNICBack, sub.Photo,
		time.Now().UTC(), sub.SubmissionID,
	).Error
}

func (r *repository) CountPending(ctx context.Context) (int64, error) {
	query := `
SELECT COUNT(*) FROM "Onboarding_Submissions"
WHERE "Status" = ?`
	var count int64
	err := r.db.WithContext(ctx).Raw(query, StatusPending).Scan(&count).Error
	return count, err
}
