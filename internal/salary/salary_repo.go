package salary

import (
	"context"
	"time"

	"hradmin/internal/shared/listing"

	"gorm.io/gorm"
)

// Row is a listing result: the payroll fact plus the directory identity
// columns resolved by the join.
type Row struct {
	EmployeeID        int64      `gorm:"column:Employee_ID"`
	PayrollMonth      time.Time  `gorm:"column:Payroll_Month"`
	Currency          string     `gorm:"column:Currency"`
	FullName          *string    `gorm:"column:Full_Name"`
	Department        *string    `gorm:"column:Department"`
	Designation       *string    `gorm:"column:Designation"`
	OfficialEmail     *string    `gorm:"column:Official_Email"`
	JoiningDate       *time.Time `gorm:"column:Joining_Date"`
	EmploymentEndDate *time.Time `gorm:"column:Employment_End_Date"`
	EmploymentStatus  *string    `gorm:"column:Employment_Status"`
	RegularPay        float64    `gorm:"column:Regular_Pay"`
	ProratedPay       float64    `gorm:"column:Prorated_Pay"`
	PerformanceBonus  float64    `gorm:"column:Performance_Bonus"`
	PaidOvertime      float64    `gorm:"column:Paid_Overtime"`
	Reimbursements    float64    `gorm:"column:Reimbursements"`
	Other             float64    `gorm:"column:Other"`
	GrossIncome       float64    `gorm:"column:Gross_Income"`
	UnpaidLeaves      float64    `gorm:"column:Unpaid_Leaves"`
	Deductions        float64    `gorm:"column:Deductions"`
	NetIncome         float64    `gorm:"column:Net_Income"`
	WorkedDays        *int       `gorm:"column:Worked_Days"`
	Comments          *string    `gorm:"column:Comments"`
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
FROM "Employee_Salaries"
ORDER BY month DESC`
	var months []string
	err := r.db.WithContext(ctx).Raw(query).Scan(&months).Error
	return months, err
}
