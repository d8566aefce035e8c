package salary

type RowResponse struct {
	EmployeeID       int64   `json:"employee_id"`
	PayrollMonth     string  `json:"payroll_month"`
	Currency         string  `json:"currency"`
	FullName         *string `json:"full_name"`
	Department       *string `json:"department"`
	Designation      *string `json:"designation"`
	OfficialEmail    *string `json:"official_email"`
	RegularPay       float64 `json:"regular_pay"`
	ProratedPay      float64 `json:"prorated_pay"`
	PerformanceBonus float64 `json:"performance_bonus"`
	PaidOvertime     float64 `json:"paid_overtime"`
	Reimbursements   float64 `json:"reimbursements"`
	Other            float64 `json:"other"`
	GrossIncome      float64 `json:"gross_income"`
	UnpaidLeaves     float64 `json:"unpaid_leaves"`
	Deductions       float64 `json:"deductions"`
	NetIncome        float64 `json:"net_income"`
	WorkedDays       int     `json:"worked_days"`
	Comments         *string `json:"comments,omitempty"`
}

type ListResponse struct {
	Month string        `json:"month"`
	Rows  []RowResponse `json:"rows"`
	Total int64         `json:"total"`
}
