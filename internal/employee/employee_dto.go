package employee

// UpdatePayload covers both single and bulk field updates; the handler
// dispatches on the presence of the updates array.
type UpdatePayload struct {
	Field    string        `json:"field"`
	NewValue *string       `json:"new_value"`
	Updates  []FieldChange `json:"updates"`
	Reason   *string       `json:"reason"`
}

type FieldChange struct {
	Field    string  `json:"field" binding:"required"`
	NewValue *string `json:"new_value"`
}

type UpdateStatusRequest struct {
	Status            string  `json:"status" binding:"required"`
	Reason            *string `json:"reason"`
	EmploymentEndDate *string `json:"employment_end_date"`
}

type UpdateFieldResponse struct {
	Field    string  `json:"field"`
	OldValue *string `json:"old_value"`
	NewValue *string `json:"new_value"`
	Changed  bool    `json:"changed"`
}

type BulkUpdateResponse struct {
	AppliedCount int                   `json:"applied_count"`
	Updates      []UpdateFieldResponse `json:"updates"`
}

type FieldUpdateResponse struct {
	EmployeeID  int64   `json:"employee_id"`
	FieldName   string  `json:"field_name"`
	OldValue    *string `json:"old_value"`
	NewValue    *string `json:"new_value"`
	UpdatedDate string  `json:"updated_date"`
	UpdatedBy   string  `json:"updated_by"`
	Reason      *string `json:"reason,omitempty"`
}

type ProfileResponse struct {
	EmployeeID         int64   `json:"employee_id"`
	FullName           *string `json:"full_name"`
	PersonalEmail      *string `json:"personal_email"`
	OfficialEmail      *string `json:"official_email"`
	JoiningDate        string  `json:"joining_date,omitempty"`
	Designation        *string `json:"designation"`
	Department         *string `json:"department"`
	ReportingManager   *string `json:"reporting_manager"`
	JobType            *string `json:"job_type"`
	EmploymentStatus   *string `json:"employment_status"`
	ContactNumber      *string `json:"contact_number"`
	CNICID             *string `json:"cnic_id"`
	Gender             *string `json:"gender"`
	BankName           *string `json:"bank_name"`
	BankAccountTitle   *string `json:"bank_account_title"`
	BankAccountIBAN    *string `json:"bank_account_number_iban"`
	SwiftCodeBIC       *string `json:"swift_code_bic"`
	RoutingNumber      *string `json:"routing_number"`
	EmploymentLocation *string `json:"employment_location"`
	DateOfBirth        string  `json:"date_of_birth,omitempty"`
	Nationality        *string `json:"nationality"`
	SlackID            *string `json:"slack_id"`
	EmploymentEndDate  string  `json:"employment_end_date,omitempty"`
	LifecycleStatus    *string `json:"lifecycle_status"`
}

type SalarySummary struct {
	PayrollMonth string   `json:"payroll_month"`
	Currency     string   `json:"currency"`
	GrossIncome  *float64 `json:"gross_income"`
	NetIncome    *float64 `json:"net_income"`
}

type EOBISummary struct {
	PayrollMonth      string   `json:"payroll_month"`
	EOBINumber        *string  `json:"eobi_number"`
	TotalContribution *float64 `json:"total_contribution"`
}

type OffboardingSummary struct {
	EmploymentEndDate string  `json:"employment_end_date"`
	Status            string  `json:"status"`
	Note              *string `json:"note,omitempty"`
	ScheduledBy       *string `json:"scheduled_by,omitempty"`
}

type FullProfileResponse struct {
	Profile      ProfileResponse       `json:"profile"`
	LatestSalary *SalarySummary        `json:"latest_salary"`
	LatestEOBI   *EOBISummary          `json:"latest_eobi"`
	History      []FieldUpdateResponse `json:"history"`
	Offboarding  *OffboardingSummary   `json:"offboarding"`
}

type StatusResponse struct {
	EmployeeID        int64   `json:"employee_id"`
	EmploymentStatus  string  `json:"employment_status"`
	LifecycleStatus   string  `json:"lifecycle_status"`
	EmploymentEndDate *string `json:"employment_end_date"`
}
