package eobi

type RowResponse struct {
	EmployeeID           int64   `json:"employee_id"`
	PayrollMonth         string  `json:"payroll_month"`
	EOBINumber           *string `json:"eobi_number"`
	CNIC                 string  `json:"cnic"`
	CNICValid            bool    `json:"cnic_valid"`
	FullName             *string `json:"full_name"`
	JoiningDate          string  `json:"joining_date"`
	DateOfBirth          string  `json:"date_of_birth"`
	EmployeeContribution float64 `json:"employee_contribution"`
	EmployerContribution float64 `json:"employer_contribution"`
	TotalContribution    float64 `json:"total_contribution"`
}

type ListResponse struct {
	Month string        `json:"month"`
	Rows  []RowResponse `json:"rows"`
	Total int64         `json:"total"`
}
