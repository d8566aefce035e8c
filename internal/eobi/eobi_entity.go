package eobi

import "time"

// Contribution is one EOBI fact row per employee and payroll month. Identity
// fields are denormalized at import time because the government portal upload
// must match what was filed, not the live directory.
type Contribution struct {
	EmployeeID           int64      `gorm:"column:Employee_ID"`
	PayrollMonth         time.Time  `gorm:"column:Payroll_Month"`
	EOBINumber           *string    `gorm:"column:EOBI_Number"`
	CNICID               *string    `gorm:"column:CNIC_ID"`
	FullName             *string    `gorm:"column:Full_Name"`
	JoiningDate          *time.Time `gorm:"column:Joining_Date"`
	DateOfBirth          *time.Time `gorm:"column:Date_of_Birth"`
	EmployeeContribution float64    `gorm:"column:Employee_Contribution"`
	EmployerContribution float64    `gorm:"column:Employer_Contribution"`
	TotalContribution    float64    `gorm:"column:Total_Contribution"`
}

func (Contribution) TableName() string {
	return "Employee_EOBI"
}
