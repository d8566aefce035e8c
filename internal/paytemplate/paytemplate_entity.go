package paytemplate

import "time"

// The pay template feeds the external payroll run: three sections per month,
// each imported from its own sheet. Month is stored as YYYY-MM text.

type NewHire struct {
	Month                 string     `gorm:"column:Month"`
	EmployeeID            *int64     `gorm:"column:Employee_ID"`
	EmployeeName          string     `gorm:"column:Employee_Name"`
	Designation           *string    `gorm:"column:Designation"`
	OfficialEmail         *string    `gorm:"column:Official_Email"`
	DateOfJoining         *time.Time `gorm:"column:Date_of_Joining"`
	Currency              string     `gorm:"column:Currency"`
	Salary                *float64   `gorm:"column:Salary"`
	EmploymentLocation    *string    `gorm:"column:Employment_Location"`
	BankName              *string    `gorm:"column:Bank_Name"`
	BankAccountTitle      *string    `gorm:"column:Bank_Account_Title"`
	BankAccountNumberIBAN *string    `gorm:"column:Bank_Account_Number_IBAN"`
	SwiftCodeBIC          *string    `gorm:"column:Swift_Code_BIC"`
	Comments              *string    `gorm:"column:Comments_by_Aun"`
}

func (NewHire) TableName() string {
	return "Pay_Template_New_Hires"
}

type Leaver struct {
	Month             string     `gorm:"column:Month"`
	EmployeeID        *int64     `gorm:"column:Employee_ID"`
	EmployeeName      string     `gorm:"column:Employee_Name"`
	EmploymentEndDate *time.Time `gorm:"column:Employment_End_Date"`
	PayrollType       string     `gorm:"column:Payroll_Type"`
	Comments          *string    `gorm:"column:Comments"`
	DevicesReturned   *string    `gorm:"column:Devices_Returned"`
}

func (Leaver) TableName() string {
	return "Pay_Template_Leavers"
}

type Increment struct {
	Month          string     `gorm:"column:Month"`
	EmployeeID     *int64     `gorm:"column:Employee_ID"`
	EmployeeName   string     `gorm:"column:Employee_Name"`
	Currency       string     `gorm:"column:Currency"`
	PreviousSalary *float64   `gorm:"column:Previous_Salary"`
	UpdatedSalary  *float64   `gorm:"column:Updated_Salary"`
	EffectiveDate  *time.Time `gorm:"column:Effective_Date"`
	Comments       *string    `gorm:"column:Comments"`
	Remarks        *string    `gorm:"column:Remarks"`
}

func (Increment) TableName() string {
	return "Pay_Template_Increments"
}
