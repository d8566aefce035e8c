package employee

import (
	"time"
)

// Employee mirrors the warehouse Employees table. Columns keep the warehouse
// naming so raw queries and struct scans line up.
type Employee struct {
	EmployeeID         int64      `gorm:"column:Employee_ID;primaryKey"`
	FullName           *string    `gorm:"column:Full_Name"`
	PersonalEmail      *string    `gorm:"column:Personal_Email"`
	OfficialEmail      *string    `gorm:"column:Official_Email"`
	JoiningDate        *time.Time `gorm:"column:Joining_Date"`
	Designation        *string    `gorm:"column:Designation"`
	Department         *string    `gorm:"column:Department"`
	ReportingManager   *string    `gorm:"column:Reporting_Manager"`
	JobType            *string    `gorm:"column:Job_Type"`
	EmploymentStatus   *string    `gorm:"column:Employment_Status"`
	ProbationEndDate   *time.Time `gorm:"column:Probation_End_Date"`
	ContactNumber      *string    `gorm:"column:Contact_Number"`
	CNICID             *string    `gorm:"column:CNIC_ID"`
	Gender             *string    `gorm:"column:Gender"`
	BankName           *string    `gorm:"column:Bank_Name"`
	BankAccountTitle   *string    `gorm:"column:Bank_Account_Title"`
	BankAccountIBAN    *string    `gorm:"column:Bank_Account_Number_IBAN"`
	SwiftCodeBIC       *string    `gorm:"column:Swift_Code_BIC"`
	RoutingNumber      *string    `gorm:"column:Routing_Number"`
	EmploymentLocation *string    `gorm:"column:Employment_Location"`
	DateOfBirth        *time.Time `gorm:"column:Date_of_Birth"`
	Nationality        *string    `gorm:"column:Nationality"`
	SlackID            *string    `gorm:"column:Slack_ID"`
	EmploymentEndDate  *time.Time `gorm:"column:Employment_End_Date"`
	LifecycleStatus    *string    `gorm:"column:Lifecycle_Status"`
	IsDeleted          *bool      `gorm:"column:Is_Deleted"`
	UpdatedAt          *time.Time `gorm:"column:Updated_At"`
	UpdatedBy          *string    `gorm:"column:Updated_By"`
}

func (Employee) TableName() string {
	return "Employees"
}

// FieldUpdate is one append-only audit row in Employee_Field_Updates.
// Rows are immutable once written.
type FieldUpdate struct {
	EmployeeID  int64     `gorm:"column:Employee_ID"`
	FieldName   string    `gorm:"column:Field_Name"`
	OldValue    *string   `gorm:"column:Old_Value"`
	NewValue    *string   `gorm:"column:New_Value"`
	UpdatedDate time.Time `gorm:"column:Updated_Date"`
	UpdatedBy   string    `gorm:"column:Updated_By"`
	Reason      *string   `gorm:"column:Reason"`
}

func (FieldUpdate) TableName() string {
	return "Employee_Field_Updates"
}

// Employment statuses recognized by the status transition endpoint.
const (
	StatusActive     = "Active"
	StatusResigned   = "Resigned"
	StatusTerminated = "Terminated"
)

// Lifecycle stages, ordered. Employment status transitions move the lifecycle
// to its matching terminal stage.
const (
	LifecycleFormSubmitted      = "Form_Submitted"
	LifecycleDataAdded          = "Data_Added"
	LifecycleEmailCreated       = "Email_Created"
	LifecycleEmployeeIDAssigned = "Employee_ID_Assigned"
	LifecycleOnboarded          = "Onboarded"
	LifecycleActive             = "Active"
	LifecycleResigned           = "Resigned"
	LifecycleTerminated         = "Terminated"
)

func lifecycleForStatus(status string) string {
	switch status {
	case StatusResigned:
		return LifecycleResigned
	case StatusTerminated:
		return LifecycleTerminated
	default:
		return LifecycleActive
	}
}
