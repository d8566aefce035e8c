package employee

import (
	"time"
)

// UpdatableField is the closed set of columns the field update endpoint may
// touch. Employment_Status and Employment_End_Date are deliberately absent:
// they change only through the status and offboarding endpoints.
type UpdatableField string

const (
	FieldFullName           UpdatableField = "Full_Name"
	FieldPersonalEmail      UpdatableField = "Personal_Email"
	FieldOfficialEmail      UpdatableField = "Official_Email"
	FieldJoiningDate        UpdatableField = "Joining_Date"
	FieldDesignation        UpdatableField = "Designation"
	FieldDepartment         UpdatableField = "Department"
	FieldReportingManager   UpdatableField = "Reporting_Manager"
	FieldJobType            UpdatableField = "Job_Type"
	FieldContactNumber      UpdatableField = "Contact_Number"
	FieldCNICID             UpdatableField = "CNIC_ID"
	FieldGender             UpdatableField = "Gender"
	FieldBankName           UpdatableField = "Bank_Name"
	FieldBankAccountTitle   UpdatableField = "Bank_Account_Title"
	FieldBankAccountIBAN    UpdatableField = "Bank_Account_Number_IBAN"
	FieldSwiftCodeBIC       UpdatableField = "Swift_Code_BIC"
	FieldRoutingNumber      UpdatableField = "Routing_Number"
	FieldEmploymentLocation UpdatableField = "Employment_Location"
	FieldDateOfBirth        UpdatableField = "Date_of_Birth"
	FieldNationality        UpdatableField = "Nationality"
	FieldSlackID            UpdatableField = "Slack_ID"
)

var updatableFields = []UpdatableField{
	FieldFullName,
	FieldPersonalEmail,
	FieldOfficialEmail,
	FieldJoiningDate,
	FieldDesignation,
	FieldDepartment,
	FieldReportingManager,
	FieldJobType,
	FieldContactNumber,
	FieldCNICID,
	FieldGender,
	FieldBankName,
	FieldBankAccountTitle,
	FieldBankAccountIBAN,
	FieldSwiftCodeBIC,
	FieldRoutingNumber,
	FieldEmploymentLocation,
	FieldDateOfBirth,
	FieldNationality,
	FieldSlackID,
}

// ParseUpdatableField validates a request field name against the closed set.
func ParseUpdatableField(name string) (UpdatableField, bool) {
	for _, f := range updatableFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// UpdatableFieldNames lists the allowed column names for error messages.
func UpdatableFieldNames() []string {
	names := make([]string, len(updatableFields))
	for i, f := range updatableFields {
		names[i] = string(f)
	}
	return names
}

// IsDateField reports whether the column holds a DATE, so incoming values get
// normalized before compare/write.
func (f UpdatableField) IsDateField() bool {
	switch f {
	case FieldJoiningDate, FieldDateOfBirth:
		return true
	default:
		return false
	}
}

// CurrentValue projects the employee's present value for the field as a
// nullable string, the same representation update requests arrive in. The
// switch is exhaustive over the UpdatableField constants.
func (f UpdatableField) CurrentValue(e *Employee) *string {
	switch f {
	case FieldFullName:
		return e.FullName
	case FieldPersonalEmail:
		return e.PersonalEmail
	case FieldOfficialEmail:
		return e.OfficialEmail
	case FieldJoiningDate:
		return dateStr(e.JoiningDate)
	case FieldDesignation:
		return e.Designation
	case FieldDepartment:
		return e.Department
	case FieldReportingManager:
		return e.ReportingManager
	case FieldJobType:
		return e.JobType
	case FieldContactNumber:
		return e.ContactNumber
	case FieldCNICID:
		return e.CNICID
	case FieldGender:
		return e.Gender
	case FieldBankName:
		return e.BankName
	case FieldBankAccountTitle:
		return e.BankAccountTitle
	case FieldBankAccountIBAN:
		return e.BankAccountIBAN
	case FieldSwiftCodeBIC:
		return e.SwiftCodeBIC
	case FieldRoutingNumber:
		return e.RoutingNumber
	case FieldEmploymentLocation:
		return e.EmploymentLocation
	case FieldDateOfBirth:
		return dateStr(e.DateOfBirth)
	case FieldNationality:
		return e.Nationality
	case FieldSlackID:
		return e.SlackID
	default:
		return nil
	}
}

func dateStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02")
	return &s
}
