package salary

import (
	"strings"

	"hradmin/internal/shared/listing"
)

const listSelect = `
SELECT
	s."Employee_ID",
	s."Payroll_Month",
	s."Currency",
	COALESCE(s."Full_Name", e."Full_Name") AS "Full_Name",
	COALESCE(s."Department", e."Department") AS "Department",
	COALESCE(s."Designation", e."Designation") AS "Designation",
	e."Official_Email",
	e."Joining_Date",
	e."Employment_End_Date",
	e."Employment_Status",
	s."Regular_Pay",
	s."Prorated_Pay",
	s."Performance_Bonus",
	s."Paid_Overtime",
	s."Reimbursements",
	s."Other",
	s."Gross_Income",
	s."Unpaid_Leaves",
	s."Deductions",
	s."Net_Income",
	s."Worked_Days",
	s."Comments"
FROM "Employee_Salaries" s
LEFT JOIN "Employees" e ON e."Employee_ID" = s."Employee_ID"
`

const countSelect = `
SELECT COUNT(*)
FROM "Employee_Salaries" s
LEFT JOIN "Employees" e ON e."Employee_ID" = s."Employee_ID"
`

// BuildListQuery renders the listing statement for a filter. Pure; the repo
// owns execution so the SQL shape stays testable without a connection.
func BuildListQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	sql := listSelect + where + `
ORDER BY s."Payroll_Month" DESC, s."Currency" ASC
LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)
	return sql, args
}

func BuildCountQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	return countSelect + where, args
}

func buildWhere(f listing.Filter) (string, []any) {
	var conds []string
	var args []any

	if f.Month != "" {
		conds = append(conds, `to_char(s."Payroll_Month", 'YYYY-MM') = ?`)
		args = append(args, f.Month)
	}
	if f.Currency != "" {
		conds = append(conds, `s."Currency" = ?`)
		args = append(args, strings.ToUpper(f.Currency))
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, `(
	LOWER(COALESCE(s."Full_Name", e."Full_Name", '')) LIKE ?
	OR LOWER(COALESCE(e."Official_Email", '')) LIKE ?
	OR LOWER(COALESCE(s."Department", e."Department", '')) LIKE ?
)`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, "\nAND "), args
}
