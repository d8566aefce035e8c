package eobi

import (
	"strings"

	"hradmin/internal/shared/listing"
)

const listSelect = `
SELECT
	"Employee_ID",
	"Payroll_Month",
	"EOBI_Number",
	"CNIC_ID",
	"Full_Name",
	"Joining_Date",
	"Date_of_Birth",
	"Employee_Contribution",
	"Employer_Contribution",
	"Total_Contribution"
FROM "Employee_EOBI"
`

const countSelect = `
SELECT COUNT(*)
FROM "Employee_EOBI"
`

func BuildListQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	sql := listSelect + where + `
ORDER BY "Payroll_Month" DESC, "Full_Name" ASC
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
		conds = append(conds, `to_char("Payroll_Month", 'YYYY-MM') = ?`)
		args = append(args, f.Month)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, `(
	LOWER(COALESCE("Full_Name", '')) LIKE ?
	OR LOWER(COALESCE("EOBI_Number", '')) LIKE ?
	OR LOWER(COALESCE("CNIC_ID", '')) LIKE ?
)`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, "\nAND "), args
}
