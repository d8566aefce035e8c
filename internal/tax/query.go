package tax

import (
	"strings"

	"hradmin/internal/shared/listing"
)

const listSelect = `
SELECT
	t."Employee_ID",
	t."Payroll_Month",
	e."Full_Name",
	e."Department",
	e."Designation",
	t."Taxable_Income",
	t."Tax_Rate",
	t."Tax_Amount",
	t."Tax_Type",
	t."Tax_Bracket"
FROM "Employee_Tax_Calculations" t
LEFT JOIN "Employees" e ON e."Employee_ID" = t."Employee_ID"
`

const countSelect = `
SELECT COUNT(*)
FROM "Employee_Tax_Calculations" t
LEFT JOIN "Employees" e ON e."Employee_ID" = t."Employee_ID"
`

func BuildListQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	sql := listSelect + where + `
ORDER BY t."Payroll_Month" DESC, e."Full_Name" ASC
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
		conds = append(conds, `to_char(t."Payroll_Month", 'YYYY-MM') = ?`)
		args = append(args, f.Month)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, `(
	LOWER(COALESCE(e."Full_Name", '')) LIKE ?
	OR LOWER(COALESCE(e."Department", '')) LIKE ?
	OR LOWER(COALESCE(e."Designation", '')) LIKE ?
)`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, "\nAND "), args
}
