package opd

import (
	"strings"

	"hradmin/internal/shared/listing"
)

// The correlated subquery derives the running balance as of the row's month:
// all PKR accruals up to and including that month, minus claims.
const listSelect = `
SELECT
	o."Employee_ID",
	o."Benefit_Month",
	o."Contribution",
	o."Claimed",
	o."Currency",
	e."Full_Name",
	e."Department",
	(
		SELECT COALESCE(SUM(p."Contribution" - p."Claimed"), 0)
		FROM "Employee_OPD_Benefits" p
		WHERE p."Employee_ID" = o."Employee_ID"
		AND p."Currency" = 'PKR'
		AND p."Benefit_Month" <= o."Benefit_Month"
	) AS "Balance"
FROM "Employee_OPD_Benefits" o
LEFT JOIN "Employees" e ON e."Employee_ID" = o."Employee_ID"
`

const countSelect = `
SELECT COUNT(*)
FROM "Employee_OPD_Benefits" o
LEFT JOIN "Employees" e ON e."Employee_ID" = o."Employee_ID"
`

func BuildListQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	sql := listSelect + where + `
ORDER BY o."Benefit_Month" DESC, e."Full_Name" ASC
LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)
	return sql, args
}

func BuildCountQuery(f listing.Filter) (string, []any) {
	where, args := buildWhere(f)
	return countSelect + where, args
}

func buildWhere(f listing.Filter) (string, []any) {
	conds := []string{`o."Currency" = 'PKR'`}
	var args []any

	if f.Month != "" {
		conds = append(conds, `to_char(o."Benefit_Month", 'YYYY-MM') = ?`)
		args = append(args, f.Month)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, `(
	LOWER(COALESCE(e."Full_Name", '')) LIKE ?
	OR LOWER(COALESCE(e."Department", '')) LIKE ?
)`)
		args = append(args, pattern, pattern)
	}

	return "WHERE " + strings.Join(conds, "\nAND "), args
}
