package salary

import (
	"strings"
	"testing"

	"hradmin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryNoFilters(t *testing.T) {
	sql, args := BuildListQuery(listing.Filter{Limit: 50})

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, `ORDER BY s."Payroll_Month" DESC, s."Currency" ASC`)
	assert.Contains(t, sql, "LIMIT ? OFFSET ?")
	assert.Equal(t, []any{50, 0}, args)
}

func TestBuildListQueryMonthFilter(t *testing.T) {
	sql, args := BuildListQuery(listing.Filter{Month: "2025-06", Limit: 50})

	assert.Contains(t, sql, `to_char(s."Payroll_Month", 'YYYY-MM') = ?`)
	assert.Equal(t, []any{"2025-06", 50, 0}, args)
}

func TestBuildListQueryCurrencyUppercased(t *testing.T) {
	_, args := BuildListQuery(listing.Filter{Currency: "pkr", Limit: 50})

	assert.Equal(t, "PKR", args[0])
}

func TestBuildListQuerySearchIsLowercasedAndORed(t *testing.T) {
	sql, args := BuildListQuery(listing.Filter{Search: "Ali KHAN", Limit: 50})

	assert.Contains(t, sql, `LOWER(COALESCE(s."Full_Name", e."Full_Name", '')) LIKE ?`)
	assert.Contains(t, sql, `LOWER(COALESCE(e."Official_Email", '')) LIKE ?`)
	assert.Contains(t, sql, `LOWER(COALESCE(s."Department", e."Department", '')) LIKE ?`)
	assert.Equal(t, 2, strings.Count(sql, "OR LOWER"))
	assert.Equal(t, []any{"%ali khan%", "%ali khan%", "%ali khan%", 50, 0}, args)
}

func TestBuildListQueryPrefersPayrollCopies(t *testing.T) {
	sql, _ := BuildListQuery(listing.Filter{Limit: 50})

	assert.Contains(t, sql, `COALESCE(s."Full_Name", e."Full_Name") AS "Full_Name"`)
	assert.Contains(t, sql, `LEFT JOIN "Employees" e`)
}

func TestBuildCountQueryMirrorsFilters(t *testing.T) {
	f := listing.Filter{Month: "2025-06", Currency: "PKR", Search: "ali", Limit: 50, Offset: 100}
	sql, args := BuildCountQuery(f)

	assert.Contains(t, sql, "SELECT COUNT(*)")
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "ORDER BY")
	assert.Equal(t, []any{"2025-06", "PKR", "%ali%", "%ali%", "%ali%"}, args)
}
