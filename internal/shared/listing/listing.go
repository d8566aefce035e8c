package listing

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 50
	ExportPageSize  = 10000
)

// Filter is the query shape shared by the payroll-style listing endpoints:
// month scopes to a YYYY-MM payroll period, currency and search narrow rows,
// limit/offset page through them.
type Filter struct {
	Month    string
	Currency string
	Search   string
	Limit    int
	Offset   int
}

// FromQuery reads the shared filter parameters off the request. A CSV export
// widens the page to ExportPageSize and resets the offset so the file always
// starts from the first row.
func FromQuery(c *gin.Context) (Filter, bool) {
	f := Filter{
		Month:    strings.TrimSpace(c.Query("month")),
		Currency: strings.TrimSpace(c.Query("currency")),
		Search:   strings.TrimSpace(c.Query("search")),
		Limit:    DefaultPageSize,
		Offset:   0,
	}

	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.Limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			f.Offset = n
		}
	}

	csvExport := strings.EqualFold(c.Query("format"), "csv")
	if csvExport {
		f.Limit = ExportPageSize
		f.Offset = 0
	}
	return f, csvExport
}

// ExportFilename builds the deterministic download name, e.g.
// salaries-pkr-2025-06.csv or salaries-all-all.csv.
func ExportFilename(domain, currency, month string) string {
	c := "all"
	if currency != "" {
		c = strings.ToLower(currency)
	}
	m := "all"
	if month != "" {
		m = month
	}
	return domain + "-" + c + "-" + m + ".csv"
}
