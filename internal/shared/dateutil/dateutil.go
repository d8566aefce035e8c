package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial numbers count days since 1899-12-30. Values in this range
// are treated as serials; numbers outside it as millisecond timestamps.
const (
	serialMin = 20000
	serialMax = 80000
)

var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Wrapped is the shape some warehouse clients use for DATE cells.
type Wrapped struct {
	Value any
}

// Two-digit years are deliberately absent: ParseEOBI owns that format, with a
// pivot at 50 instead of time.Parse's 69.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
}

// Normalize coerces heterogeneous date representations into a canonical
// YYYY-MM-DD string. Unparseable input yields ""; it never errors.
func Normalize(v any) string {
	t, ok := coerce(v)
	if !ok {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// NormalizeEOBI renders dates the way the EOBI government portal expects,
// DD-Mon-YY (e.g. 12-Dec-22). It additionally accepts MM/DD/YYYY input.
func NormalizeEOBI(v any) string {
	t, ok := coerce(v)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d-%s-%02d", t.Day(), t.Month().String()[:3], t.Year()%100)
}

// ParseEOBI parses the portal's DD-Mon-YY / DD-Month-YY format back into a
// date. Two-digit years below 50 are 2000s, the rest 1900s.
func ParseEOBI(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}

	month, ok := monthByName(parts[1])
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// MonthBounds returns the first and last day of a YYYY-MM month.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func coerce(v any) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case Wrapped:
		return coerce(val.Value)
	case *Wrapped:
		if val == nil {
			return time.Time{}, false
		}
		return coerce(val.Value)
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val, true
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case float64:
		return fromNumber(val)
	case float32:
		return fromNumber(float64(val))
	case int:
		return fromNumber(float64(val))
	case int64:
		return fromNumber(float64(val))
	case string:
		return fromString(val)
	default:
		return time.Time{}, false
	}
}

func fromNumber(n float64) (time.Time, bool) {
	if n >= serialMin && n <= serialMax {
		return serialEpoch.AddDate(0, 0, int(n)), true
	}
	if n <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(n)).UTC(), true
}

func fromString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if t, ok := ParseEOBI(s); ok {
		return t, true
	}

	// Bare serials sometimes arrive as strings
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return fromNumber(n)
	}

	return time.Time{}, false
}

func monthByName(name string) (time.Month, bool) {
	switch strings.ToLower(name) {
	case "jan", "january":
		return time.January, true
	case "feb", "february":
		return time.February, true
	case "mar", "march":
		return time.March, true
	case "apr", "april":
		return time.April, true
	case "may":
		return time.May, true
	case "jun", "june":
		return time.June, true
	case "jul", "july":
		return time.July, true
	case "aug", "august":
		return time.August, true
	case "sep", "september":
		return time.September, true
	case "oct", "october":
		return time.October, true
	case "nov", "november":
		return time.November, true
	case "dec", "december":
		return time.December, true
	default:
		return 0, false
	}
}
