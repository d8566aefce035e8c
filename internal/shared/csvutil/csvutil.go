package csvutil

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Row is a single uniform-shape result row keyed by column name.
type Row map[string]any

// Marshal renders rows as CSV text. Header order is used verbatim when given;
// otherwise the sorted union of keys across all rows (Go maps do not preserve
// insertion order, so sorting is the deterministic fallback). Output joins
// lines with \n and carries no trailing newline. An empty row set yields "".
func Marshal(rows []Row, headerOrder []string) string {
	if len(rows) == 0 {
		return ""
	}

	headers := headerOrder
	if len(headers) == 0 {
		seen := make(map[string]bool)
		for _, row := range rows {
			for key := range row {
				if !seen[key] {
					seen[key] = true
					headers = append(headers, key)
				}
			}
		}
		sort.Strings(headers)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(headers))

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = Sanitize(row[h])
		}
		lines = append(lines, joinCells(cells))
	}

	return strings.Join(lines, "\n")
}

// Sanitize converts a cell value to its CSV string form. nil becomes "",
// dates become ISO 8601, structured values are JSON stringified best effort.
func Sanitize(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.UTC().Format(time.RFC3339)
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case *int:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	case *int64:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	case *float64:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	case map[string]any, []any:
		if b, err := json.Marshal(val); err == nil {
			return string(b)
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}

func joinCells(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escape(cell)
	}
	return strings.Join(escaped, ",")
}

// escape quotes a cell only when it contains a comma, quote, or newline.
func escape(cell string) string {
	if strings.ContainsAny(cell, ",\"\n\r") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}
