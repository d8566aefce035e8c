package csvutil_test

import (
	"testing"
	"time"

	"hradmin/internal/shared/csvutil"

	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	t.Run("empty row set yields empty string", func(t *testing.T) {
		assert.Equal(t, "", csvutil.Marshal(nil, nil))
		assert.Equal(t, "", csvutil.Marshal([]csvutil.Row{}, []string{"a"}))
	})

	t.Run("single row", func(t *testing.T) {
		got := csvutil.Marshal([]csvutil.Row{{"a": 1, "b": 2}}, nil)
		assert.Equal(t, "a,b\n1,2", got)
	})

	t.Run("header order used verbatim", func(t *testing.T) {
		got := csvutil.Marshal([]csvutil.Row{{"a": 1, "b": 2}}, []string{"b", "a"})
		assert.Equal(t, "b,a\n2,1", got)
	})

	t.Run("comma value is quoted", func(t *testing.T) {
		got := csvutil.Marshal([]csvutil.Row{{"name": "Doe, Jane"}}, nil)
		assert.Equal(t, "name\n\"Doe, Jane\"", got)
	})

	t.Run("internal quotes are doubled", func(t *testing.T) {
		got := csvutil.Marshal([]csvutil.Row{{"note": `said "no"`}}, nil)
		assert.Equal(t, "note\n\"said \"\"no\"\"\"", got)
	})

	t.Run("missing key becomes empty cell", func(t *testing.T) {
		rows := []csvutil.Row{
			{"a": 1, "b": 2},
			{"a": 3},
		}
		got := csvutil.Marshal(rows, []string{"a", "b"})
		assert.Equal(t, "a,b\n1,2\n3,", got)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		got := csvutil.Marshal([]csvutil.Row{{"a": 1}}, nil)
		assert.NotContains(t, got[len(got)-1:], "\n")
	})
}

func TestSanitize(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", csvutil.Sanitize(nil))
	})

	t.Run("time is ISO 8601", func(t *testing.T) {
		ts := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
		assert.Equal(t, "2025-01-15T08:30:00Z", csvutil.Sanitize(ts))
	})

	t.Run("nil time pointer", func(t *testing.T) {
		var ts *time.Time
		assert.Equal(t, "", csvutil.Sanitize(ts))
	})

	t.Run("map is JSON stringified", func(t *testing.T) {
		assert.Equal(t, `{"k":"v"}`, csvutil.Sanitize(map[string]any{"k": "v"}))
	})

	t.Run("numbers coerce to string", func(t *testing.T) {
		assert.Equal(t, "42", csvutil.Sanitize(42))
		assert.Equal(t, "3.5", csvutil.Sanitize(3.5))
	})
}
