package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowKeepsInsertionOrder(t *testing.T) {
	row := NewRow()
	row.Set("z", 1)
	row.Set("a", 2)
	row.Set("m", 3)

	assert.Equal(t, []string{"z", "a", "m"}, row.Keys())

	row.Set("a", 20)
	assert.Equal(t, []string{"z", "a", "m"}, row.Keys(), "replace keeps position")
	v, ok := row.Get("a")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestRowMarshalJSONOrdered(t *testing.T) {
	row := NewRow()
	row.Set("date", "2025-09-01")
	row.Set("julian_day", 2460919.5)
	row.Set("Sun_Retrograde", false)
	row.Set("Sun_Name_VI", "Mặt Trời")

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"date":"2025-09-01","julian_day":2460919.5,"Sun_Retrograde":false,"Sun_Name_VI":"Mặt Trời"}`,
		string(out))
	assert.Equal(t,
		`{"date":"2025-09-01","julian_day":2460919.5,"Sun_Retrograde":false,"Sun_Name_VI":"Mặt Trời"}`,
		string(out), "keys must stay in insertion order")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"string", "Leo", "Leo"},
		{"bool", true, "true"},
		{"float", 12.3456, "12.3456"},
		{"float drops trailing zeroes", 7.0, "7"},
		{"int", 42, "42"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.in))
		})
	}
}
