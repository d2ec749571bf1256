package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", d.Display())

	d, err = ParseDate("  2026-08-29  ")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", d.Display())

	_, err = ParseDate("29/08/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateDisplayZero(t *testing.T) {
	var d Date
	assert.Empty(t, d.Display())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-29")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29T00:00:00Z"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "2026-08-29", back.Display())
}

func TestDateUnmarshalAcceptedFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "full datetime", raw: `"2026-08-29T10:30:00Z"`, want: "2026-08-29"},
		{name: "bare date", raw: `"2026-08-29"`, want: "2026-08-29"},
		{name: "datetime without zone", raw: `"2026-08-29T10:30:00"`, want: "2026-08-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.Equal(t, tt.want, d.Display())
		})
	}
}

func TestDateUnmarshalEmptyAndNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"ayer"`), &d))
}

func TestNewDateTruncatesToDay(t *testing.T) {
	d := NewDate(time.Date(2026, 8, 29, 17, 45, 12, 0, time.UTC))
	assert.Equal(t, "2026-08-29", d.Display())
}
