package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	_, err = NewDateStringFromString("15.01.2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2024-13-40")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "two days", from: "2024-01-01", to: "2024-01-03", want: 2},
		{name: "same day", from: "2024-01-01", to: "2024-01-01", want: 0},
		{name: "negative when reversed", from: "2024-01-03", to: "2024-01-01", want: -2},
		{name: "across month boundary", from: "2024-01-29", to: "2024-02-05", want: 7},
		{name: "across leap day", from: "2024-02-28", to: "2024-03-01", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateString(tt.from).DaysUntil(DateString(tt.to))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil_InvalidDate(t *testing.T) {
	_, err := DateString("garbage").DaysUntil(DateString("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestIsBefore(t *testing.T) {
	assert.True(t, DateString("2024-01-01").IsBefore(DateString("2024-01-02")))
	assert.False(t, DateString("2024-01-02").IsBefore(DateString("2024-01-01")))
	assert.False(t, DateString("2024-01-01").IsBefore(DateString("2024-01-01")))
	assert.False(t, DateString("garbage").IsBefore(DateString("2024-01-01")))
}

func TestNewDateString_DropsTime(t *testing.T) {
	d := NewDateString(time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2024-06-15", d.String())
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date DateString `json:"date"`
	}

	data, err := json.Marshal(payload{Date: DateString("2024-01-15")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date": "2024-01-15"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"date": "2024-03-01"}`), &got))
	assert.Equal(t, DateString("2024-03-01"), got.Date)
}
