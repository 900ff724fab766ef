package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "09:00", want: "09:00"},
		{name: "single digit hour", input: "9:00", want: "09:00"},
		{name: "with seconds", input: "09:00:00", want: "09:00"},
		{name: "evening", input: "17:30", want: "17:30"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeStringFromParts(t *testing.T) {
	got, err := NewTimeStringFromParts([]int{9, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.String())

	got, err = NewTimeStringFromParts([]int{14, 30})
	require.NoError(t, err)
	assert.Equal(t, "14:30", got.String())

	_, err = NewTimeStringFromParts(nil)
	require.Error(t, err)

	_, err = NewTimeStringFromParts([]int{24, 0})
	require.Error(t, err)
}

func TestWithSecondsIdempotent(t *testing.T) {
	ts := TimeString("09:00")
	assert.Equal(t, "09:00:00", ts.WithSeconds())

	// Повторная нормализация не добавляет второй суффикс
	withSeconds := TimeString("09:00:00")
	assert.Equal(t, "09:00:00", withSeconds.WithSeconds())
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{name: "within day", start: "17:30", minutes: 90, want: "19:00"},
		{name: "exact hour", start: "09:00", minutes: 60, want: "10:00"},
		{name: "wrap past midnight", start: "23:30", minutes: 60, want: "00:30"},
		{name: "wrap exactly midnight", start: "23:00", minutes: 60, want: "00:00"},
		{name: "negative wraps back", start: "00:30", minutes: -60, want: "23:30"},
		{name: "zero", start: "12:15", minutes: 0, want: "12:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.start).AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddMinutesInvalid(t *testing.T) {
	_, err := TimeString("not a time").AddMinutes(30)
	require.Error(t, err)
}

func TestHour(t *testing.T) {
	h, err := TimeString("09:45").Hour()
	require.NoError(t, err)
	assert.Equal(t, 9, h)

	h, err = TimeString("13:00").Hour()
	require.NoError(t, err)
	assert.Equal(t, 13, h)
}

func TestIsBeforeIsAfter(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 11, 20, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, "14:05", NewTimeString(moment).String())
}

func TestJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(TimeString("08:15"))
	require.NoError(t, err)
	assert.Equal(t, `"08:15"`, string(raw))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"9:00"`), &ts))
	assert.Equal(t, "09:00", ts.String())
}
