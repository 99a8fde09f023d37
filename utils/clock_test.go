package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"23:59", "23:59"},
		{"00:00", "00:00"},
		{"9:00 AM", "09:00"},
		{"9:00 PM", "21:00"},
		{"9:00pm", "21:00"},
		{"9:00am", "09:00"},
		{"12:00 AM", "00:00"},
		{"12:30 AM", "00:30"},
		{"12:00 PM", "12:00"},
		{"12:30 PM", "12:30"},
		{"01:30 PM", "13:30"},
		{"11:59 PM", "23:59"},
		{" 10:15 AM ", "10:15"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTo24HourRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"9",
		"9:5",
		"9:5 AM",
		"25:00",
		"24:00",
		"09:60",
		"13:00 PM",
		"0:30 AM",
		"abc",
		"9:00 XM",
		"::",
	}
	for _, in := range bad {
		_, err := To24Hour(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"17:00", "5:00 PM"},
		{"23:59", "11:59 PM"},
		{"9:00 AM", "9:00 AM"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	// Every quarter hour of the day survives 24h -> 12h -> 24h unchanged.
	for m := 0; m < 24*60; m += 15 {
		clock := MinuteClock(m)
		label, err := To12Hour(clock)
		require.NoError(t, err)

		back, err := To24Hour(label)
		require.NoError(t, err)
		assert.Equal(t, clock, back)

		gotMinute, err := MinuteOfDay(label)
		require.NoError(t, err)
		assert.Equal(t, m, gotMinute)
	}
}

func TestMinuteOfDay(t *testing.T) {
	got, err := MinuteOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, got)

	got, err = MinuteOfDay("12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = MinuteOfDay("9:99")
	assert.Error(t, err)
}

func TestMinuteLabelFromClock(t *testing.T) {
	assert.Equal(t, "5:00 PM", MinuteLabelFromClock("17:00"))
	assert.Equal(t, "12:00 AM", MinuteLabelFromClock("00:00"))
	// Unparseable input falls back to the raw string.
	assert.Equal(t, "whenever", MinuteLabelFromClock("whenever"))
}
