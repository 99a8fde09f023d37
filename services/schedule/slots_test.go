package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSlotsQuarterHourWindow(t *testing.T) {
	slots, err := EnumerateSlots("09:00", "09:45")
	require.NoError(t, err)

	// The end time is exclusive: 09:45 itself is not a slot.
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:15", slots[1].Time)
	assert.Equal(t, "09:30", slots[2].Time)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "9:15 AM", slots[1].Label)
	assert.Equal(t, "9:30 AM", slots[2].Label)
}

func TestEnumerateSlotsFullDay(t *testing.T) {
	slots, err := EnumerateSlots("09:00", "17:00")
	require.NoError(t, err)
	require.Len(t, slots, 32)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:45", slots[len(slots)-1].Time)
}

func TestEnumerateSlotsOffGridStart(t *testing.T) {
	// Slots step from the window start as given, with no snapping.
	slots, err := EnumerateSlots("09:10", "09:40")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:10", slots[0].Time)
	assert.Equal(t, "09:25", slots[1].Time)
}

func TestEnumerateSlotsEmptyWindow(t *testing.T) {
	slots, err := EnumerateSlots("09:00", "09:00")
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = EnumerateSlots("17:00", "09:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEnumerateSlotsAccepts12HourInput(t *testing.T) {
	slots, err := EnumerateSlots("9:00 AM", "10:00 AM")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:45", slots[3].Time)
}

func TestEnumerateSlotsRejectsMalformedTimes(t *testing.T) {
	_, err := EnumerateSlots("9am", "17:00")
	assert.Error(t, err)

	_, err = EnumerateSlots("09:00", "25:00")
	assert.Error(t, err)
}
