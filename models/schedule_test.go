package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleIntervalCovers(t *testing.T) {
	iv := ScheduleInterval{StartDate: "2024-01-01", EndDate: "2024-01-10"}

	assert.True(t, iv.Covers("2024-01-01"))
	assert.True(t, iv.Covers("2024-01-05"))
	assert.True(t, iv.Covers("2024-01-10"))
	assert.False(t, iv.Covers("2023-12-31"))
	assert.False(t, iv.Covers("2024-01-11"))
}

func TestScheduleIntervalOverlaps(t *testing.T) {
	iv := ScheduleInterval{StartDate: "2024-01-05", EndDate: "2024-01-15"}

	assert.True(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-01", EndDate: "2024-01-05"}))
	assert.True(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-15", EndDate: "2024-01-20"}))
	assert.True(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-07", EndDate: "2024-01-09"}))
	assert.True(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-01", EndDate: "2024-01-31"}))
	assert.False(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-01", EndDate: "2024-01-04"}))
	assert.False(t, iv.Overlaps(ScheduleInterval{StartDate: "2024-01-16", EndDate: "2024-01-20"}))
}
