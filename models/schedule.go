package models

import "time"

// ScheduleInterval is a doctor's recurring daily availability window over a
// calendar date range. Dates are "2006-01-02" strings and times are 24-hour
// "HH:MM" strings; both compare correctly as plain strings.
type ScheduleInterval struct {
	ID             string    `bson:"id" json:"id"`
	DoctorID       string    `bson:"doctorId" json:"doctorId"`
	StartDate      string    `bson:"startDate" json:"startDate"` // inclusive
	EndDate        string    `bson:"endDate" json:"endDate"`     // inclusive
	DailyStartTime string    `bson:"dailyStartTime" json:"dailyStartTime"`
	DailyEndTime   string    `bson:"dailyEndTime" json:"dailyEndTime"`
	IsHoliday      bool      `bson:"isHoliday" json:"isHoliday"`
	IsOnLeave      bool      `bson:"isOnLeave" json:"isOnLeave"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Covers reports whether the interval's date range contains the given
// "2006-01-02" date. Holiday/leave flags are checked by the caller.
func (si ScheduleInterval) Covers(date string) bool {
	return date >= si.StartDate && date <= si.EndDate
}

// Overlaps reports whether two intervals share at least one calendar day.
func (si ScheduleInterval) Overlaps(other ScheduleInterval) bool {
	return si.StartDate <= other.EndDate && other.StartDate <= si.EndDate
}

// AssignScheduleRequest is the admin payload for assigning a doctor's schedule.
type AssignScheduleRequest struct {
	DoctorID       string `json:"doctorId" binding:"required"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	DailyStartTime string `json:"dailyStartTime" binding:"required"`
	DailyEndTime   string `json:"dailyEndTime" binding:"required"`
	IsHoliday      bool   `json:"isHoliday"`
	IsOnLeave      bool   `json:"isOnLeave"`
}
