package schedule

import (
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"
)

// SlotWidthMinutes is the fixed width of a selectable appointment slot.
const SlotWidthMinutes = 15

// EnumerateSlots walks the daily window from start in fixed 15-minute steps,
// emitting a slot while the running clock is strictly before end. There is no
// snapping to a canonical grid: slots proceed from the start time as given.
// A window whose start is not before its end yields no slots.
func EnumerateSlots(dailyStartTime, dailyEndTime string) ([]models.TimeSlot, error) {
	start, err := utils.MinuteOfDay(dailyStartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.MinuteOfDay(dailyEndTime)
	if err != nil {
		return nil, err
	}

	var slots []models.TimeSlot
	for cur := start; cur < end; cur += SlotWidthMinutes {
		slots = append(slots, models.TimeSlot{
			Start: cur,
			Time:  utils.MinuteClock(cur),
			Label: utils.MinuteLabel(cur),
		})
	}
	return slots, nil
}

func (s *DefaultScheduleService) DaySlots(doctorID, date string) (*models.DaySlotsResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	resp := &models.DaySlotsResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []models.TimeSlot{},
	}

	interval, err := s.FindCoveringInterval(doctorID, date)
	if err != nil {
		return nil, err
	}
	if interval == nil {
		resp.Message = "doctor has no availability on this date"
		return resp, nil
	}

	slots, err := EnumerateSlots(interval.DailyStartTime, interval.DailyEndTime)
	if err != nil {
		return nil, err
	}

	booked, err := s.Appointments.GetApprovedTimes(doctorID, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		if norm, err := utils.To24Hour(t); err == nil {
			taken[norm] = true
		}
	}
	for i := range slots {
		slots[i].Booked = taken[slots[i].Time]
	}

	resp.Available = true
	resp.Slots = slots
	return resp, nil
}
