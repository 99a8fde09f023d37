package models

// TimeSlot is a derived, fixed-width candidate appointment time. Slots are
// enumerated fresh from a schedule interval on every request and never
// persisted.
type TimeSlot struct {
	Start  int    `json:"start"`  // minutes from midnight
	Time   string `json:"time"`   // 24-hour "HH:MM", the wire format
	Label  string `json:"label"`  // 12-hour display label, e.g. "9:00 AM"
	Booked bool   `json:"booked"` // an approved appointment already holds this slot
}

// DaySlotsResponse lists the selectable slots for a doctor on one date.
type DaySlotsResponse struct {
	DoctorID  string     `json:"doctorId"`
	Date      string     `json:"date"`
	Available bool       `json:"available"`
	Message   string     `json:"message,omitempty"`
	Slots     []TimeSlot `json:"slots"`
}
