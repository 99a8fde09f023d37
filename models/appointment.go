package models

import "time"

// Appointment statuses. Pending appointments carry no date/time; both are
// set when a doctor confirms.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is a patient's consultation request with a doctor.
type Appointment struct {
	ID        string `bson:"id" json:"id"`
	PatientID string `bson:"patientId" json:"patientId"`
	DoctorID  string `bson:"doctorId" json:"doctorId"`
	Reason    string `bson:"reason" json:"reason"`
	Status    string `bson:"status" json:"status"`
	// Set on confirmation: "2006-01-02" date and 24-hour "HH:MM" time.
	AppointmentDate string    `bson:"appointmentDate,omitempty" json:"appointmentDate,omitempty"`
	AppointmentTime string    `bson:"appointmentTime,omitempty" json:"appointmentTime,omitempty"`
	RejectReason    string    `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RequestAppointmentInput is the patient payload for requesting a consultation.
type RequestAppointmentInput struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// ConfirmAppointmentInput is the doctor payload for confirming a pending
// appointment at a concrete date and time.
type ConfirmAppointmentInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// RejectAppointmentInput carries the optional rejection reason.
type RejectAppointmentInput struct {
	Reason string `json:"reason"`
}
