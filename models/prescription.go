package models

import "time"

// Medication is one prescribed item.
type Medication struct {
	Name         string `bson:"name" json:"name" binding:"required"`
	Dosage       string `bson:"dosage" json:"dosage" binding:"required"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Prescription is issued by a doctor against an approved or completed
// appointment. AttachmentID is the Cloudinary public ID of an optional
// uploaded document (scan, lab report).
type Prescription struct {
	ID            string       `bson:"id" json:"id"`
	AppointmentID string       `bson:"appointmentId" json:"appointmentId"`
	DoctorID      string       `bson:"doctorId" json:"doctorId"`
	PatientID     string       `bson:"patientId" json:"patientId"`
	Medications   []Medication `bson:"medications" json:"medications"`
	Notes         string       `bson:"notes,omitempty" json:"notes,omitempty"`
	AttachmentID  string       `bson:"attachmentId,omitempty" json:"attachmentId,omitempty"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
}

// CreatePrescriptionInput is the doctor payload for issuing a prescription.
// The attachment, if any, arrives as a separate multipart file.
type CreatePrescriptionInput struct {
	AppointmentID string       `json:"appointmentId" binding:"required"`
	Medications   []Medication `json:"medications" binding:"required,min=1,dive"`
	Notes         string       `json:"notes"`
}
