package models

import "time"

// Account roles. A single account type serves all three roles; the role
// field decides which endpoints an account may call.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Account represents a platform identity (patient, doctor or admin).
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	// Doctor-only profile fields.
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Department     string `bson:"department,omitempty" json:"department,omitempty"`
	// Push target for appointment notifications and reminders.
	FCMToken string `bson:"fcmToken,omitempty" json:"-"`
	// SHA-256 hash of the currently issued JWT; cleared on revocation.
	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the payload for account registration. The role comes
// from the route, not the body, so a patient cannot self-register as admin.
type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
}

// LoginRequest is the payload for account authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
