package models

import "time"

// BusinessSettings holds tenant-level configuration stored alongside the
// business document.
type BusinessSettings struct {
	Timezone        string `bson:"timezone" json:"timezone"`               // IANA name, e.g. "Europe/Lisbon"
	PhoneRegion     string `bson:"phoneRegion" json:"phoneRegion"`         // default region for client phone parsing, e.g. "PT"
	PubliclyVisible bool   `bson:"publiclyVisible" json:"publiclyVisible"` // whether the portal lists this business
	SlotStepMinutes int    `bson:"slotStepMinutes" json:"slotStepMinutes"` // candidate step; 0 means the platform default
	ReminderLeadMin int    `bson:"reminderLeadMin" json:"reminderLeadMin"` // minutes before an appointment to send reminders
}

// Business is the tenant root. All staff, services, clients and appointments
// are scoped by its ID.
type Business struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	Slug         string           `bson:"slug" json:"slug"` // URL-safe unique handle for the public portal
	OwnerEmail   string           `bson:"ownerEmail" json:"ownerEmail"`
	PasswordHash string           `bson:"passwordHash" json:"-"`
	Settings     BusinessSettings `bson:"settings" json:"settings"`
	CreatedAt    time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// BusinessRegistration is the signup payload.
type BusinessRegistration struct {
	Name     string           `json:"name" binding:"required"`
	Slug     string           `json:"slug" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=8"`
	Settings BusinessSettings `json:"settings"`
}
