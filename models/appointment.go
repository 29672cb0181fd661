package models

import "time"

// Appointment statuses. ACCEPTED is accepted on input for compatibility with
// legacy records but is normalized to CONFIRMED at write time, so stored
// documents only ever carry the canonical set.
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
	AppointmentNoShow    = "NO_SHOW"
	AppointmentRejected  = "REJECTED"
	AppointmentAccepted  = "ACCEPTED" // legacy alias of CONFIRMED
)

// BlockingStatuses are the statuses that occupy a staff member's time for
// conflict detection.
var BlockingStatuses = []string{AppointmentPending, AppointmentConfirmed}

// Appointment is a booked occurrence of a Service with a staff member.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	BusinessID   string    `bson:"businessId" json:"businessId"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	StaffID      string    `bson:"staffId" json:"staffId"`
	ServiceID    string    `bson:"serviceId" json:"serviceId"`
	ScheduledFor time.Time `bson:"scheduledFor" json:"scheduledFor"`
	Duration     int       `bson:"duration" json:"duration"` // minutes, copied from the service at creation
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsBlocking reports whether the appointment occupies its staff member's
// time for conflict purposes.
func (a Appointment) IsBlocking() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// End returns the instant the appointment finishes.
func (a Appointment) End() time.Time {
	return a.ScheduledFor.Add(time.Duration(a.Duration) * time.Minute)
}
