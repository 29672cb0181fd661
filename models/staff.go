package models

import "time"

// Staff roles.
const (
	StaffRoleStandard = "STANDARD"
	StaffRoleAdmin    = "ADMIN"
)

// Staff is an employee of a Business who can be assigned appointments.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	BusinessID   string    `bson:"businessId" json:"businessId"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StaffUnavailability is an ad-hoc absence period (vacation, sick leave)
// that removes the staff member from booking for [Start, End).
type StaffUnavailability struct {
	ID        string    `bson:"id" json:"id"`
	StaffID   string    `bson:"staffId" json:"staffId"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
