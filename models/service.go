package models

import "time"

// Service is a bookable offering of a Business with a fixed duration.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Price       float64   `bson:"price" json:"price"`
	Currency    string    `bson:"currency,omitempty" json:"currency,omitempty"`
	StaffIDs    []string  `bson:"staffIds,omitempty" json:"staffIds,omitempty"` // empty means any staff can perform it
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AllowsStaff reports whether the service can be performed by the given
// staff member.
func (s Service) AllowsStaff(staffID string) bool {
	if len(s.StaffIDs) == 0 {
		return true
	}
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}
