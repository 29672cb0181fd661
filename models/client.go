package models

import "time"

// Client is an end customer of a Business.
type Client struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"` // stored in E.164
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
