package models

// BookingSession is the transient state of a public-portal booking flow,
// cached in Redis between steps.
type BookingSession struct {
	ID           string           `json:"id"`
	BusinessID   string           `json:"businessId"`
	ServiceID    string           `json:"serviceId"`
	StaffID      string           `json:"staffId,omitempty"` // empty until the customer picks
	Date         string           `json:"date,omitempty"`    // "2006-01-02"
	Availability *DayAvailability `json:"availability,omitempty"`
	ClientName   string           `json:"clientName,omitempty"`
	ClientEmail  string           `json:"clientEmail,omitempty"`
	ClientPhone  string           `json:"clientPhone,omitempty"`
}

// BookingRequestInput is the customer's selection within a session. The
// client fields identify the customer on public confirms; dashboard bookings
// leave them empty and name an existing client instead.
type BookingRequestInput struct {
	StaffID  string `json:"staffId"`
	Date     string `json:"date"`               // "2006-01-02"
	Time     string `json:"time"`               // "HH:mm" candidate start
	Duration int    `json:"duration,omitempty"` // optional override; defaults to the service duration
	Notes    string `json:"notes,omitempty"`

	ClientName  string `json:"clientName,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`
}
