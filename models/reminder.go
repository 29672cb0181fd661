package models

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	BusinessID    string `json:"businessId"`
	ClientEmail   string `json:"clientEmail"`
	ClientName    string `json:"clientName"`
	ServiceName   string `json:"serviceName"`
	StaffName     string `json:"staffName"`
	FireDate      string `json:"fireDate"` // RFC3339 of the appointment start
}
