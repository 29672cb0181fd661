// Package notification delivers transactional email to clients.
package notification

import "koobings/models"

// NotificationService sends appointment lifecycle email. Implementations must
// be safe for concurrent use; callers fire and forget from request handlers
// and from the background worker.
type NotificationService interface {
	SendBookingConfirmed(appt *models.Appointment, client *models.Client, serviceName, businessName string) error
	SendBookingCancelled(appt *models.Appointment, client *models.Client, serviceName, businessName string) error
	SendReminder(payload *models.ReminderPayload) error
}
