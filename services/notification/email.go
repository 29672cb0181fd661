package notification

import (
	"fmt"
	"time"

	"koobings/config"
	"koobings/models"
	"koobings/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailNotificationService sends email over SMTP via gomail.
type EmailNotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotificationService builds a sender from the loaded app config.
func NewEmailNotificationService() *EmailNotificationService {
	cfg := config.AppConfig
	return &EmailNotificationService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (s *EmailNotificationService) SendBookingConfirmed(appt *models.Appointment, client *models.Client, serviceName, businessName string) error {
	subject := fmt.Sprintf("Your booking at %s is confirmed", businessName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s is confirmed.\n\nSee you soon,\n%s",
		client.Name, serviceName, appt.ScheduledFor.Format("Monday, 2 January 2006 at 15:04"), businessName,
	)
	return s.send(client.Email, subject, body)
}

func (s *EmailNotificationService) SendBookingCancelled(appt *models.Appointment, client *models.Client, serviceName, businessName string) error {
	subject := fmt.Sprintf("Your booking at %s was cancelled", businessName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s has been cancelled.\n\nRegards,\n%s",
		client.Name, serviceName, appt.ScheduledFor.Format("Monday, 2 January 2006 at 15:04"), businessName,
	)
	return s.send(client.Email, subject, body)
}

func (s *EmailNotificationService) SendReminder(payload *models.ReminderPayload) error {
	when := payload.FireDate
	if t, err := time.Parse(time.RFC3339, payload.FireDate); err == nil {
		when = t.Format("Monday, 2 January 2006 at 15:04")
	}
	subject := fmt.Sprintf("Reminder: %s on %s", payload.ServiceName, when)
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your upcoming %s with %s on %s.\n",
		payload.ClientName, payload.ServiceName, payload.StaffName, when,
	)
	return s.send(payload.ClientEmail, subject, body)
}

func (s *EmailNotificationService) send(to, subject, body string) error {
	if to == "" {
		utils.GetLogger().Debug("Skipping email, recipient has no address", zap.String("subject", subject))
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
