package booking

import (
	"context"
	"time"

	"koobings/config"
	"koobings/models"
	"koobings/services/tasks"
	"koobings/utils"

	"go.uber.org/zap"
)

// enqueueReminder schedules the reminder email for a confirmed appointment.
// The lead time comes from the business settings, falling back to the
// platform default. Appointments too close to fire in time get no reminder.
func (s *DefaultBookingService) enqueueReminder(ctx context.Context, appt *models.Appointment, biz *models.Business, cli *models.Client, serviceName string) {
	if s.AsynqClient == nil {
		return
	}
	logger := utils.GetLogger()

	lead := biz.Settings.ReminderLeadMin
	if lead <= 0 {
		lead = config.AppConfig.ReminderLeadMin
	}
	fireAt := appt.ScheduledFor.Add(-time.Duration(lead) * time.Minute)
	if !fireAt.After(time.Now()) {
		logger.Debug("Skipping reminder, fire time already passed",
			zap.String("appointmentId", appt.ID))
		return
	}

	staffName := ""
	if st, err := s.StaffRepo.GetByID(ctx, appt.BusinessID, appt.StaffID); err == nil {
		staffName = st.Name
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		BusinessID:    appt.BusinessID,
		ClientEmail:   cli.Email,
		ClientName:    cli.Name,
		ServiceName:   serviceName,
		StaffName:     staffName,
		FireDate:      appt.ScheduledFor.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Error("Failed to build reminder task",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		logger.Error("Failed to enqueue reminder task",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
