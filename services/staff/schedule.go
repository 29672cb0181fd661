package staff

import (
	"context"
	"fmt"
	"time"

	"koobings/models"
	"koobings/services/scheduling"
)

// SetSchedule validates and persists the canonical weekly schedule.
// Validation goes through the scheduling accessor so the stored shape is
// the only shape the system ever reads.
func (s *DefaultStaffService) SetSchedule(ctx context.Context, businessID, staffID string, schedule map[string]models.DaySchedule) error {
	if _, err := s.Repo.GetByID(ctx, businessID, staffID); err != nil {
		return fmt.Errorf("staff not found: %w", err)
	}
	if err := scheduling.ValidateSchedule(schedule); err != nil {
		return err
	}
	return s.Repo.SetAvailability(ctx, &models.StaffAvailability{
		StaffID:  staffID,
		Schedule: schedule,
	})
}

func (s *DefaultStaffService) GetSchedule(ctx context.Context, businessID, staffID string) (*models.StaffAvailability, error) {
	if _, err := s.Repo.GetByID(ctx, businessID, staffID); err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}
	av, err := s.Repo.GetAvailability(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if av == nil {
		av = &models.StaffAvailability{StaffID: staffID, Schedule: map[string]models.DaySchedule{}}
	}
	return av, nil
}

func (s *DefaultStaffService) AddUnavailability(ctx context.Context, businessID string, u *models.StaffUnavailability) (*models.StaffUnavailability, error) {
	if _, err := s.Repo.GetByID(ctx, businessID, u.StaffID); err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}
	if !u.Start.Before(u.End) {
		return nil, fmt.Errorf("unavailability start must be before end")
	}
	if err := s.Repo.AddUnavailability(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to add unavailability: %w", err)
	}
	return u, nil
}

func (s *DefaultStaffService) ListUnavailability(ctx context.Context, businessID, staffID string, from, to time.Time) ([]models.StaffUnavailability, error) {
	if _, err := s.Repo.GetByID(ctx, businessID, staffID); err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}
	return s.Repo.ListUnavailability(ctx, staffID, from, to)
}

func (s *DefaultStaffService) RemoveUnavailability(ctx context.Context, businessID, staffID, id string) error {
	if _, err := s.Repo.GetByID(ctx, businessID, staffID); err != nil {
		return fmt.Errorf("staff not found: %w", err)
	}
	return s.Repo.RemoveUnavailability(ctx, staffID, id)
}
