package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"koobings/models"
	"koobings/utils"

	"github.com/google/uuid"
)

// Sessions expire on their own; every write refreshes the window.
const sessionTTL = 15 * time.Minute

// InitiateSession creates a new booking session for a business and service,
// assigns it a unique ID and stores it in Redis.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, businessID, serviceID string) (*models.BookingSession, error) {
	if _, err := s.BusinessRepo.GetByID(ctx, businessID); err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	svc, err := s.ServiceRepo.GetByID(ctx, businessID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("service %s is not bookable", serviceID)
	}

	session := &models.BookingSession{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ServiceID:  serviceID,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession records the customer's staff and date choice and computes the
// availability for that combination, caching it on the session.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID, staffID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	avail, err := s.Engine.GetDaySlots(ctx, session.BusinessID, staffID, session.ServiceID, date, 0)
	if err != nil {
		return nil, err
	}

	session.StaffID = staffID
	session.Date = date
	session.Availability = avail
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession drops the session from the cache. Missing sessions are fine;
// expiry may have beaten us to it.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func sessionKey(id string) string {
	return "booking:session:" + id
}
