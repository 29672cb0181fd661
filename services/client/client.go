package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

func (s *DefaultClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	if c.BusinessID == "" {
		return nil, fmt.Errorf("client must belong to a business")
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("client name is required")
	}
	normalized, err := s.normalizePhone(ctx, c.BusinessID, c.Phone)
	if err != nil {
		return nil, err
	}
	c.Phone = normalized
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func (s *DefaultClientService) GetByID(ctx context.Context, businessID, id string) (*models.Client, error) {
	c, err := s.Repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	return c, nil
}

// FindOrCreate resolves the client a public booking belongs to. Matching is
// by email within the business; a miss creates a fresh record.
func (s *DefaultClientService) FindOrCreate(ctx context.Context, businessID, name, email, phone string) (*models.Client, error) {
	if email != "" {
		existing, err := s.Repo.FindByEmail(ctx, businessID, email)
		if err == nil {
			return existing, nil
		}
	}
	return s.Create(ctx, &models.Client{
		BusinessID: businessID,
		Name:       name,
		Email:      email,
		Phone:      phone,
	})
}

func (s *DefaultClientService) ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error) {
	return s.Repo.ListByBusiness(ctx, businessID)
}

func (s *DefaultClientService) Update(ctx context.Context, c *models.Client) (*models.Client, error) {
	existing, err := s.Repo.GetByID(ctx, c.BusinessID, c.ID)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	normalized, err := s.normalizePhone(ctx, c.BusinessID, c.Phone)
	if err != nil {
		return nil, err
	}
	c.Phone = normalized
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return c, nil
}

func (s *DefaultClientService) Delete(ctx context.Context, businessID, id string) error {
	if err := s.Repo.Delete(ctx, businessID, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// normalizePhone parses the raw number against the business's default region
// and returns it in E.164. Empty input is allowed and passes through.
func (s *DefaultClientService) normalizePhone(ctx context.Context, businessID, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	region := "PT"
	if biz, err := s.BusinessRepo.GetByID(ctx, businessID); err == nil && biz.Settings.PhoneRegion != "" {
		region = biz.Settings.PhoneRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number for region %s", region)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
