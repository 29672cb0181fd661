package business

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"koobings/models"
	"koobings/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrSlugTaken = errors.New("slug already in use")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const tokenDuration = 24 * time.Hour

func (s *DefaultBusinessService) Register(ctx context.Context, reg models.BusinessRegistration) (*models.Business, error) {
	slug := strings.ToLower(strings.TrimSpace(reg.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug %q: lowercase letters, digits and hyphens only", reg.Slug)
	}

	if existing, err := s.Repo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, ErrSlugTaken
	} else if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	biz := &models.Business{
		Name:         reg.Name,
		Slug:         slug,
		OwnerEmail:   strings.ToLower(reg.Email),
		PasswordHash: string(hash),
		Settings:     reg.Settings,
	}
	if err := s.Repo.Create(ctx, biz); err != nil {
		utils.GetLogger().Error("Register: failed to create business", zap.Error(err))
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return biz, nil
}

func (s *DefaultBusinessService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	biz, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Authenticate: failed to fetch business", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(biz.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(biz.ID, biz.ID, utils.TokenKindBusiness, models.StaffRoleAdmin, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, Business: biz}, nil
}

func (s *DefaultBusinessService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	biz, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	return biz, nil
}

func (s *DefaultBusinessService) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	biz, err := s.Repo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	return biz, nil
}

func (s *DefaultBusinessService) UpdateSettings(ctx context.Context, id string, settings models.BusinessSettings) (*models.Business, error) {
	if settings.Timezone != "" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q", settings.Timezone)
		}
	}
	if settings.SlotStepMinutes < 0 {
		return nil, fmt.Errorf("slot step must not be negative")
	}
	if err := s.Repo.UpdateSettings(ctx, id, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}
