package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"koobings/models"
	"koobings/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

func (s *DefaultStaffService) Create(ctx context.Context, st *models.Staff, password string) (*models.Staff, error) {
	if st.BusinessID == "" {
		return nil, fmt.Errorf("staff must belong to a business")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	st.Email = strings.ToLower(st.Email)
	st.PasswordHash = string(hash)

	if err := s.Repo.Create(ctx, st); err != nil {
		utils.GetLogger().Error("Create: failed to create staff", zap.Error(err))
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return st, nil
}

func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	st, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Authenticate: failed to fetch staff", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(st.ID, st.BusinessID, utils.TokenKindStaff, st.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, Staff: st}, nil
}

func (s *DefaultStaffService) GetByID(ctx context.Context, businessID, id string) (*models.Staff, error) {
	st, err := s.Repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}
	return st, nil
}

func (s *DefaultStaffService) ListByBusiness(ctx context.Context, businessID string) ([]models.Staff, error) {
	return s.Repo.ListByBusiness(ctx, businessID)
}

func (s *DefaultStaffService) Update(ctx context.Context, st *models.Staff) (*models.Staff, error) {
	existing, err := s.Repo.GetByID(ctx, st.BusinessID, st.ID)
	if err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}
	// Credentials are managed separately; keep them.
	st.PasswordHash = existing.PasswordHash
	st.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}
	return st, nil
}

func (s *DefaultStaffService) Delete(ctx context.Context, businessID, id string) error {
	if err := s.Repo.Delete(ctx, businessID, id); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}
