package business

import (
	"context"
	"testing"

	"koobings/config"
	"koobings/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type memoryBusinessRepo struct {
	byID map[string]*models.Business
}

func newMemoryBusinessRepo() *memoryBusinessRepo {
	return &memoryBusinessRepo{byID: make(map[string]*models.Business)}
}

func (m *memoryBusinessRepo) Create(ctx context.Context, b *models.Business) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	m.byID[b.ID] = b
	return nil
}

func (m *memoryBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	if b, ok := m.byID[id]; ok {
		return b, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	for _, b := range m.byID {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryBusinessRepo) GetByEmail(ctx context.Context, email string) (*models.Business, error) {
	for _, b := range m.byID {
		if b.OwnerEmail == email {
			return b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryBusinessRepo) UpdateSettings(ctx context.Context, id string, settings models.BusinessSettings) error {
	b, ok := m.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Settings = settings
	return nil
}

func (m *memoryBusinessRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestBusinessService() (*DefaultBusinessService, *memoryBusinessRepo) {
	repo := newMemoryBusinessRepo()
	return &DefaultBusinessService{Repo: repo}, repo
}

func TestRegisterNormalizesSlugAndEmail(t *testing.T) {
	svc, _ := newTestBusinessService()

	biz, err := svc.Register(context.Background(), models.BusinessRegistration{
		Name:     "Corte & Cor",
		Slug:     "  Corte-e-Cor  ",
		Email:    "Ana@Example.COM",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "corte-e-cor", biz.Slug)
	assert.Equal(t, "ana@example.com", biz.OwnerEmail)
	assert.NotEmpty(t, biz.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(biz.PasswordHash), []byte("supersecret")))
}

func TestRegisterRejectsBadSlugs(t *testing.T) {
	svc, _ := newTestBusinessService()

	for _, slug := range []string{"", "café", "has space", "trailing-", "-leading", "double--hyphen"} {
		_, err := svc.Register(context.Background(), models.BusinessRegistration{
			Name:     "X",
			Slug:     slug,
			Email:    "x@example.com",
			Password: "supersecret",
		})
		assert.Error(t, err, "slug %q should be rejected", slug)
	}
}

func TestRegisterDuplicateSlug(t *testing.T) {
	svc, _ := newTestBusinessService()

	reg := models.BusinessRegistration{Name: "A", Slug: "corte", Email: "a@example.com", Password: "supersecret"}
	_, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)

	reg.Email = "b@example.com"
	_, err = svc.Register(context.Background(), reg)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc, _ := newTestBusinessService()

	_, err := svc.Register(context.Background(), models.BusinessRegistration{
		Name: "A", Slug: "corte", Email: "a@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := svc.Authenticate(context.Background(), "A@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "corte", resp.Business.Slug)

	// Wrong password and unknown email produce the same generic error.
	_, errPass := svc.Authenticate(context.Background(), "a@example.com", "wrong")
	_, errMail := svc.Authenticate(context.Background(), "nobody@example.com", "supersecret")
	require.Error(t, errPass)
	require.Error(t, errMail)
	assert.Equal(t, errPass.Error(), errMail.Error())
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc, repo := newTestBusinessService()
	biz := &models.Business{Slug: "corte"}
	require.NoError(t, repo.Create(context.Background(), biz))

	_, err := svc.UpdateSettings(context.Background(), biz.ID, models.BusinessSettings{Timezone: "Mars/Olympus"})
	assert.Error(t, err)

	_, err = svc.UpdateSettings(context.Background(), biz.ID, models.BusinessSettings{SlotStepMinutes: -5})
	assert.Error(t, err)

	updated, err := svc.UpdateSettings(context.Background(), biz.ID, models.BusinessSettings{
		Timezone:        "Europe/Lisbon",
		SlotStepMinutes: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Settings.SlotStepMinutes)
}
