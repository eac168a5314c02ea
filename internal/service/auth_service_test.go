package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/StudyForge/config"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB, *config.Config) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	svc := NewAuthService(repository.NewUserRepository(db), repository.NewProfileRepository(db), cfg)
	return svc, db, cfg
}

func TestAuthRegisterAndLogin(t *testing.T) {
	svc, _, cfg := newAuthService(t)

	user, err := svc.Register(dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	require.NotZero(t, user.ID)

	resp, err := svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Name: "B", Email: "dup@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "a@example.com", Password: "wrong-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthProfileLifecycle(t *testing.T) {
	svc, _, _ := newAuthService(t)

	user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "p@example.com", Password: "password1"})
	require.NoError(t, err)

	empty, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.EducationLevel)

	updated, err := svc.UpdateProfile(user.ID, dto.ProfileRequest{
		EducationLevel: "undergraduate",
		Subjects:       "math, physics",
		StudyGoal:      "exam prep",
	})
	require.NoError(t, err)
	assert.Equal(t, "undergraduate", updated.EducationLevel)

	loaded, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "exam prep", loaded.StudyGoal)
}
