package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/lshigami/StudyForge/config"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/model"
	"github.com/lshigami/StudyForge/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email is already registered")

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(userID uint, req dto.ProfileRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, profileRepo: profileRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	var userResp dto.UserResponse
	copier.Copy(&userResp, user)
	return &dto.LoginResponse{Token: token, User: userResp}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

func (s *authService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// An empty profile is a valid state for a new user.
			return &dto.ProfileResponse{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *authService) UpdateProfile(userID uint, req dto.ProfileRequest) (*dto.ProfileResponse, error) {
	profile := model.Profile{
		UserID:         userID,
		EducationLevel: req.EducationLevel,
		Subjects:       req.Subjects,
		StudyGoal:      req.StudyGoal,
	}
	if err := s.profileRepo.Upsert(&profile); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: upsert failed")
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, &profile)
	return &resp, nil
}
