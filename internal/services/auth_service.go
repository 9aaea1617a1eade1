package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the work factor the accounts were seeded with.
const bcryptCost = 12

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a CODER account. The role cannot be chosen by the
// caller; privileged accounts only exist through seeding.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(fullName) < 2 || len(fullName) > 120 {
		return nil, errors.New("fullName must be 2-120 characters")
	}
	if email == "" || !strings.Contains(email, "@") || len(email) > 160 {
		return nil, errors.New("a valid email is required")
	}
	if len(req.Password) < 8 || len(req.Password) > 72 {
		return nil, errors.New("password must be 8-72 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCoder,
		IsActive:     true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(&user)
}

// Login verifies credentials before the active flag, so a wrong password
// on a disabled account still reads as bad credentials.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return s.buildAuthResponse(&user)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:        *user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWTExpiresIn.String(),
	}, nil
}

func (s *AuthService) signAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
