package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role allowed past the admin gate.
const RoleAdmin = "admin"

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// AdminStore is the admin persistence the auth flow depends on.
type AdminStore interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

// AuthService handles admin authentication and JWT issuance. Tokens are
// stateless: signature and expiry are all that is checked.
type AuthService struct {
	cfg    *config.Config
	admins AdminStore
	now    func() time.Time
	log    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, admins AdminStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:    cfg,
		admins: admins,
		now:    time.Now,
		log:    log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken signs an admin JWT. It returns the token and its expiry.
func (s *AuthService) GenerateToken(admin *model.Admin) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.JWTExpiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role:     RoleAdmin,
		UserID:   admin.ID,
		Username: admin.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Login verifies an admin's credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if err := s.CheckPassword(admin.PasswordHash, password); err != nil {
		s.log.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, err
	}

	token, expiresAt, err := s.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("admin_id", admin.ID).Msg("Admin logged in")
	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt, Admin: *admin}, nil
}

// GetAdmin returns the admin behind a token.
func (s *AuthService) GetAdmin(ctx context.Context, id int) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

// ChangePassword rotates an admin's password after re-checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int, current, next string) error {
	admin, err := s.GetAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	if err := s.CheckPassword(admin.PasswordHash, current); err != nil {
		return err
	}

	hash, err := s.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.admins.UpdatePassword(ctx, adminID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info().Int("admin_id", adminID).Msg("Admin password changed")
	return nil
}

// CreateAdmin registers a new admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{Username: username, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info().Int("admin_id", admin.ID).Str("username", username).Msg("Admin created")
	return admin, nil
}
