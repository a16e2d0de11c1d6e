package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hudumahub/models"
	"hudumahub/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued auth tokens.
const tokenTTL = 72 * time.Hour

// Register creates a customer account and signs them in.
func (s *DefaultUserService) Register(name, email, password, phone string) (*AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("name, email and a password of at least 8 characters are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	return s.openSession(u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.openSession(u)
}

// openSession issues a token, stores its hash for middleware validation and
// primes the auth cache.
func (s *DefaultUserService) openSession(u *models.User) (*AuthSession, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, models.RoleUser, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	u.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}

	cacheKey := utils.AuthCachePrefix + u.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, u.TokenHash, utils.AuthCacheTTL).Err()

	return &AuthSession{Token: token, User: *u}, nil
}

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile modifies mutable profile fields.
func (s *DefaultUserService) UpdateProfile(user models.User) (*models.User, error) {
	existing, err := s.Repo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = user.Name
	existing.Phone = user.Phone
	if user.Location.HasCoordinates() {
		existing.Location = user.Location
	}
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateFCMToken records the device token used for push delivery.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	u.FCMToken = token
	return s.Repo.Update(u)
}
