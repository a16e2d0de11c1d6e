package provider

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

const tokenTTL = 72 * time.Hour

// Register creates a provider account and signs them in.
func (s *DefaultProviderService) Register(input RegistrationInput) (*AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if input.HourlyRate < 0 {
		return nil, fmt.Errorf("hourly rate must not be negative")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a provider with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := &models.ServiceProvider{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		ServiceType:  input.ServiceType,
		City:         input.City,
		HourlyRate:   input.HourlyRate,
		Bio:          input.Bio,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	return s.openSession(p)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProviderService) Authenticate(email, password string) (*AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.openSession(p)
}

func (s *DefaultProviderService) openSession(p *models.ServiceProvider) (*AuthSession, error) {
	token, err := utils.GenerateToken(p.ID, p.Email, models.RoleProvider, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	p.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}

	cacheKey := utils.AuthCachePrefix + p.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, p.TokenHash, utils.AuthCacheTTL).Err()

	return &AuthSession{Token: token, Provider: *p}, nil
}

// GetProviderByID retrieves a provider by ID.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.ServiceProvider, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile modifies mutable profile fields.
func (s *DefaultProviderService) UpdateProfile(provider models.ServiceProvider) (*models.ServiceProvider, error) {
	existing, err := s.Repo.GetByID(provider.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = provider.Name
	existing.Phone = provider.Phone
	existing.ServiceType = provider.ServiceType
	existing.City = provider.City
	existing.Bio = provider.Bio
	if provider.HourlyRate > 0 {
		existing.HourlyRate = provider.HourlyRate
	}
	if provider.Location.HasCoordinates() {
		existing.Location = provider.Location
	}
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetAutoAccept toggles AI screening of incoming quote requests.
func (s *DefaultProviderService) SetAutoAccept(providerID string, enabled bool) (*models.ServiceProvider, error) {
	p, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	p.AIAutoAcceptEnabled = enabled
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateFCMToken records the device token used for push delivery.
func (s *DefaultProviderService) UpdateFCMToken(providerID, token string) error {
	p, err := s.Repo.GetByID(providerID)
	if err != nil {
		return err
	}
	p.FCMToken = token
	return s.Repo.Update(p)
}
