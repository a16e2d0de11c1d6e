package provider

import (
	providerRepo "hudumahub/database/repository/provider"
	"hudumahub/models"
)

// AuthSession is returned on successful registration or sign-in.
type AuthSession struct {
	Token    string                 `json:"token"`
	Provider models.ServiceProvider `json:"provider"`
}

// RegistrationInput captures the fields a new provider must supply.
type RegistrationInput struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Phone       string  `json:"phone"`
	ServiceType string  `json:"serviceType" binding:"required"`
	City        string  `json:"city" binding:"required"`
	HourlyRate  float64 `json:"hourlyRate"`
	Bio         string  `json:"bio"`
}

// ProviderService defines provider account operations.
type ProviderService interface {
	Register(input RegistrationInput) (*AuthSession, error)
	Authenticate(email, password string) (*AuthSession, error)
	GetProviderByID(id string) (*models.ServiceProvider, error)
	UpdateProfile(provider models.ServiceProvider) (*models.ServiceProvider, error)
	SetAutoAccept(providerID string, enabled bool) (*models.ServiceProvider, error)
	UpdateFCMToken(providerID, token string) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
