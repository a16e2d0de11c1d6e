package providerRepo

import "hudumahub/models"

// ProviderSearchCriteria narrows a provider search before distance ranking.
type ProviderSearchCriteria struct {
	ServiceType string
	City        string
}

// ProviderRepository defines methods for service provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.ServiceProvider, error)
	// GetByEmail retrieves a provider by its email address, or nil if absent.
	GetByEmail(email string) (*models.ServiceProvider, error)
	// Create inserts a new provider record.
	Create(provider *models.ServiceProvider) error
	// Update modifies an existing provider record.
	Update(provider *models.ServiceProvider) error
	// Search retrieves providers matching the given criteria.
	Search(criteria ProviderSearchCriteria) ([]models.ServiceProvider, error)
}
