package matching

import (
	"testing"

	providerRepo "hudumahub/database/repository/provider"
	"hudumahub/models"
)

type fakeProviderRepo struct {
	providers []models.ServiceProvider
	criteria  providerRepo.ProviderSearchCriteria
}

func (r *fakeProviderRepo) GetByID(string) (*models.ServiceProvider, error)    { return nil, nil }
func (r *fakeProviderRepo) GetByEmail(string) (*models.ServiceProvider, error) { return nil, nil }
func (r *fakeProviderRepo) Create(*models.ServiceProvider) error               { return nil }
func (r *fakeProviderRepo) Update(*models.ServiceProvider) error               { return nil }

func (r *fakeProviderRepo) Search(criteria providerRepo.ProviderSearchCriteria) ([]models.ServiceProvider, error) {
	r.criteria = criteria
	return r.providers, nil
}

func TestNearbyProvidersSortsByDistance(t *testing.T) {
	repo := &fakeProviderRepo{providers: []models.ServiceProvider{
		{ID: "far", Location: models.NewGeoPoint(39.6682, -4.0435)},  // Mombasa
		{ID: "unlocated"},                                            // no coordinates
		{ID: "near", Location: models.NewGeoPoint(36.8219, -1.2921)}, // Nairobi
	}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	origin := models.NewGeoPoint(36.8172, -1.2864) // Nairobi CBD
	matches, err := svc.NearbyProviders(origin, "plumbing", "Nairobi")
	if err != nil {
		t.Fatalf("NearbyProviders failed: %v", err)
	}

	if repo.criteria.ServiceType != "plumbing" || repo.criteria.City != "Nairobi" {
		t.Errorf("search criteria = %+v, want plumbing/Nairobi", repo.criteria)
	}
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}
	if matches[0].Provider.ID != "near" || matches[1].Provider.ID != "far" {
		t.Errorf("order = [%s %s %s], want near first then far", matches[0].Provider.ID, matches[1].Provider.ID, matches[2].Provider.ID)
	}
	if matches[2].Provider.ID != "unlocated" || matches[2].DistanceKm != nil {
		t.Errorf("unlocated provider should sort last with no distance, got %+v", matches[2])
	}
	if matches[0].DistanceKm == nil || *matches[0].DistanceKm > 2 {
		t.Errorf("nearest distance = %v, want under 2 km", matches[0].DistanceKm)
	}
}

func TestNearbyProvidersWithoutOrigin(t *testing.T) {
	repo := &fakeProviderRepo{providers: []models.ServiceProvider{
		{ID: "a", Location: models.NewGeoPoint(36.8219, -1.2921)},
		{ID: "b", Location: models.NewGeoPoint(39.6682, -4.0435)},
	}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	matches, err := svc.NearbyProviders(models.GeoPoint{}, "", "")
	if err != nil {
		t.Fatalf("NearbyProviders failed: %v", err)
	}
	// No origin means no distances; insertion order is preserved.
	if matches[0].Provider.ID != "a" || matches[1].Provider.ID != "b" {
		t.Errorf("order = [%s %s], want insertion order", matches[0].Provider.ID, matches[1].Provider.ID)
	}
	for _, m := range matches {
		if m.DistanceKm != nil {
			t.Errorf("provider %s should carry no distance, got %v", m.Provider.ID, *m.DistanceKm)
		}
	}
}
