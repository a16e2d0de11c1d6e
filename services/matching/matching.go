package matching

import (
	"math"
	"sort"

	providerRepo "hudumahub/database/repository/provider"
	"hudumahub/models"
)

// MatchingService finds providers for a customer's search, ranked by
// proximity to the search origin.
type MatchingService interface {
	NearbyProviders(origin models.GeoPoint, serviceType, city string) ([]models.ProviderMatch, error)
}

// DefaultMatchingService implements MatchingService.
type DefaultMatchingService struct {
	ProviderRepo providerRepo.ProviderRepository
}

// NearbyProviders retrieves matching providers and sorts them by haversine
// distance from the origin, nearest first. Providers without coordinates
// (and all providers, when the origin has none) carry no distance and sort
// last in insertion order.
func (s *DefaultMatchingService) NearbyProviders(origin models.GeoPoint, serviceType, city string) ([]models.ProviderMatch, error) {
	providers, err := s.ProviderRepo.Search(providerRepo.ProviderSearchCriteria{
		ServiceType: serviceType,
		City:        city,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]models.ProviderMatch, 0, len(providers))
	for _, p := range providers {
		m := models.ProviderMatch{Provider: p}
		if d := HaversineKm(origin, p.Location); !math.IsInf(d, 1) {
			m.DistanceKm = &d
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matchDistance(matches[i]) < matchDistance(matches[j])
	})
	return matches, nil
}

func matchDistance(m models.ProviderMatch) float64 {
	if m.DistanceKm == nil {
		return math.Inf(1)
	}
	return *m.DistanceKm
}
