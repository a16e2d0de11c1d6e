package matching

import (
	"math"
	"testing"

	"hudumahub/models"
)

func TestHaversineKmNairobiMombasa(t *testing.T) {
	nairobi := models.NewGeoPoint(36.8219, -1.2921)
	mombasa := models.NewGeoPoint(39.6682, -4.0435)

	got := HaversineKm(nairobi, mombasa)
	if got < 430 || got > 450 {
		t.Fatalf("HaversineKm(Nairobi, Mombasa) = %.2f km, want roughly 440", got)
	}
}

func TestHaversineKmIdentity(t *testing.T) {
	p := models.NewGeoPoint(36.8219, -1.2921)
	if got := HaversineKm(p, p); got != 0 {
		t.Fatalf("distance to self = %.6f, want 0", got)
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := models.NewGeoPoint(36.8219, -1.2921)
	b := models.NewGeoPoint(39.6682, -4.0435)
	if HaversineKm(a, b) != HaversineKm(b, a) {
		t.Fatal("distance should be symmetric")
	}
}

func TestHaversineKmMissingCoordinates(t *testing.T) {
	p := models.NewGeoPoint(36.8219, -1.2921)
	var empty models.GeoPoint

	if got := HaversineKm(p, empty); !math.IsInf(got, 1) {
		t.Fatalf("distance to empty point = %.2f, want +Inf", got)
	}
	if got := HaversineKm(empty, p); !math.IsInf(got, 1) {
		t.Fatalf("distance from empty point = %.2f, want +Inf", got)
	}
	if got := HaversineKm(empty, empty); !math.IsInf(got, 1) {
		t.Fatalf("distance between empty points = %.2f, want +Inf", got)
	}
}
