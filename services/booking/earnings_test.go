package booking

import (
	"math"
	"testing"
	"time"

	"hudumahub/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCommission(t *testing.T) {
	cases := []struct {
		jobValue float64
		want     float64
	}{
		{0, 0},
		{1000, 0},
		{2500, 0},
		{2501, 0.10},
		{5000, 250},
		{10000, 750},
	}
	for _, c := range cases {
		if got := Commission(c.jobValue); !almostEqual(got, c.want) {
			t.Errorf("Commission(%.2f) = %.2f, want %.2f", c.jobValue, got, c.want)
		}
	}
}

func TestNetEarnings(t *testing.T) {
	if got := NetEarnings(2500); !almostEqual(got, 2500) {
		t.Errorf("NetEarnings(2500) = %.2f, want 2500", got)
	}
	if got := NetEarnings(5000); !almostEqual(got, 4750) {
		t.Errorf("NetEarnings(5000) = %.2f, want 4750", got)
	}
}

func TestSummarizeEarnings(t *testing.T) {
	now := time.Now()
	accepted := models.QuotationAccepted

	bookings := []models.Booking{
		// Settled instant job at hourly rate 3000.
		{
			Status:      models.StatusCompleted,
			BookingType: models.BookingTypeInstant,
			Provider:    models.ProviderSnapshot{HourlyRate: 3000},
			PaymentDate: &now,
		},
		// Settled quote job worth 5000.
		{
			Status:      models.StatusCompleted,
			BookingType: models.BookingTypeQuote,
			Quotation:   &models.Quotation{Status: accepted, TotalAmount: 5000},
			PaymentDate: &now,
		},
		// Completed but unpaid: excluded.
		{
			Status:      models.StatusCompleted,
			BookingType: models.BookingTypeInstant,
			Provider:    models.ProviderSnapshot{HourlyRate: 9999},
		},
		// Cancelled: excluded.
		{
			Status:      models.StatusCancelled,
			BookingType: models.BookingTypeInstant,
			Provider:    models.ProviderSnapshot{HourlyRate: 9999},
			PaymentDate: &now,
		},
		// Quote without accepted quotation: excluded.
		{
			Status:      models.StatusCompleted,
			BookingType: models.BookingTypeQuote,
			Quotation:   &models.Quotation{Status: models.QuotationSent, TotalAmount: 9999},
			PaymentDate: &now,
		},
	}

	summary := SummarizeEarnings(bookings)
	if summary.JobCount != 2 {
		t.Fatalf("JobCount = %d, want 2", summary.JobCount)
	}
	if !almostEqual(summary.GrossValue, 8000) {
		t.Errorf("GrossValue = %.2f, want 8000", summary.GrossValue)
	}
	// 3000 -> 50 commission, 5000 -> 250 commission.
	if !almostEqual(summary.Commission, 300) {
		t.Errorf("Commission = %.2f, want 300", summary.Commission)
	}
	if !almostEqual(summary.NetEarnings, 7700) {
		t.Errorf("NetEarnings = %.2f, want 7700", summary.NetEarnings)
	}
}
