package booking

import "hudumahub/models"

// The platform takes no cut of job values up to the threshold, then 10% of
// everything above it. Values are KES.
const (
	CommissionThreshold = 2500.0
	CommissionRate      = 0.10
)

// Commission returns the platform's cut of a completed job's value.
func Commission(jobValue float64) float64 {
	if jobValue <= CommissionThreshold {
		return 0
	}
	return CommissionRate * (jobValue - CommissionThreshold)
}

// NetEarnings returns the provider's take-home for a completed job.
func NetEarnings(jobValue float64) float64 {
	return jobValue - Commission(jobValue)
}

// SummarizeEarnings aggregates settled bookings into an earnings summary.
// Callers pass only bookings that are completed and paid; quote bookings
// additionally require an accepted quotation, which is enforced here so a
// stray record never inflates earnings.
func SummarizeEarnings(bookings []models.Booking) models.EarningsSummary {
	var summary models.EarningsSummary
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.StatusCompleted || !b.Paid() {
			continue
		}
		if b.IsQuote() && (b.Quotation == nil || b.Quotation.Status != models.QuotationAccepted) {
			continue
		}
		value := b.JobValue()
		summary.JobCount++
		summary.GrossValue += value
		summary.Commission += Commission(value)
		summary.NetEarnings += NetEarnings(value)
	}
	return summary
}
