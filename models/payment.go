package models

// PaymentIntentResult is returned to the client after a Stripe PaymentIntent
// has been created for a booking fee or invoice.
type PaymentIntentResult struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// EarningsSummary aggregates a provider's settled completed jobs.
type EarningsSummary struct {
	JobCount    int     `json:"jobCount"`
	GrossValue  float64 `json:"grossValue"`
	Commission  float64 `json:"commission"`
	NetEarnings float64 `json:"netEarnings"`
}
