package booking

import (
	"testing"

	"hudumahub/models"
)

func TestValidateQuotationItems(t *testing.T) {
	valid := []models.QuotationItem{
		{Description: "Labour", Quantity: 2, UnitPrice: 500},
		{Description: "Materials", Quantity: 1, UnitPrice: 1000},
	}
	if err := ValidateQuotationItems(valid); err != nil {
		t.Fatalf("valid items rejected: %v", err)
	}

	if err := ValidateQuotationItems(nil); err == nil {
		t.Error("empty item list should be rejected")
	}
	if err := ValidateQuotationItems([]models.QuotationItem{
		{Description: "  ", Quantity: 1, UnitPrice: 100},
	}); err == nil {
		t.Error("blank description should be rejected")
	}
	if err := ValidateQuotationItems([]models.QuotationItem{
		{Description: "Labour", Quantity: 0, UnitPrice: 100},
	}); err == nil {
		t.Error("zero quantity should be rejected")
	}
	if err := ValidateQuotationItems([]models.QuotationItem{
		{Description: "Labour", Quantity: 1, UnitPrice: -1},
	}); err == nil {
		t.Error("negative unit price should be rejected")
	}
}

func TestQuotationTotal(t *testing.T) {
	items := []models.QuotationItem{
		{Description: "Labour", Quantity: 2, UnitPrice: 500},
		{Description: "Materials", Quantity: 1, UnitPrice: 1000},
	}
	if got := QuotationTotal(items); got != 2000 {
		t.Errorf("QuotationTotal = %.2f, want 2000", got)
	}
	if got := QuotationTotal(nil); got != 0 {
		t.Errorf("QuotationTotal(nil) = %.2f, want 0", got)
	}
}

func TestCanTransitionQuotation(t *testing.T) {
	cases := []struct {
		from, to models.QuotationStatus
		want     bool
	}{
		{models.QuotationDraft, models.QuotationSent, true},
		{models.QuotationDraft, models.QuotationAccepted, false},
		{models.QuotationSent, models.QuotationAccepted, true},
		{models.QuotationSent, models.QuotationDeclined, true},
		{models.QuotationAccepted, models.QuotationDeclined, false},
		{models.QuotationDeclined, models.QuotationSent, false},
		{models.QuotationDeclined, models.QuotationAccepted, false},
	}
	for _, c := range cases {
		if got := CanTransitionQuotation(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionQuotation(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
