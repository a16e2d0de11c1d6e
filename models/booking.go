package models

import (
	"fmt"
	"time"
)

// BookingStatus is the master state of a booking. Exactly one holds at any time.
type BookingStatus string

const (
	StatusPendingProviderConfirmation BookingStatus = "PendingProviderConfirmation"
	StatusPendingCustomerConfirmation BookingStatus = "PendingCustomerConfirmation"
	StatusConfirmed                   BookingStatus = "Confirmed"
	StatusInProgress                  BookingStatus = "InProgress"
	StatusCompleted                   BookingStatus = "Completed"
	StatusCancelled                   BookingStatus = "Cancelled"
)

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPendingProviderConfirmation, StatusPendingCustomerConfirmation,
		StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// BookingType discriminates how a booking is priced.
type BookingType string

const (
	// BookingTypeInstant is pre-priced at the provider's posted hourly rate.
	BookingTypeInstant BookingType = "instant"
	// BookingTypeQuote requires an explicit quotation before payment.
	BookingTypeQuote BookingType = "quote"
)

// ParseBookingType validates a raw booking type string.
func ParseBookingType(s string) (BookingType, error) {
	switch BookingType(s) {
	case BookingTypeInstant, BookingTypeQuote:
		return BookingType(s), nil
	default:
		return "", fmt.Errorf("unknown booking type: %s", s)
	}
}

// CustomerSnapshot is the customer party embedded in a booking at creation time.
type CustomerSnapshot struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// ProviderSnapshot is the provider party embedded in a booking at creation time.
type ProviderSnapshot struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	ServiceType string  `bson:"service_type" json:"serviceType"`
	City        string  `bson:"city" json:"city"`
	HourlyRate  float64 `bson:"hourly_rate" json:"hourlyRate"`
}

// Message is one entry in a booking's append-only chat history.
type Message struct {
	SenderID string    `bson:"sender_id" json:"senderId"`
	Text     string    `bson:"text" json:"text"`
	SentAt   time.Time `bson:"sent_at" json:"sentAt"`
}

// Review is the customer's one-time rating of a completed booking.
type Review struct {
	Rating    int       `bson:"rating" json:"rating"`
	Text      string    `bson:"text" json:"text"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Booking is one engagement between a customer and a provider.
//
// Quotation is the tagged payload for quote-type bookings: it is non-nil iff
// BookingType == BookingTypeQuote. Instant bookings have no quotation and are
// priced off the provider's hourly rate.
type Booking struct {
	ID             string           `bson:"id" json:"id"`
	Customer       CustomerSnapshot `bson:"customer" json:"customer"`
	Provider       ProviderSnapshot `bson:"provider" json:"provider"`
	BookingDate    time.Time        `bson:"booking_date" json:"bookingDate"`
	ServiceDate    time.Time        `bson:"service_date" json:"serviceDate"`
	DueDate        *time.Time       `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	PaymentDate    *time.Time       `bson:"payment_date,omitempty" json:"paymentDate,omitempty"`
	Status         BookingStatus    `bson:"status" json:"status"`
	BookingType    BookingType      `bson:"booking_type" json:"bookingType"`
	OTP            string           `bson:"otp" json:"otp"`
	Quotation      *Quotation       `bson:"quotation,omitempty" json:"quotation,omitempty"`
	RequestDetails string           `bson:"request_details,omitempty" json:"requestDetails,omitempty"`
	ChatHistory    []Message        `bson:"chat_history,omitempty" json:"chatHistory,omitempty"`
	Review         *Review          `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt      time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time        `bson:"updated_at" json:"updatedAt"`
}

// IsQuote reports whether the booking is custom-priced.
func (b *Booking) IsQuote() bool {
	return b.BookingType == BookingTypeQuote
}

// JobValue is the monetary value of the engagement: the accepted quotation
// total for quote bookings, the provider's hourly rate for instant bookings.
func (b *Booking) JobValue() float64 {
	if b.IsQuote() {
		if b.Quotation == nil {
			return 0
		}
		return b.Quotation.TotalAmount
	}
	return b.Provider.HourlyRate
}

// Paid reports whether the invoice for this booking has been settled.
func (b *Booking) Paid() bool {
	return b.PaymentDate != nil
}
