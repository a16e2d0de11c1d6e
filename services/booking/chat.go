package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hudumahub/models"
)

// AppendChatMessage adds one message to the booking's append-only chat
// history and pings the other party.
func (s *DefaultBookingService) AppendChatMessage(ctx context.Context, bookingID, senderID, text string) (*models.Booking, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text must not be empty")
	}

	b, err := s.loadFor(ctx, bookingID, senderID)
	if err != nil {
		return nil, err
	}

	b.ChatHistory = append(b.ChatHistory, models.Message{
		SenderID: senderID,
		Text:     text,
		SentAt:   time.Now(),
	})
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if senderID == b.Customer.ID {
		s.notifyProvider(ctx, b, "chat_message", "New message",
			fmt.Sprintf("%s: %s", b.Customer.Name, text))
	} else {
		s.notifyCustomer(ctx, b, "chat_message", "New message",
			fmt.Sprintf("%s: %s", b.Provider.Name, text))
	}
	return b, nil
}

// AddReview attaches the customer's one-time review to a completed booking
// and folds the rating into the provider's aggregate.
func (s *DefaultBookingService) AddReview(ctx context.Context, bookingID, customerID string, rating int, text string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.loadForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusCompleted {
		return nil, ErrReviewNotAllowed
	}
	if b.Review != nil {
		return nil, ErrAlreadyReviewed
	}

	b.Review = &models.Review{
		Rating:    rating,
		Text:      text,
		AuthorID:  customerID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.updateProviderRating(b.Provider.ID, rating)
	s.notifyProvider(ctx, b, "review_received", "New review",
		fmt.Sprintf("%s rated the job %d/5.", b.Customer.Name, rating))
	return b, nil
}

// updateProviderRating folds a new rating into the provider's running average.
// Best effort: a failed aggregate update never fails the review itself.
func (s *DefaultBookingService) updateProviderRating(providerID string, rating int) {
	p, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return
	}
	total := p.Rating*float64(p.RatingCount) + float64(rating)
	p.RatingCount++
	p.Rating = total / float64(p.RatingCount)
	_ = s.ProviderRepo.Update(p)
}
