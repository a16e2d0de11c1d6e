package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	providerRepoPkg "hudumahub/database/repository/provider"
	"hudumahub/models"
)

// --- in-memory fakes ---

type fakeBookingRepo struct {
	store map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{store: map[string]*models.Booking{}}
}

func cloneBooking(b *models.Booking) *models.Booking {
	cp := *b
	if b.Quotation != nil {
		q := *b.Quotation
		cp.Quotation = &q
	}
	if b.Review != nil {
		r := *b.Review
		cp.Review = &r
	}
	cp.ChatHistory = append([]models.Message(nil), b.ChatHistory...)
	return &cp
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.store[b.ID] = cloneBooking(b)
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	return cloneBooking(b), nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	if _, ok := r.store[b.ID]; !ok {
		return fmt.Errorf("booking %s not found", b.ID)
	}
	r.store[b.ID] = cloneBooking(b)
	return nil
}

func (r *fakeBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.store {
		if b.Customer.ID == customerID {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.store {
		if b.Provider.ID == providerID {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListSettledByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.store {
		if b.Provider.ID == providerID && b.Status == models.StatusCompleted && b.Paid() {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.ServiceProvider
}

func (r *fakeProviderRepo) GetByID(id string) (*models.ServiceProvider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProviderRepo) GetByEmail(email string) (*models.ServiceProvider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProviderRepo) Create(p *models.ServiceProvider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *fakeProviderRepo) Update(p *models.ServiceProvider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *fakeProviderRepo) Search(providerRepoPkg.ProviderSearchCriteria) ([]models.ServiceProvider, error) {
	var out []models.ServiceProvider
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

type fakePayments struct {
	calls []struct {
		Amount  float64
		Purpose string
	}
	err error
}

func (p *fakePayments) CreateIntent(_ context.Context, b *models.Booking, amount float64, purpose string) (*models.PaymentIntentResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.calls = append(p.calls, struct {
		Amount  float64
		Purpose string
	}{amount, purpose})
	return &models.PaymentIntentResult{
		IntentID:     "pi_test",
		ClientSecret: "secret_test",
		Amount:       amount,
		Currency:     "kes",
	}, nil
}

type fakeOracle struct {
	decision *models.BookingDecision
	err      error
}

func (o *fakeOracle) Decide(context.Context, *models.Booking) (*models.BookingDecision, error) {
	return o.decision, o.err
}

// --- test fixture ---

const (
	testCustomerID = "customer-1"
	testProviderID = "provider-1"
)

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeProviderRepo, *fakePayments) {
	repo := newFakeBookingRepo()
	users := &fakeUserRepo{users: map[string]*models.User{
		testCustomerID: {ID: testCustomerID, Name: "Wanjiku", Email: "wanjiku@example.com"},
	}}
	providers := &fakeProviderRepo{providers: map[string]*models.ServiceProvider{
		testProviderID: {ID: testProviderID, Name: "Otieno", ServiceType: "plumbing", City: "Nairobi", HourlyRate: 1500},
	}}
	payments := &fakePayments{}

	svc := &DefaultBookingService{
		Repo:         repo,
		UserRepo:     users,
		ProviderRepo: providers,
		Payments:     payments,
	}
	return svc, repo, providers, payments
}

func seedBooking(repo *fakeBookingRepo, bookingType models.BookingType, status models.BookingStatus) *models.Booking {
	b := &models.Booking{
		ID:          "booking-1",
		Customer:    models.CustomerSnapshot{ID: testCustomerID, Name: "Wanjiku"},
		Provider:    models.ProviderSnapshot{ID: testProviderID, Name: "Otieno", HourlyRate: 1500},
		BookingDate: time.Now(),
		ServiceDate: time.Now().Add(24 * time.Hour),
		Status:      status,
		BookingType: bookingType,
		OTP:         "4321",
	}
	if bookingType == models.BookingTypeQuote {
		b.Quotation = &models.Quotation{Status: models.QuotationDraft}
	}
	_ = repo.Create(context.Background(), b)
	return b
}

// --- tests ---

func TestRequestBooking(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	b, err := svc.RequestBooking(ctx, testCustomerID, BookingRequestInput{
		ProviderID:  testProviderID,
		ServiceDate: time.Now().Add(48 * time.Hour),
		BookingType: models.BookingTypeInstant,
	})
	if err != nil {
		t.Fatalf("RequestBooking failed: %v", err)
	}
	if b.Status != models.StatusPendingProviderConfirmation {
		t.Errorf("status = %s, want PendingProviderConfirmation", b.Status)
	}
	if len(b.OTP) != 4 {
		t.Errorf("OTP = %q, want 4 digits", b.OTP)
	}
	if b.Quotation != nil {
		t.Error("instant booking should not carry a quotation")
	}

	q, err := svc.RequestBooking(ctx, testCustomerID, BookingRequestInput{
		ProviderID:  testProviderID,
		ServiceDate: time.Now().Add(48 * time.Hour),
		BookingType: models.BookingTypeQuote,
	})
	if err != nil {
		t.Fatalf("RequestBooking (quote) failed: %v", err)
	}
	if q.Quotation == nil || q.Quotation.Status != models.QuotationDraft {
		t.Error("quote booking should carry a draft quotation")
	}

	if len(repo.store) != 2 {
		t.Errorf("stored bookings = %d, want 2", len(repo.store))
	}
}

func TestRequestBookingRejectsUnknownType(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.RequestBooking(context.Background(), testCustomerID, BookingRequestInput{
		ProviderID:  testProviderID,
		ServiceDate: time.Now(),
		BookingType: "hourly",
	})
	if err == nil {
		t.Fatal("unknown booking type should be rejected")
	}
}

func TestAcceptBooking(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	seedBooking(repo, models.BookingTypeInstant, models.StatusPendingProviderConfirmation)
	b, err := svc.AcceptBooking(ctx, "booking-1", testProviderID)
	if err != nil {
		t.Fatalf("AcceptBooking failed: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Errorf("instant accept: status = %s, want Confirmed", b.Status)
	}

	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)
	b, err = svc.AcceptBooking(ctx, "booking-1", testProviderID)
	if err != nil {
		t.Fatalf("AcceptBooking (quote) failed: %v", err)
	}
	if b.Status != models.StatusPendingCustomerConfirmation {
		t.Errorf("quote accept: status = %s, want PendingCustomerConfirmation", b.Status)
	}
}

func TestAcceptBookingGuards(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeInstant, models.StatusConfirmed)

	if _, err := svc.AcceptBooking(ctx, "booking-1", testProviderID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("accepting a confirmed booking: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.AcceptBooking(ctx, "booking-1", "someone-else"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("accepting as a stranger: err = %v, want ErrNotParticipant", err)
	}
	if _, err := svc.AcceptBooking(ctx, "missing", testProviderID); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("accepting a missing booking: err = %v, want ErrBookingNotFound", err)
	}
}

func TestDeclineBookingOnlyFromPending(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	seedBooking(repo, models.BookingTypeInstant, models.StatusPendingProviderConfirmation)
	b, err := svc.DeclineBooking(ctx, "booking-1", testProviderID)
	if err != nil {
		t.Fatalf("DeclineBooking failed: %v", err)
	}
	if b.Status != models.StatusCancelled {
		t.Errorf("status = %s, want Cancelled", b.Status)
	}

	if _, err := svc.DeclineBooking(ctx, "booking-1", testProviderID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("declining twice: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelBookingGuards(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	seedBooking(repo, models.BookingTypeInstant, models.StatusConfirmed)
	b, err := svc.CancelBooking(ctx, "booking-1", testCustomerID)
	if err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}
	if b.Status != models.StatusCancelled {
		t.Errorf("status = %s, want Cancelled", b.Status)
	}

	for _, status := range []models.BookingStatus{
		models.StatusPendingProviderConfirmation,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		seedBooking(repo, models.BookingTypeInstant, status)
		if _, err := svc.CancelBooking(ctx, "booking-1", testProviderID); !errors.Is(err, ErrNotCancellable) {
			t.Errorf("cancelling from %s: err = %v, want ErrNotCancellable", status, err)
		}
	}
}

func TestStartJobOTPGate(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeInstant, models.StatusConfirmed)

	if _, err := svc.StartJob(ctx, "booking-1", testProviderID, "0000"); !errors.Is(err, ErrOTPMismatch) {
		t.Fatalf("wrong code: err = %v, want ErrOTPMismatch", err)
	}
	stored, _ := repo.GetByID(ctx, "booking-1")
	if stored.Status != models.StatusConfirmed {
		t.Fatalf("failed start must not change status, got %s", stored.Status)
	}

	b, err := svc.StartJob(ctx, "booking-1", testProviderID, "4321")
	if err != nil {
		t.Fatalf("StartJob failed: %v", err)
	}
	if b.Status != models.StatusInProgress {
		t.Errorf("status = %s, want InProgress", b.Status)
	}
}

func TestStartJobRequiresConfirmed(t *testing.T) {
	svc, repo, _, _ := newTestService()
	seedBooking(repo, models.BookingTypeInstant, models.StatusPendingProviderConfirmation)

	if _, err := svc.StartJob(context.Background(), "booking-1", testProviderID, "4321"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("starting unconfirmed booking: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCompleteJobStampsDueDate(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeInstant, models.StatusInProgress)

	b, err := svc.CompleteJob(ctx, "booking-1", testProviderID)
	if err != nil {
		t.Fatalf("CompleteJob failed: %v", err)
	}
	if b.Status != models.StatusCompleted {
		t.Errorf("status = %s, want Completed", b.Status)
	}
	if b.DueDate == nil {
		t.Fatal("DueDate should be set on completion")
	}
	wantDue := time.Now().Add(InvoiceDueAfter)
	if diff := b.DueDate.Sub(wantDue); diff < -time.Minute || diff > time.Minute {
		t.Errorf("DueDate = %v, want about %v", b.DueDate, wantDue)
	}
}

func TestQuotationFlow(t *testing.T) {
	svc, repo, _, payments := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)

	if _, err := svc.AcceptBooking(ctx, "booking-1", testProviderID); err != nil {
		t.Fatalf("AcceptBooking failed: %v", err)
	}

	// Customer cannot resolve a quotation that was never sent.
	if _, err := svc.AcceptQuotation(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrQuotationNotSent) {
		t.Fatalf("accepting a draft quotation: err = %v, want ErrQuotationNotSent", err)
	}

	items := []models.QuotationItem{
		{Description: "Labour", Quantity: 2, UnitPrice: 500},
		{Description: "Materials", Quantity: 1, UnitPrice: 1000},
	}
	b, err := svc.SendQuotation(ctx, "booking-1", testProviderID, items)
	if err != nil {
		t.Fatalf("SendQuotation failed: %v", err)
	}
	if b.Quotation.Status != models.QuotationSent {
		t.Errorf("quotation status = %s, want Sent", b.Quotation.Status)
	}
	if b.Quotation.TotalAmount != 2000 {
		t.Errorf("TotalAmount = %.2f, want 2000", b.Quotation.TotalAmount)
	}
	if b.Quotation.SentAt == nil {
		t.Error("SentAt should be stamped")
	}

	// Re-sending after the customer has seen it is not allowed.
	if _, err := svc.SendQuotation(ctx, "booking-1", testProviderID, items); !errors.Is(err, ErrQuotationResolved) {
		t.Fatalf("re-sending a sent quotation: err = %v, want ErrQuotationResolved", err)
	}

	// Confirm-and-pay is locked behind acceptance.
	if _, _, err := svc.ConfirmAndPay(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrQuotationNotAccepted) {
		t.Fatalf("confirming before acceptance: err = %v, want ErrQuotationNotAccepted", err)
	}

	if _, err := svc.AcceptQuotation(ctx, "booking-1", testCustomerID); err != nil {
		t.Fatalf("AcceptQuotation failed: %v", err)
	}

	// Accepted is terminal for the quotation sub-machine.
	if _, err := svc.DeclineQuotation(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrQuotationResolved) {
		t.Fatalf("declining an accepted quotation: err = %v, want ErrQuotationResolved", err)
	}

	b, intent, err := svc.ConfirmAndPay(ctx, "booking-1", testCustomerID)
	if err != nil {
		t.Fatalf("ConfirmAndPay failed: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want Confirmed", b.Status)
	}
	if intent == nil || intent.Amount != BookingFeeAmount {
		t.Errorf("booking fee intent = %+v, want amount %.2f", intent, BookingFeeAmount)
	}
	if len(payments.calls) != 1 || payments.calls[0].Purpose != "booking_fee" {
		t.Errorf("payment calls = %+v, want one booking_fee call", payments.calls)
	}
}

func TestDeclinedQuotationBlocksConfirm(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)

	if _, err := svc.AcceptBooking(ctx, "booking-1", testProviderID); err != nil {
		t.Fatalf("AcceptBooking failed: %v", err)
	}
	items := []models.QuotationItem{{Description: "Labour", Quantity: 1, UnitPrice: 3000}}
	if _, err := svc.SendQuotation(ctx, "booking-1", testProviderID, items); err != nil {
		t.Fatalf("SendQuotation failed: %v", err)
	}
	if _, err := svc.DeclineQuotation(ctx, "booking-1", testCustomerID); err != nil {
		t.Fatalf("DeclineQuotation failed: %v", err)
	}

	if _, _, err := svc.ConfirmAndPay(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrQuotationNotAccepted) {
		t.Fatalf("confirming a declined quotation: err = %v, want ErrQuotationNotAccepted", err)
	}
}

func TestPayInvoice(t *testing.T) {
	svc, repo, _, payments := newTestService()
	ctx := context.Background()

	// Not payable before completion.
	seedBooking(repo, models.BookingTypeInstant, models.StatusInProgress)
	if _, _, err := svc.PayInvoice(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrInvoiceNotDue) {
		t.Fatalf("paying before completion: err = %v, want ErrInvoiceNotDue", err)
	}

	seedBooking(repo, models.BookingTypeInstant, models.StatusCompleted)
	b, intent, err := svc.PayInvoice(ctx, "booking-1", testCustomerID)
	if err != nil {
		t.Fatalf("PayInvoice failed: %v", err)
	}
	if !b.Paid() {
		t.Error("PaymentDate should be stamped")
	}
	if intent.Amount != 1500 {
		t.Errorf("invoice amount = %.2f, want hourly rate 1500", intent.Amount)
	}
	if payments.calls[len(payments.calls)-1].Purpose != "invoice" {
		t.Errorf("purpose = %s, want invoice", payments.calls[len(payments.calls)-1].Purpose)
	}

	if _, _, err := svc.PayInvoice(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("paying twice: err = %v, want ErrAlreadyPaid", err)
	}
}

func TestProviderEarnings(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	now := time.Now()
	_ = repo.Create(ctx, &models.Booking{
		ID:          "settled-1",
		Customer:    models.CustomerSnapshot{ID: testCustomerID},
		Provider:    models.ProviderSnapshot{ID: testProviderID, HourlyRate: 5000},
		Status:      models.StatusCompleted,
		BookingType: models.BookingTypeInstant,
		PaymentDate: &now,
	})

	summary, err := svc.ProviderEarnings(ctx, testProviderID)
	if err != nil {
		t.Fatalf("ProviderEarnings failed: %v", err)
	}
	if summary.JobCount != 1 || summary.GrossValue != 5000 {
		t.Errorf("summary = %+v, want one 5000 job", summary)
	}
	if summary.Commission != 250 || summary.NetEarnings != 4750 {
		t.Errorf("summary = %+v, want commission 250 and net 4750", summary)
	}
}

func TestAddReview(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddReview(ctx, "booking-1", testCustomerID, 0, ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 0: err = %v, want ErrInvalidRating", err)
	}
	if _, err := svc.AddReview(ctx, "booking-1", testCustomerID, 6, ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 6: err = %v, want ErrInvalidRating", err)
	}

	seedBooking(repo, models.BookingTypeInstant, models.StatusInProgress)
	if _, err := svc.AddReview(ctx, "booking-1", testCustomerID, 5, "great"); !errors.Is(err, ErrReviewNotAllowed) {
		t.Fatalf("reviewing an unfinished job: err = %v, want ErrReviewNotAllowed", err)
	}

	seedBooking(repo, models.BookingTypeInstant, models.StatusCompleted)
	b, err := svc.AddReview(ctx, "booking-1", testCustomerID, 4, "solid work")
	if err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if b.Review == nil || b.Review.Rating != 4 || b.Review.AuthorID != testCustomerID {
		t.Errorf("review = %+v, want rating 4 by customer", b.Review)
	}

	p := providers.providers[testProviderID]
	if p.RatingCount != 1 || p.Rating != 4 {
		t.Errorf("provider aggregate = %.2f over %d, want 4.00 over 1", p.Rating, p.RatingCount)
	}

	if _, err := svc.AddReview(ctx, "booking-1", testCustomerID, 5, "again"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("reviewing twice: err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestAppendChatMessage(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeInstant, models.StatusConfirmed)

	if _, err := svc.AppendChatMessage(ctx, "booking-1", testCustomerID, "  "); err == nil {
		t.Fatal("blank message should be rejected")
	}
	if _, err := svc.AppendChatMessage(ctx, "booking-1", "stranger", "hello"); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("stranger chat: err = %v, want ErrNotParticipant", err)
	}

	b, err := svc.AppendChatMessage(ctx, "booking-1", testCustomerID, "habari, what time will you arrive?")
	if err != nil {
		t.Fatalf("AppendChatMessage failed: %v", err)
	}
	if len(b.ChatHistory) != 1 || b.ChatHistory[0].SenderID != testCustomerID {
		t.Errorf("chat history = %+v, want one customer message", b.ChatHistory)
	}

	b, err = svc.AppendChatMessage(ctx, "booking-1", testProviderID, "by ten, with all the parts")
	if err != nil {
		t.Fatalf("AppendChatMessage (provider) failed: %v", err)
	}
	if len(b.ChatHistory) != 2 {
		t.Errorf("chat history length = %d, want 2", len(b.ChatHistory))
	}
}

func TestDecideBooking(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)

	svc.Oracle = &fakeOracle{decision: &models.BookingDecision{Action: models.DecisionAccept, Reason: "clear scope, fair value"}}

	// Provider has not opted in.
	if _, err := svc.DecideBooking(ctx, "booking-1"); !errors.Is(err, ErrAutoAcceptDisabled) {
		t.Fatalf("opted-out provider: err = %v, want ErrAutoAcceptDisabled", err)
	}

	providers.providers[testProviderID].AIAutoAcceptEnabled = true

	decision, err := svc.DecideBooking(ctx, "booking-1")
	if err != nil {
		t.Fatalf("DecideBooking failed: %v", err)
	}
	if decision.Action != models.DecisionAccept {
		t.Errorf("action = %s, want accept", decision.Action)
	}
	stored, _ := repo.GetByID(ctx, "booking-1")
	if stored.Status != models.StatusPendingCustomerConfirmation {
		t.Errorf("status = %s, want PendingCustomerConfirmation", stored.Status)
	}

	// A second run hits the transition guard.
	if _, err := svc.DecideBooking(ctx, "booking-1"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("deciding twice: err = %v, want ErrInvalidTransition", err)
	}
}

func TestDecideBookingDecline(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)
	providers.providers[testProviderID].AIAutoAcceptEnabled = true

	svc.Oracle = &fakeOracle{decision: &models.BookingDecision{Action: models.DecisionDecline, Reason: "outside service area"}}

	if _, err := svc.DecideBooking(ctx, "booking-1"); err != nil {
		t.Fatalf("DecideBooking failed: %v", err)
	}
	stored, _ := repo.GetByID(ctx, "booking-1")
	if stored.Status != models.StatusCancelled {
		t.Errorf("status = %s, want Cancelled", stored.Status)
	}
}

func TestDecideBookingInstantRejected(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	seedBooking(repo, models.BookingTypeInstant, models.StatusPendingProviderConfirmation)
	providers.providers[testProviderID].AIAutoAcceptEnabled = true
	svc.Oracle = &fakeOracle{decision: &models.BookingDecision{Action: models.DecisionAccept}}

	if _, err := svc.DecideBooking(context.Background(), "booking-1"); !errors.Is(err, ErrQuotationRequired) {
		t.Fatalf("instant booking: err = %v, want ErrQuotationRequired", err)
	}
}

func TestDecideBookingUnknownAction(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	seedBooking(repo, models.BookingTypeQuote, models.StatusPendingProviderConfirmation)
	providers.providers[testProviderID].AIAutoAcceptEnabled = true
	svc.Oracle = &fakeOracle{decision: &models.BookingDecision{Action: "escalate", Reason: "needs a human"}}

	if _, err := svc.DecideBooking(context.Background(), "booking-1"); err == nil {
		t.Fatal("unknown oracle action should be rejected")
	}
	stored, _ := repo.GetByID(context.Background(), "booking-1")
	if stored.Status != models.StatusPendingProviderConfirmation {
		t.Errorf("status = %s, want unchanged PendingProviderConfirmation", stored.Status)
	}
}

func TestQuotationBlockedOnCancelledBooking(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	seedBooking(repo, models.BookingTypeQuote, models.StatusCancelled)

	items := []models.QuotationItem{{Description: "Labour", Quantity: 1, UnitPrice: 500}}
	if _, err := svc.SendQuotation(ctx, "booking-1", testProviderID, items); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("sending on cancelled booking: err = %v, want ErrInvalidTransition", err)
	}

	// Even a quotation already in flight is frozen once the booking dies.
	b, _ := repo.GetByID(ctx, "booking-1")
	b.Quotation.Status = models.QuotationSent
	_ = repo.Update(ctx, b)

	if _, err := svc.AcceptQuotation(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("accepting on cancelled booking: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.DeclineQuotation(ctx, "booking-1", testCustomerID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("declining on cancelled booking: err = %v, want ErrInvalidTransition", err)
	}

	stored, _ := repo.GetByID(ctx, "booking-1")
	if stored.Quotation.Status != models.QuotationSent || stored.Quotation.ResolvedAt != nil {
		t.Errorf("quotation = %+v, want untouched Sent", stored.Quotation)
	}
}
