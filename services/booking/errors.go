package booking

import "errors"

// Guard violations surfaced to handlers. Each maps to a 4xx response; none of
// them leaves a partially applied state change behind.
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotParticipant       = errors.New("caller is not a party to this booking")
	ErrInvalidTransition    = errors.New("booking status does not permit this action")
	ErrNotCancellable       = errors.New("booking can no longer be cancelled")
	ErrOTPMismatch          = errors.New("start code does not match")
	ErrQuotationRequired    = errors.New("action requires a quote-type booking")
	ErrQuotationNotSent     = errors.New("quotation has not been sent")
	ErrQuotationResolved    = errors.New("quotation has already been accepted or declined")
	ErrQuotationNotAccepted = errors.New("quotation must be accepted first")
	ErrInvoiceNotDue        = errors.New("invoice is not payable for this booking")
	ErrAlreadyPaid          = errors.New("invoice has already been paid")
	ErrAlreadyReviewed      = errors.New("booking has already been reviewed")
	ErrReviewNotAllowed     = errors.New("only completed bookings can be reviewed")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrAutoAcceptDisabled   = errors.New("provider has not enabled auto accept")
)
