package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task types processed by the background worker.
const (
	TypeAIDecide           = "booking:ai_decide"
	TypeInvoiceDueReminder = "invoice:due_reminder"
)

// AIDecidePayload asks the worker to run the decision oracle on a pending
// quote request whose provider has auto-accept enabled.
type AIDecidePayload struct {
	BookingID string `json:"bookingId"`
}

// InvoiceDuePayload asks the worker to remind the customer that a completed
// job's invoice has come due.
type InvoiceDuePayload struct {
	BookingID string `json:"bookingId"`
}

// NewAIDecideTask builds the auto-decision task for a freshly created booking.
// The short delay gives the creating write time to settle before the worker reads.
func NewAIDecideTask(bookingID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(AIDecidePayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAIDecide, b)
	opts := []asynq.Option{asynq.ProcessIn(3 * time.Second), asynq.MaxRetry(3)}

	return task, opts, nil
}

// NewInvoiceDueTask builds the invoice reminder scheduled for the due date.
func NewInvoiceDueTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(InvoiceDuePayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeInvoiceDueReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
