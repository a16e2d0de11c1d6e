package booking

import "hudumahub/models"

// allowedTransitions is the master transition table for booking status.
// Completed and Cancelled are terminal.
var allowedTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.StatusPendingProviderConfirmation: {
		models.StatusConfirmed:                   true, // provider accepts an instant booking
		models.StatusPendingCustomerConfirmation: true, // provider accepts a quote booking
		models.StatusCancelled:                   true, // provider declines
	},
	models.StatusPendingCustomerConfirmation: {
		models.StatusConfirmed: true, // customer confirms and pays the booking fee
		models.StatusCancelled: true,
	},
	models.StatusConfirmed: {
		models.StatusInProgress: true, // provider validates the start code
		models.StatusCancelled:  true,
	},
	models.StatusInProgress: {
		models.StatusCompleted: true, // a started job cannot be cancelled
	},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

// CanTransition reports whether the status transition is legal.
func CanTransition(from, to models.BookingStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// cancellable lists the states from which either party may cancel.
var cancellable = map[models.BookingStatus]bool{
	models.StatusConfirmed:                   true,
	models.StatusPendingCustomerConfirmation: true,
}

// CanCancel reports whether a booking in the given status may be cancelled.
func CanCancel(status models.BookingStatus) bool {
	return cancellable[status]
}

// Terminal reports whether the status admits no further transitions.
func Terminal(status models.BookingStatus) bool {
	return len(allowedTransitions[status]) == 0
}
