package models

// Decision actions returned by the booking decision oracle.
const (
	DecisionAccept  = "accept"
	DecisionDecline = "decline"
)

// BookingDecision is the oracle's verdict on a pending quote request.
type BookingDecision struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Valid reports whether the action is one the lifecycle understands.
func (d BookingDecision) Valid() bool {
	return d.Action == DecisionAccept || d.Action == DecisionDecline
}
