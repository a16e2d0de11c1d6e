package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateBookingOTP generates the 4-digit start code shared with the customer
// at booking creation. The provider must present it to move a confirmed job
// into progress, proving the customer is physically present.
func GenerateBookingOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
