package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator produces one-time passcodes.
type Generator interface {
	// Generate returns a fresh numeric passcode.
	Generate() (string, error)
}

// Numeric generates uniformly random six-digit codes using crypto/rand.
type Numeric struct{}

// NewNumeric creates a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a random code in the range 100000 to 999999 inclusive, so
// the code always has exactly six digits.
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", v.Int64()+100000), nil
}
