// Package entity holds the identity domain types shared across the module's
// usecase, inbound, and outbound layers.
package entity

import "time"

// User is an identity record. Password holds only the bcrypt hash; plaintext
// never reaches this type.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	Verified  bool
	CreatedAt time.Time
}

// OneTimeCode is the ephemeral credential proof delivered by email.
//
// At most one unused code exists per email: issuing a new code replaces the
// prior unused record. A code is consumable exactly once.
type OneTimeCode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
}
