// Package otp provides helpers for generating one-time passwords (OTP).
//
// The codes produced here are single-use random numeric codes that are stored
// server-side with an expiry, delivered out of band (email), and consumed
// exactly once. They are not time-based (TOTP) codes.
package otp
