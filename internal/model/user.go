package model

import "time"

// UserID uniquely identifies a user across the system
type UserID int64

// User represents a registered account.
// PasswordHash is a bcrypt digest; the API response layer is responsible
// for never exposing it on the wire.
type User struct {
	ID           UserID
	Username     string // login username (immutable)
	PasswordHash string
	Email        string // optional; unique when set
	CreatedAt    time.Time
}
