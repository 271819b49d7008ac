package domain

import "time"

// AdminProfile is both an admin identity and the artist profile the public
// site renders. Exactly one row exists per registered admin email; the row is
// created during the secret-gated registration flow and never deleted.
type AdminProfile struct {
	ID           int64
	Email        string
	PasswordHash string

	Bio         string
	Bio2        string
	AboutImage1 ImageRef
	AboutImage2 ImageRef

	CreatedAt time.Time
	UpdatedAt time.Time
}
