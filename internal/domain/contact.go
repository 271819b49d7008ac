package domain

import "time"

// ContactSubmission is write-only from the public contact form.
type ContactSubmission struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	CreatedAt time.Time
}
