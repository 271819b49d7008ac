package domain

import "time"

// FAQ entries are listed by DisplayOrder ascending, newest-first within the
// same order value.
type FAQ struct {
	ID           int64
	Question     string
	Answer       string
	Category     string
	DisplayOrder int

	CreatedAt time.Time
}
