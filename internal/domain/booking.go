package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking dates are YYYY-MM-DD, times HH:MM. EndTime is derived from the
// service duration at creation, never entered by the client.
type Booking struct {
	ID          int64
	ClientName  string
	ClientEmail string
	ClientPhone string
	ServiceID   int64
	ServiceName string
	BookingDate string
	StartTime   string
	EndTime     string
	Notes       string
	ClientID    *int64
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
