package domain

import "time"

// Service is a bookable offering (price in dollars, duration in minutes).
type Service struct {
	ID          int64
	Title       string
	Description string
	Price       float64
	Duration    int
	Category    string
	ImageURL    string
	Featured    bool

	CreatedAt time.Time
}
