package booking

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"makeupstudio/internal/notification"
)

// Reminder sends next-day appointment reminders every morning at 09:00
// server time.
type Reminder struct {
	bookings BookingRepository
	notifier notification.Notifier
	cron     *cron.Cron
}

func NewReminder(bookings BookingRepository, notifier notification.Notifier) *Reminder {
	return &Reminder{
		bookings: bookings,
		notifier: notifier,
		cron:     cron.New(),
	}
}

func (r *Reminder) Start() error {
	if _, err := r.cron.AddFunc("0 9 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r.Run(ctx, time.Now())
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Reminder) Stop() {
	r.cron.Stop()
}

// Run sends reminders for every non-cancelled booking on the day after now.
// Exposed separately from the schedule so it can be triggered directly.
func (r *Reminder) Run(ctx context.Context, now time.Time) {
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	bookings, err := r.bookings.ListForDate(ctx, tomorrow)
	if err != nil {
		log.Printf("reminder: failed to list bookings for %s: %v", tomorrow, err)
		return
	}

	for i := range bookings {
		r.notifier.BookingReminder(&bookings[i])
	}
	log.Printf("reminder: processed %d booking(s) for %s", len(bookings), tomorrow)
}
