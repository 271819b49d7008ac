package notification

import (
	"fmt"
	"log"

	"makeupstudio/internal/domain"
)

// Notifier is the outbound side of bookings and contact submissions. Every
// method is best-effort: failures are logged by the sender, never returned to
// the request path that triggered them.
type Notifier interface {
	BookingConfirmation(b *domain.Booking)
	BookingReminder(b *domain.Booking)
	ContactReceived(s *domain.ContactSubmission)
}

// Sender fans out over whichever channels are configured. A nil Mailer or
// SMSSender simply disables that channel.
type Sender struct {
	mail        *Mailer
	sms         *SMSSender
	artistInbox string
}

func NewSender(mail *Mailer, sms *SMSSender, artistInbox string) *Sender {
	return &Sender{mail: mail, sms: sms, artistInbox: artistInbox}
}

func (s *Sender) BookingConfirmation(b *domain.Booking) {
	if s.mail != nil && b.ClientEmail != "" {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your booking for <b>%s</b> on %s at %s has been received.</p>",
			b.ClientName, b.ServiceName, b.BookingDate, b.StartTime,
		)
		if err := s.mail.Send(b.ClientEmail, "Booking received", body); err != nil {
			log.Printf("notification: booking confirmation email failed booking_id=%d err=%v", b.ID, err)
		}
	}
}

func (s *Sender) BookingReminder(b *domain.Booking) {
	if s.mail != nil && b.ClientEmail != "" {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>A reminder for your <b>%s</b> appointment tomorrow, %s at %s.</p>",
			b.ClientName, b.ServiceName, b.BookingDate, b.StartTime,
		)
		if err := s.mail.Send(b.ClientEmail, "Appointment reminder", body); err != nil {
			log.Printf("notification: booking reminder email failed booking_id=%d err=%v", b.ID, err)
		}
	}
	if s.sms != nil && b.ClientPhone != "" {
		msg := fmt.Sprintf("Reminder: %s tomorrow %s at %s.", b.ServiceName, b.BookingDate, b.StartTime)
		if err := s.sms.Send(b.ClientPhone, msg); err != nil {
			log.Printf("notification: booking reminder sms failed booking_id=%d err=%v", b.ID, err)
		}
	}
}

func (s *Sender) ContactReceived(sub *domain.ContactSubmission) {
	if s.mail == nil || s.artistInbox == "" {
		return
	}
	body := fmt.Sprintf(
		"<p><b>%s</b> (%s) wrote:</p><p>%s</p><p>Subject: %s<br>Phone: %s</p>",
		sub.Name, sub.Email, sub.Message, sub.Subject, sub.Phone,
	)
	if err := s.mail.Send(s.artistInbox, "New contact form submission", body); err != nil {
		log.Printf("notification: contact email failed err=%v", err)
	}
}
