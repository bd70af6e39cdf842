package utils

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. Sends are best-effort: failures
// are logged, never surfaced to the request that triggered them.
type Mailer struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

func NewMailer(host string, port int, user, pass, sender string) *Mailer {
	return &Mailer{Host: host, Port: port, User: user, Pass: pass, Sender: sender}
}

func (m *Mailer) send(to, subject, body string) {
	if m == nil || m.Host == "" {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}

	log.Printf("Email successfully sent to %s", to)
}

// SendOTPEmail sends the OTP to the user's email address
func (m *Mailer) SendOTPEmail(email string, otp string) {
	m.send(email, "Your OTP Code", "Your OTP code is: "+otp)
}

// SendReceiptReviewed notifies a realtor of the outcome of a receipt review.
func (m *Mailer) SendReceiptReviewed(email, name, status, amountDisplay string) {
	body := fmt.Sprintf("Hello %s,\n\nYour payment receipt for %s has been marked %s.\n\nVeriPlot", name, amountDisplay, status)
	m.send(email, "Your receipt has been reviewed", body)
}
