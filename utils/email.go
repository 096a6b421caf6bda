package utils

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail sends a plain-text mail through the SMTP server configured via
// SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	if host == "" || user == "" {
		return errors.New("smtp is not configured")
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 465
	}

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, user, pass)

	return d.DialAndSend(m)
}
