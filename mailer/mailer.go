package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Send delivers a plain-text email through the configured SMTP relay.
func Send(toEmail, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")

	if host == "" {
		return fmt.Errorf("smtp not configured")
	}
	if port == "" {
		port = "587"
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body)

	auth := smtp.PlainAuth("", from, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{toEmail}, msg)
}
