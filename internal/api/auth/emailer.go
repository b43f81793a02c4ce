package auth

import (
	"fmt"
	"net/smtp"
	"regexp"

	"catalog-app/config"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// SendConfirmationEmail mails a signup confirmation code. Transport errors
// are returned to the caller, never swallowed.
func SendConfirmationEmail(to string, code string) error {
	if !IsEmailValid(to) {
		return fmt.Errorf("invalid email address: %s", to)
	}

	from := config.SMTP_FROM
	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	subject := "Confirmation code for the catalog API"
	body := fmt.Sprintf("You requested a confirmation code.\n\nKeep it a secret: %s", code)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
