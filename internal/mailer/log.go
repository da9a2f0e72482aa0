package mailer

import "log"

// logMailer writes codes to the process log instead of sending mail.
// Used when no SMTP relay is configured.
type logMailer struct{}

func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) SendConfirmationCode(to, username, code string) error {
	log.Printf("confirmation code for %s <%s>: %s", username, to, code)
	return nil
}
