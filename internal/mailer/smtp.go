package mailer

import (
	"fmt"
	"net/smtp"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	cfg  SMTPConfig
	auth smtp.Auth
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &smtpMailer{cfg: cfg, auth: auth}
}

func (m *smtpMailer) SendConfirmationCode(to, username, code string) error {
	subject := "YaMDb confirmation code"
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour confirmation code is: %s\r\n", username, code)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := smtp.SendMail(addr, m.auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation code: %w", err)
	}
	return nil
}
