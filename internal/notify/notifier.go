package notify

import (
	"fmt"
	"log"
	"net/smtp"

	intconfig "backend/internal/config"
)

// Notifier is the delivery channel for booking summaries. Failures are the
// caller's problem to log; nothing here ever reaches the HTTP response.
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs the summary instead of delivering it. Used when no
// SMTP settings are configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}

// SMTPNotifier sends the summary as a plain-text email.
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

func (n SMTPNotifier) Notify(subject, message string) error {
	addr := n.Host + ":" + n.Port

	var auth smtp.Auth
	if n.Username != "" {
		auth = smtp.PlainAuth("", n.Username, n.Password, n.Host)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		n.From, n.To, subject, message)

	return smtp.SendMail(addr, auth, n.From, []string{n.To}, []byte(body))
}

// FromEnv picks SMTP when configured, console otherwise.
func FromEnv(env intconfig.Env) Notifier {
	if env.SMTPHost != "" && env.NotifyFrom != "" && env.NotifyTo != "" {
		return SMTPNotifier{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Username: env.SMTPUser,
			Password: env.SMTPPass,
			From:     env.NotifyFrom,
			To:       env.NotifyTo,
		}
	}
	return NewConsole()
}
