package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"gantavya-backend/config"
	"gantavya-backend/dto"
)

// MailSender is what the saga and the email endpoints depend on.
type MailSender interface {
	SendRegistrationConfirmation(data dto.RegistrationEmailData) error
	SendPaymentConfirmation(data dto.PaymentEmailData) error
}

// Mailer sends the transactional mails over plain SMTP.
type Mailer struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromEmail string
	FromName  string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		User:      cfg.SMTPUser,
		Pass:      cfg.SMTPPass,
		FromEmail: cfg.SMTPFromEmail,
		FromName:  cfg.SMTPFromName,
	}
}

func (m *Mailer) configured() bool {
	return m.Host != "" && m.User != "" && m.Pass != "" && m.FromEmail != ""
}

// send builds a multipart/alternative message so clients without HTML still
// get the plain-text rendering.
func (m *Mailer) send(to, subject, htmlBody, textBody string) error {
	if !m.configured() {
		return errors.New("Email service not configured. Please contact support.")
	}

	const boundary = "gantavya-alt"
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %q <%s>\r\n", m.FromName, m.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&msg, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, textBody)
	fmt.Fprintf(&msg, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, htmlBody)
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(addr, auth, m.FromEmail, []string{to}, msg.Bytes())
}

var templateFuncs = map[string]any{
	"inr":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"year": func() int { return time.Now().Year() },
	"inc":  func(i int) int { return i + 1 },
}

var (
	registrationHTMLTmpl = template.Must(template.New("registration").Funcs(templateFuncs).Parse(registrationHTML))
	registrationTextTmpl = texttemplate.Must(texttemplate.New("registration").Funcs(templateFuncs).Parse(registrationText))
	paymentHTMLTmpl      = template.Must(template.New("payment").Funcs(templateFuncs).Parse(paymentHTML))
	paymentTextTmpl      = texttemplate.Must(texttemplate.New("payment").Funcs(templateFuncs).Parse(paymentText))
)

func (m *Mailer) SendRegistrationConfirmation(data dto.RegistrationEmailData) error {
	var html, text bytes.Buffer
	if err := registrationHTMLTmpl.Execute(&html, data); err != nil {
		return err
	}
	if err := registrationTextTmpl.Execute(&text, data); err != nil {
		return err
	}
	subject := fmt.Sprintf("Registration Confirmed - %s | Gantavya", data.TeamName)
	return m.send(data.LeaderEmail, subject, html.String(), text.String())
}

func (m *Mailer) SendPaymentConfirmation(data dto.PaymentEmailData) error {
	var html, text bytes.Buffer
	if err := paymentHTMLTmpl.Execute(&html, data); err != nil {
		return err
	}
	if err := paymentTextTmpl.Execute(&text, data); err != nil {
		return err
	}
	subject := fmt.Sprintf("Payment Successful - %s | Gantavya", data.TeamName)
	return m.send(data.LeaderEmail, subject, html.String(), text.String())
}

// RenderRegistrationText exposes the plain rendering for tests and previews.
func RenderRegistrationText(data dto.RegistrationEmailData) (string, error) {
	var text bytes.Buffer
	if err := registrationTextTmpl.Execute(&text, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(text.String()), nil
}
