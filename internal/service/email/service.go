package email

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/clinicscribe/scribe-api/internal/config"
)

// Service mails rendered session reports to the clinician. Disabled
// when no SMTP host is configured.
type Service interface {
	Enabled() bool
	SendReport(to, patient string, visit int, pdf []byte) error
}

type service struct {
	cfg      config.SMTPConfig
	password string
}

func NewService(cfg config.SMTPConfig, password string) Service {
	return &service{cfg: cfg, password: password}
}

func (s *service) Enabled() bool {
	return s.cfg.Host != ""
}

func (s *service) SendReport(to, patient string, visit int, pdf []byte) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Session report: %s, visit %d", patient, visit))
	m.SetBody("text/plain", "The session report is attached.")
	m.Attach(fmt.Sprintf("report-visit-%d.pdf", visit),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}
