// Package mail sends transactional email for the waitlist flow through
// SendGrid. Every message is written to the outbox table before the first
// delivery attempt, a background worker retries whatever did not go out.
package mail

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"log/slog"

	"github.com/lumioapp/lumio-site-manager/internal/dependency"
	"github.com/lumioapp/lumio-site-manager/internal/entity"
	gerr "github.com/lumioapp/lumio-site-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

type Mailer struct {
	cli            *sendgrid.Client
	mailRepository dependency.Mail
	from           *mail.Email
	c              *Config
	ctx            context.Context
	cancel         context.CancelFunc
	templates      map[string]*template.Template
}

func New(c *Config, mailRepository dependency.Mail) (dependency.Mailer, error) {
	return newMailer(c, mailRepository)
}

func newMailer(c *Config, mailRepository dependency.Mail) (*Mailer, error) {
	if c.APIKey == "" || c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: %+v", c)
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}

	m := &Mailer{
		cli:            sendgrid.NewSendClient(c.APIKey),
		mailRepository: mailRepository,
		from:           mail.NewEmail(c.FromName, c.FromEmail),
		c:              c,
		templates:      make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	dirEntries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join("templates", entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}

	return nil
}

// buildRequest renders a template into an outbox row ready for insertion.
func (m *Mailer) buildRequest(to, tn string, data any) (*entity.SendEmailRequest, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	subject, ok := templateSubjects[tn]
	if !ok {
		return nil, fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	return &entity.SendEmailRequest{
		FromEmail: m.c.FromEmail,
		FromName:  m.c.FromName,
		ToEmail:   to,
		Subject:   subject,
		Html:      body.String(),
	}, nil
}

func (m *Mailer) send(ctx context.Context, ser *entity.SendEmailRequest) error {
	msg := mail.NewSingleEmail(m.from, ser.Subject, mail.NewEmail("", ser.ToEmail), "", ser.Html)

	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.ErrMailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}

	return nil
}

// sendWithInsert records the mail in the outbox first, then attempts an
// immediate delivery. A failed attempt is left for the worker to retry.
func (m *Mailer) sendWithInsert(ctx context.Context, ser *entity.SendEmailRequest) error {
	id, err := m.mailRepository.AddMail(ctx, ser)
	if err != nil {
		return fmt.Errorf("error inserting email: %w", err)
	}

	if err := m.send(ctx, ser); err != nil {
		slog.Default().ErrorContext(ctx, "can't send mail",
			slog.String("err", err.Error()),
		)
		return nil
	}

	if err := m.mailRepository.UpdateSent(ctx, id); err != nil {
		return fmt.Errorf("error updating email: %w", err)
	}

	return nil
}
