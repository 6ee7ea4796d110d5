package services

import (
	"context"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const quoteNotificationSubject = "Novo pedido de orçamento"

// ContactService runs one-shot form sessions for the HTTP API: the submitted
// values are typed into a fresh ContactForm and submitted. Successful quotes
// are also forwarded to the business through notifier.
type ContactService struct {
	cfg      ContactFormConfig
	notifier Notifier
	logger   zerolog.Logger
}

func NewContactService(cfg ContactFormConfig, notifier Notifier) ContactService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return ContactService{
		cfg:      cfg,
		notifier: notifier,
		logger:   log.With().Str("service", "contact").Logger(),
	}
}

// Submit returns the submit outcome; the deep link in it is for the caller to open.
func (s ContactService) Submit(ctx context.Context, data models.ContactFormData) SubmitResult {
	form := NewContactForm(s.cfg, nil)
	defer form.Close()

	for _, field := range models.ContactFields {
		form.SetField(field, data.Get(field))
	}

	result := form.Submit(ctx)
	if result.State != StateSubmittedSuccess {
		return result
	}

	if err := s.notifier.Notify(ctx, quoteNotificationSubject, result.Message); err != nil {
		s.logger.Error().Err(err).Str("branch", string(result.Branch)).Msg("Failed to forward quote request")
	}
	return result
}

// Validate checks a single field without any session state.
func (s ContactService) Validate(field models.ContactField, value string) ValidationResult {
	return ValidateField(field, value)
}

// MultiNotifier fans a message out to several channels and reports the first failure.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, subject, body string) error {
	var g errgroup.Group
	for _, n := range m {
		g.Go(func() error {
			return n.Notify(ctx, subject, body)
		})
	}
	return g.Wait()
}
