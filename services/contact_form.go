package services

import (
	"context"
	"sync"
	"time"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FormState is where a contact form session sits in its submit cycle.
type FormState string

const (
	StateEditing          FormState = "editing"
	StateSubmitting       FormState = "submitting"
	StateSubmittedSuccess FormState = "submitted_success"
	StateSubmittedError   FormState = "submitted_error"
)

// SubmitBranch tells which WhatsApp number a successful submit addressed.
type SubmitBranch string

const (
	BranchNone     SubmitBranch = ""
	BranchVisitor  SubmitBranch = "visitor"
	BranchBusiness SubmitBranch = "business"
)

const (
	DefaultNoticeTTL = 5 * time.Second

	noticeVisitorRedirect  = "Redirecionando para o seu WhatsApp..."
	noticeBusinessRedirect = "Redirecionando para o WhatsApp..."
	noticeFixErrors        = "Por favor, corrija os erros antes de enviar."

	// minVisitorPhoneDigits is how many digits a phone needs for the quote to go to the visitor's own WhatsApp.
	minVisitorPhoneDigits = 10
)

// LinkOpener opens a deep link for the visitor. Opening is best effort:
// errors are logged and never change the submit outcome.
type LinkOpener interface {
	Open(ctx context.Context, link string) error
}

type LinkOpenerFunc func(ctx context.Context, link string) error

func (f LinkOpenerFunc) Open(ctx context.Context, link string) error {
	return f(ctx, link)
}

type ContactFormConfig struct {
	BusinessNumber string
	CountryCode    string
	NoticeTTL      time.Duration
}

func (c ContactFormConfig) withDefaults() ContactFormConfig {
	if c.BusinessNumber == "" {
		c.BusinessNumber = DefaultBusinessNumber
	}
	if c.CountryCode == "" {
		c.CountryCode = DefaultCountryCode
	}
	if c.NoticeTTL == 0 {
		c.NoticeTTL = DefaultNoticeTTL
	}
	return c
}

// SubmitResult describes what a submit attempt did.
type SubmitResult struct {
	State     FormState         `json:"state"`
	Branch    SubmitBranch      `json:"branch,omitempty"`
	Link      string            `json:"link,omitempty"`
	Message   string            `json:"-"`
	Notice    models.Notice     `json:"notice"`
	Errors    map[string]string `json:"errors,omitempty"`
	Progress  float64           `json:"progress"`
	Attention bool              `json:"attention"`
}

// ContactForm is one visitor's session with the quote form. Methods are safe
// for concurrent use; the opener must not call back into the form.
type ContactForm struct {
	mu     sync.Mutex
	cfg    ContactFormConfig
	opener LinkOpener
	logger zerolog.Logger

	data        models.ContactFormData
	validStates map[models.ContactField]bool
	fieldErrors map[models.ContactField]string
	state       FormState

	notice      models.Notice
	noticeTimer *time.Timer
	noticeGen   uint64
}

func NewContactForm(cfg ContactFormConfig, opener LinkOpener) *ContactForm {
	return &ContactForm{
		cfg:         cfg.withDefaults(),
		opener:      opener,
		logger:      log.With().Str("component", "contactForm").Logger(),
		validStates: make(map[models.ContactField]bool),
		fieldErrors: make(map[models.ContactField]string),
		state:       StateEditing,
	}
}

// SetField records what the visitor typed and silently revalidates it.
func (f *ContactForm) SetField(field models.ContactField, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data.Set(field, value)
	f.state = StateEditing
	f.validateLocked(field, false)
}

// Input is the keystroke hook: revalidate without showing a message.
func (f *ContactForm) Input(field models.ContactField) ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked(field, false)
}

// Blur is the leave-field hook: revalidate and show the message if invalid.
func (f *ContactForm) Blur(field models.ContactField) ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked(field, true)
}

// Focus hides the field's message while the visitor edits it.
func (f *ContactForm) Focus(field models.ContactField) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fieldErrors, field)
}

func (f *ContactForm) ValidateField(field models.ContactField, showMessage bool) ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked(field, showMessage)
}

func (f *ContactForm) validateLocked(field models.ContactField, showMessage bool) ValidationResult {
	result := ValidateField(field, f.data.Get(field))
	if _, ok := models.ParseContactField(string(field)); !ok {
		return result
	}

	f.validStates[field] = result.Valid
	if result.Valid {
		delete(f.fieldErrors, field)
	} else if showMessage {
		f.fieldErrors[field] = result.Message
	}
	return result
}

// Progress is the percentage of fields currently marked valid.
func (f *ContactForm) Progress() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progressLocked()
}

func (f *ContactForm) progressLocked() float64 {
	validFields := 0
	for _, field := range models.ContactFields {
		if f.validStates[field] {
			validFields++
		}
	}
	return float64(validFields*100) / float64(len(models.ContactFields))
}

func (f *ContactForm) IsValid() bool {
	return f.Progress() == 100
}

func (f *ContactForm) FieldError(field models.ContactField) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors[field]
}

func (f *ContactForm) IsFieldValid(field models.ContactField) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validStates[field]
}

func (f *ContactForm) IsFieldInvalid(field models.ContactField) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.fieldErrors[field]
	return ok
}

func (f *ContactForm) Data() models.ContactFormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *ContactForm) Notice() models.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Submit sends the quote request. With a phone of at least ten digits the quote
// goes to the visitor's own WhatsApp and the other fields are not checked.
// Otherwise every field must be valid and the quote goes to the business number.
func (f *ContactForm) Submit(ctx context.Context) SubmitResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateSubmitting

	if phone := Digits(f.data.Phone); len(phone) >= minVisitorPhoneDigits {
		message := ComposeQuoteMessage(visitorGreeting, f.data)
		link := WhatsAppLink(f.cfg.CountryCode+phone, message)
		return f.completeLocked(ctx, BranchVisitor, link, message, noticeVisitorRedirect)
	}

	formValid := true
	for _, field := range models.ContactFields {
		if !f.validateLocked(field, true).Valid {
			formValid = false
		}
	}

	if !formValid {
		f.state = StateSubmittedError
		f.showNoticeLocked(noticeFixErrors, models.NoticeError)
		return SubmitResult{
			State:     f.state,
			Notice:    f.notice,
			Errors:    f.errorsLocked(),
			Progress:  f.progressLocked(),
			Attention: true,
		}
	}

	message := ComposeQuoteMessage(businessGreeting, f.data)
	link := WhatsAppLink(f.cfg.BusinessNumber, message)
	return f.completeLocked(ctx, BranchBusiness, link, message, noticeBusinessRedirect)
}

func (f *ContactForm) completeLocked(ctx context.Context, branch SubmitBranch, link, message, notice string) SubmitResult {
	if f.opener != nil {
		if err := f.opener.Open(ctx, link); err != nil {
			f.logger.Warn().Err(err).Str("branch", string(branch)).Msg("Could not open WhatsApp link")
		}
	}

	f.resetLocked()
	f.state = StateSubmittedSuccess
	f.showNoticeLocked(notice, models.NoticeSuccess)

	return SubmitResult{
		State:    f.state,
		Branch:   branch,
		Link:     link,
		Message:  message,
		Notice:   f.notice,
		Progress: f.progressLocked(),
	}
}

func (f *ContactForm) errorsLocked() map[string]string {
	out := make(map[string]string, len(f.fieldErrors))
	for field, msg := range f.fieldErrors {
		out[string(field)] = msg
	}
	return out
}

// Reset empties the form and forgets all validation state.
func (f *ContactForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
	f.state = StateEditing
}

func (f *ContactForm) resetLocked() {
	f.data = models.ContactFormData{}
	f.validStates = make(map[models.ContactField]bool)
	f.fieldErrors = make(map[models.ContactField]string)
}

// showNoticeLocked replaces the banner and reschedules its clear. The pending
// clear of an older notice is stopped, and the generation check keeps a timer
// that already fired from wiping the newer notice.
func (f *ContactForm) showNoticeLocked(message string, kind models.NoticeType) {
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}

	f.noticeGen++
	f.notice = models.Notice{Message: message, Type: kind}

	if f.cfg.NoticeTTL < 0 {
		return
	}
	gen := f.noticeGen
	f.noticeTimer = time.AfterFunc(f.cfg.NoticeTTL, func() {
		f.clearNotice(gen)
	})
}

func (f *ContactForm) clearNotice(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.noticeGen {
		return
	}
	f.notice = models.Notice{}
	f.noticeTimer = nil
	if f.state == StateSubmittedSuccess || f.state == StateSubmittedError {
		f.state = StateEditing
	}
}

// Close cancels any pending notice clear.
func (f *ContactForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	f.noticeGen++
}
