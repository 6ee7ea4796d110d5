package api

import (
	"net/http"

	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/jrmferreira/construcoes-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder  Responder
	logger     zerolog.Logger
	contact    services.ContactService
	chatNumber string
}

func newContactHandler(contact services.ContactService, chatNumber string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		contact:    contact,
		chatNumber: chatNumber,
	}
}

// validateField checks one field as the form does on blur
// @Summary Validate contact field
// @Tags Contact
// @Accept json
// @Produce json
// @Param field body FieldValidationRequest true "Field and value"
// @Success 200 {object} FieldValidationResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Unknown field"
// @Router /contact/validate [post]
func (h contactHandler) validateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FieldValidationRequest
		if err := decodeJSON(r, "field validation", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		field, ok := models.ParseContactField(req.Field)
		if !ok {
			h.responder.WriteError(w, errs.NewInvalidFieldError("field", "unknown contact form field "+req.Field))
			return
		}

		result := h.contact.Validate(field, req.Value)
		h.responder.WriteJSON(w, FieldValidationResponse{
			Field:   string(field),
			Valid:   result.Valid,
			Message: result.Message,
		})
	}
}

// submit runs the quote form and returns the WhatsApp link to open
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param form body models.ContactFormData true "Form values"
// @Success 200 {object} ContactSubmitResponse
// @Failure 422 {object} ContactSubmitResponse "Form has invalid fields"
// @Router /contact [post]
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data models.ContactFormData
		if err := decodeJSON(r, "contact form", &data); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result := h.contact.Submit(r.Context(), data)
		if result.State != services.StateSubmittedSuccess {
			apiErr := errs.NewInvalidFormError(result.Notice.Message)
			h.logger.Debug().Interface("errors", result.Errors).Msg("Rejected contact form")
			h.responder.WriteJSONStatus(w, apiErr.StatusCode, ContactSubmitResponse{
				SubmitResult: result,
				Error:        apiErr.Error(),
			})
			return
		}

		h.logger.Info().Str("branch", string(result.Branch)).Msg("Contact form submitted")
		h.responder.WriteJSON(w, ContactSubmitResponse{SubmitResult: result})
	}
}

// whatsAppLink builds a plain chat link for the floating WhatsApp button
// @Summary WhatsApp chat link
// @Tags Contact
// @Produce json
// @Param phone query string false "Number to chat with"
// @Param message query string false "Prefilled message"
// @Success 200 {object} LinkResponse
// @Router /contact/whatsapp [get]
func (h contactHandler) whatsAppLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		if services.Digits(phone) == "" {
			phone = h.chatNumber
		}

		h.responder.WriteJSON(w, LinkResponse{
			Link: services.ChatLink(phone, r.URL.Query().Get("message")),
		})
	}
}
