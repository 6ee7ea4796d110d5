package services

import (
	"net/url"
	"strings"

	"github.com/jrmferreira/construcoes-backend/models"
)

const (
	whatsAppBaseURL = "https://wa.me/"

	// DefaultBusinessNumber receives quotes when the visitor leaves no phone.
	DefaultBusinessNumber = "5521992215224"
	DefaultCountryCode    = "55"
	DefaultChatNumber     = "5511999999999"

	businessGreeting = "Olá! Gostaria de solicitar um orçamento."
	visitorGreeting  = "Olá! Solicitei um orçamento pelo site."
	chatGreeting     = "Olá! Gostaria de saber mais sobre os serviços da JRM Ferreira Construções."
)

// uriUnreserved restores the marks encodeURIComponent leaves alone but
// url.QueryEscape escapes, and spells spaces as %20.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s for a query value the way browsers do.
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}

// WhatsAppLink builds https://wa.me/<digits>?text=<text>.
func WhatsAppLink(number, text string) string {
	return whatsAppBaseURL + Digits(number) + "?text=" + encodeURIComponent(text)
}

// ComposeQuoteMessage renders the form as the labelled block sent over WhatsApp.
// Values are used exactly as typed.
func ComposeQuoteMessage(greeting string, data models.ContactFormData) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\nNome: ")
	b.WriteString(data.Name)
	b.WriteString("\nE-mail: ")
	b.WriteString(data.Email)
	b.WriteString("\nTelefone: ")
	b.WriteString(data.Phone)
	b.WriteString("\nServiço desejado: ")
	b.WriteString(data.Subject)
	b.WriteString("\nMensagem: ")
	b.WriteString(data.Message)
	return b.String()
}

// ChatLink opens a plain conversation with the business, falling back to the
// default number and greeting when either is empty.
func ChatLink(phone, message string) string {
	if Digits(phone) == "" {
		phone = DefaultChatNumber
	}
	if strings.TrimSpace(message) == "" {
		message = chatGreeting
	}
	return WhatsAppLink(phone, message)
}
