package services

import (
	"context"
	"strings"

	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers a short message to the business owner.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// NopNotifier drops every message; used when no channel is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string) error { return nil }

// messageCreator is the part of twilio's ApiService used here.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier forwards messages to the business WhatsApp through Twilio.
type TwilioNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewTwilioNotifier builds a notifier sending from the Twilio WhatsApp sender
// `from` to the business number `to`. Both are plain E.164 numbers.
func NewTwilioNotifier(accountSID, authToken, from, to string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newTwilioNotifier(client.Api, from, to)
}

func newTwilioNotifier(api messageCreator, from, to string) *TwilioNotifier {
	return &TwilioNotifier{api: api, from: whatsAppAddress(from), to: whatsAppAddress(to)}
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:+" + Digits(number)
}

func (n *TwilioNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody("*" + subject + "*\n" + body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return errs.NewNotificationError("whatsapp", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Info().Str("messageSid", sid).Str("to", n.to).Msg("Sent WhatsApp notification via Twilio")
	return nil
}
