package services

import (
	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

type Message struct {
	To      string
	Channel Channel
	Body    string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(msg Message) (string, error)
}

type TwilioSender struct {
	client       *twilio.RestClient
	from         string
	whatsAppFrom string
}

func NewTwilioSender(accountSID, authToken, from, whatsAppFrom string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from:         from,
		whatsAppFrom: whatsAppFrom,
	}
}

// WhatsApp reports whether a WhatsApp sender number is configured.
func (s *TwilioSender) WhatsApp() bool {
	return s.whatsAppFrom != ""
}

func (s *TwilioSender) Send(msg Message) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(msg.Body)
	if msg.Channel == ChannelWhatsApp {
		params.SetTo("whatsapp:" + msg.To)
		params.SetFrom("whatsapp:" + s.whatsAppFrom)
	} else {
		params.SetTo(msg.To)
		params.SetFrom(s.from)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrapf(err, "send %s to %s", msg.Channel, msg.To)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
