package services

import (
	"context"
	"fmt"
	"hotelpro-backend/config"
	"hotelpro-backend/utils"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Notifier delivers a text message to a phone number.
type Notifier interface {
	Notify(ctx context.Context, phone, message string) error
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends WhatsApp messages to numbers in international
// format when a WhatsApp sender is configured, and SMS otherwise.
type TwilioNotifier struct {
	api          messageCreator
	smsFrom      string
	whatsAppFrom string
	log          *zap.Logger
}

func NewTwilioNotifier(cfg config.TwilioConfig, log *zap.Logger) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioNotifier{
		api:          client.Api,
		smsFrom:      cfg.PhoneNumber,
		whatsAppFrom: cfg.WhatsAppNumber,
		log:          log,
	}
}

func (n *TwilioNotifier) Notify(ctx context.Context, phone, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := utils.NormalizePhone(phone)
	from := n.smsFrom
	channel := "sms"
	if n.whatsAppFrom != "" && strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		from = "whatsapp:" + n.whatsAppFrom
		channel = "whatsapp"
	}
	if from == "" {
		return fmt.Errorf("no %s sender configured", channel)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", channel, phone, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	n.log.Info("message sent", zap.String("channel", channel), zap.String("to", phone), zap.String("sid", sid))
	return nil
}

// LogNotifier only logs messages. It is used when Twilio is not configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, phone, message string) error {
	n.log.Info("notification skipped, no provider configured", zap.String("to", phone), zap.String("message", message))
	return nil
}
