// Package relay forwards chat messages to the external automation
// webhook with a bounded retry loop.
package relay

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	maxAttempts    = 7
	attemptDelay   = 1000 * time.Millisecond
	requestTimeout = 10 * time.Second
)

// FailureMessage is emitted to the sender once every attempt has failed.
const FailureMessage = "Lo siento, hubo un error procesando tu solicitud tras varios intentos."

// BotMessageEvent is the server-to-client event name for automation replies.
const BotMessageEvent = "bot_message"

// Emitter delivers an event back to the originating client.
type Emitter interface {
	Emit(event, data string) error
}

type relayRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Forwarder posts inbound chat messages to the automation webhook.
type Forwarder struct {
	client     *resty.Client
	webhookURL string
	sleep      func(time.Duration)
	logger     *zap.Logger
}

// NewForwarder builds a forwarder targeting the given webhook URL.
func NewForwarder(webhookURL string, logger *zap.Logger) (*Forwarder, error) {
	client := resty.New()
	client.SetTimeout(requestTimeout)
	client.SetRetryCount(0)
	return newForwarder(webhookURL, client, time.Sleep, logger)
}

func newForwarder(webhookURL string, client *resty.Client, sleepFn func(time.Duration), logger *zap.Logger) (*Forwarder, error) {
	trimmed := strings.TrimSpace(webhookURL)
	if trimmed == "" {
		return nil, fmt.Errorf("webhook url is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}
	if sleepFn == nil {
		sleepFn = time.Sleep
	}

	return &Forwarder{
		client:     client,
		webhookURL: trimmed,
		sleep:      sleepFn,
		logger:     logger,
	}, nil
}

// Relay posts the message to the webhook, retrying with a fixed delay
// until it succeeds or the attempt budget runs out. On exhaustion the
// sender receives the fixed failure message; the loop never propagates
// an error past this point. Each message gets its own loop instance, so
// concurrent relays share no state.
func (f *Forwarder) Relay(ctx context.Context, senderID, message string, emitter Emitter) {
	attempts := 0
	for attempts < maxAttempts {
		err := f.post(ctx, senderID, message)
		if err == nil {
			f.logger.Debug("webhook delivery succeeded",
				zap.String("sender", senderID),
				zap.Int("attempts", attempts+1))
			return
		}

		attempts++
		if attempts >= maxAttempts {
			f.logger.Error("webhook unreachable, giving up",
				zap.String("sender", senderID),
				zap.Int("attempts", attempts),
				zap.Error(err))
			if emitErr := emitter.Emit(BotMessageEvent, FailureMessage); emitErr != nil {
				f.logger.Warn("failure notice could not be delivered",
					zap.String("sender", senderID),
					zap.Error(emitErr))
			}
			return
		}

		f.logger.Warn("webhook delivery failed, retrying",
			zap.String("sender", senderID),
			zap.Int("attempt", attempts),
			zap.Error(err))
		f.sleep(attemptDelay)
	}
}

func (f *Forwarder) post(ctx context.Context, senderID, message string) error {
	response, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayRequest{Sender: senderID, Message: message}).
		Post(f.webhookURL)
	if err != nil {
		return err
	}
	if response.IsError() {
		return fmt.Errorf("webhook returned status %d", response.StatusCode())
	}
	return nil
}
