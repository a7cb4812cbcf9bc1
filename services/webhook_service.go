package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"fitlink_server/models"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

// ErrInvalidSignature marks webhook payloads that failed signature
// verification; the controller maps it to a distinct 400.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookService verifies and dispatches Stripe webhook events. No field of
// a payload is trusted before the signature check passes. Each dispatch
// branch only logs, keyed by the provider event ID, so redelivered events
// are safe to process again.
type WebhookService struct {
	Secret string
}

// ProcessEvent verifies the payload against the shared secret, then
// classifies and dispatches it. Unrecognized event types are logged and
// acknowledged.
func (ws *WebhookService) ProcessEvent(payload []byte, signatureHeader string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, ws.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if err := ws.dispatch(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (ws *WebhookService) dispatch(event *stripe.Event) error {
	switch event.Type {
	case models.EventAccountUpdated:
		var account stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &account); err != nil {
			return fmt.Errorf("failed to parse account from event %s: %w", event.ID, err)
		}
		log.Printf("Webhook %s: connect account %s updated (charges_enabled=%t, payouts_enabled=%t)",
			event.ID, account.ID, account.ChargesEnabled, account.PayoutsEnabled)

	case models.EventAccountDeauthorized:
		log.Printf("Webhook %s: connect account %s deauthorized the platform", event.ID, event.Account)

	case models.EventPaymentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("failed to parse payment intent from event %s: %w", event.ID, err)
		}
		log.Printf("Webhook %s: payment %s succeeded for %d %s", event.ID, intent.ID, intent.Amount, intent.Currency)

	case models.EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("failed to parse payment intent from event %s: %w", event.ID, err)
		}
		reason := ""
		if intent.LastPaymentError != nil {
			reason = intent.LastPaymentError.Msg
		}
		log.Printf("Webhook %s: payment %s failed: %s", event.ID, intent.ID, reason)

	case models.EventPayoutPaid:
		var payout stripe.Payout
		if err := json.Unmarshal(event.Data.Raw, &payout); err != nil {
			return fmt.Errorf("failed to parse payout from event %s: %w", event.ID, err)
		}
		log.Printf("Webhook %s: payout %s paid for %d %s", event.ID, payout.ID, payout.Amount, payout.Currency)

	case models.EventPayoutFailed:
		var payout stripe.Payout
		if err := json.Unmarshal(event.Data.Raw, &payout); err != nil {
			return fmt.Errorf("failed to parse payout from event %s: %w", event.ID, err)
		}
		log.Printf("Webhook %s: payout %s failed: %s", event.ID, payout.ID, payout.FailureMessage)

	default:
		log.Printf("Webhook %s: ignoring unhandled event type %q", event.ID, event.Type)
	}

	return nil
}
