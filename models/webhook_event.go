package models

// Stripe event types the webhook handler recognizes. Anything else is
// logged and acknowledged without processing.
const (
	EventAccountUpdated      = "account.updated"
	EventAccountDeauthorized = "account.application.deauthorized"
	EventPaymentSucceeded    = "payment_intent.succeeded"
	EventPaymentFailed       = "payment_intent.payment_failed"
	EventPayoutPaid          = "payout.paid"
	EventPayoutFailed        = "payout.failed"
)
