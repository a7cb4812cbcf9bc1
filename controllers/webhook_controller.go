package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"fitlink_server/services"
)

// maxWebhookBodyBytes caps inbound webhook payloads
const maxWebhookBodyBytes = 65536

// WebhookController handles inbound Stripe webhook deliveries
type WebhookController struct {
	WebhookService *services.WebhookService
}

// NewWebhookController creates a new instance of WebhookController
func NewWebhookController(webhookService *services.WebhookService) *WebhookController {
	return &WebhookController{WebhookService: webhookService}
}

// HandleStripeWebhook verifies and dispatches a webhook delivery. Signature
// failures get a distinct 400; anything unexpected during dispatch is a
// generic 500.
func (c *WebhookController) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Failed to read webhook body: %v", err)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	event, err := c.WebhookService.ProcessEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			log.Printf("Webhook signature verification failed: %v", err)
			http.Error(w, "Invalid webhook signature", http.StatusBadRequest)
			return
		}
		log.Printf("Failed to process webhook: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Printf("Webhook %s (%s) acknowledged", event.ID, event.Type)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"received": true})
}
