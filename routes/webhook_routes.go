package routes

import (
	"fitlink_server/controllers"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterWebhookRoutes sets up the Stripe webhook intake route
func RegisterWebhookRoutes(r *mux.Router, webhookService *services.WebhookService) {
	controller := controllers.NewWebhookController(webhookService)

	r.HandleFunc("/api/webhooks/stripe", controller.HandleStripeWebhook).Methods("POST")
}
