package routes

import (
	"fitlink_server/controllers"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterConnectRoutes sets up routes for Connect account onboarding
func RegisterConnectRoutes(r *mux.Router, connectService *services.StripeConnectService) {
	controller := controllers.NewConnectController(connectService)

	connectRouter := r.PathPrefix("/api/connect").Subrouter()
	connectRouter.HandleFunc("/account", controller.CreateAccount).Methods("POST")
	connectRouter.HandleFunc("/account", controller.GetAccount).Methods("GET")
	connectRouter.HandleFunc("/account", controller.CreateLoginLink).Methods("PUT")
}
