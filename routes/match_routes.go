package routes

import (
	"fitlink_server/controllers"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for AI-assisted coach matching
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	r.HandleFunc("/api/match", controller.MatchCoaches).Methods("POST")
}
