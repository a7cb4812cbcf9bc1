package routes

import (
	"fitlink_server/controllers"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterCoachRoutes sets up routes for coach directory operations under /api/coaches
func RegisterCoachRoutes(r *mux.Router, directoryService *services.CoachDirectoryService) {
	controller := controllers.NewCoachController(directoryService)

	coachRouter := r.PathPrefix("/api/coaches").Subrouter()
	coachRouter.HandleFunc("", controller.CreateCoach).Methods("POST")
	coachRouter.HandleFunc("", controller.ListCoaches).Methods("GET")
	coachRouter.HandleFunc("/{coachId}", controller.GetCoach).Methods("GET")
	coachRouter.HandleFunc("/{coachId}", controller.DeleteCoach).Methods("DELETE")
}
