package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"fitlink_server/models"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// CoachController handles requests related to coach directory profiles
type CoachController struct {
	DirectoryService *services.CoachDirectoryService
}

// NewCoachController creates a new instance of CoachController
func NewCoachController(directoryService *services.CoachDirectoryService) *CoachController {
	return &CoachController{DirectoryService: directoryService}
}

// CreateCoach handles adding a coach profile to the directory
func (c *CoachController) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var coach models.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if coach.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	created, err := c.DirectoryService.CreateCoach(r.Context(), coach)
	if err != nil {
		log.Printf("Failed to create coach profile: %v", err)
		http.Error(w, "Failed to create coach profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Coach profile created successfully",
		"coach":   created,
	})
}

// ListCoaches handles listing directory coaches, optionally by specialty
func (c *CoachController) ListCoaches(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	coaches, err := c.DirectoryService.ListCoaches(r.Context(), specialty)
	if err != nil {
		log.Printf("Failed to list coaches: %v", err)
		http.Error(w, "Failed to list coaches", http.StatusInternalServerError)
		return
	}
	if coaches == nil {
		coaches = []models.Coach{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(coaches)
}

// GetCoach handles fetching a coach profile by ID
func (c *CoachController) GetCoach(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["coachId"]

	coach, err := c.DirectoryService.GetCoach(r.Context(), coachID)
	if err != nil {
		log.Printf("Failed to fetch coach %s: %v", coachID, err)
		http.Error(w, "Failed to fetch coach profile", http.StatusInternalServerError)
		return
	}
	if coach == nil {
		http.Error(w, "Coach not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(coach)
}

// DeleteCoach handles removing a coach profile
func (c *CoachController) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["coachId"]

	if err := c.DirectoryService.DeleteCoach(r.Context(), coachID); err != nil {
		log.Printf("Failed to delete coach %s: %v", coachID, err)
		http.Error(w, "Failed to delete coach profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Coach profile deleted successfully",
		"coachId": coachID,
	})
}
