package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"fitlink_server/models"
	"fitlink_server/services"
)

// MatchController handles coach-matching requests
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new instance of MatchController
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// MatchCoaches handles POST requests for AI-assisted coach matching
func (c *MatchController) MatchCoaches(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "Query is required", http.StatusBadRequest)
		return
	}

	response, err := c.MatchService.MatchCoaches(r.Context(), req.Query)
	if err != nil {
		log.Printf("Failed to match coaches: %v", err)
		http.Error(w, "Failed to match coaches", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
