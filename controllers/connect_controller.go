package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fitlink_server/models"
	"fitlink_server/services"
)

// ConnectController handles Connect account onboarding requests
type ConnectController struct {
	ConnectService *services.StripeConnectService
}

// NewConnectController creates a new instance of ConnectController
func NewConnectController(connectService *services.StripeConnectService) *ConnectController {
	return &ConnectController{ConnectService: connectService}
}

// CreateAccount handles creating a Connect account for a coach
func (c *ConnectController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.BusinessName == "" {
		http.Error(w, "Email and business name are required", http.StatusBadRequest)
		return
	}

	account, err := c.ConnectService.CreateAccount(r.Context(), req.Email, req.BusinessName)
	if err != nil {
		if errors.Is(err, services.ErrMissingAccountFields) {
			http.Error(w, "Email and business name are required", http.StatusBadRequest)
			return
		}
		log.Printf("Failed to create connect account: %v", err)
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// GetAccount handles fetching a Connect account by its identifier
func (c *ConnectController) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		http.Error(w, "Account ID is required", http.StatusBadRequest)
		return
	}

	account, err := c.ConnectService.GetAccount(r.Context(), accountID)
	if err != nil {
		log.Printf("Failed to fetch connect account %s: %v", accountID, err)
		http.Error(w, "Failed to fetch account", http.StatusInternalServerError)
		return
	}
	if account == nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// CreateLoginLink handles minting a one-time dashboard login link
func (c *ConnectController) CreateLoginLink(w http.ResponseWriter, r *http.Request) {
	var req models.LoginLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.AccountID == "" {
		http.Error(w, "Account ID is required", http.StatusBadRequest)
		return
	}

	link, err := c.ConnectService.CreateLoginLink(r.Context(), req.AccountID)
	if err != nil {
		log.Printf("Failed to create login link for account %s: %v", req.AccountID, err)
		http.Error(w, "Failed to create login link", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginLinkResponse{URL: link.URL})
}
