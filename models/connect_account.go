package models

// CreateAccountRequest is the payload for creating a Connect account
type CreateAccountRequest struct {
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
}

// LoginLinkRequest is the payload for minting a one-time dashboard login link
type LoginLinkRequest struct {
	AccountID string `json:"accountId"`
}

// LoginLinkResponse carries the one-time login URL back to the client
type LoginLinkResponse struct {
	URL string `json:"url"`
}
