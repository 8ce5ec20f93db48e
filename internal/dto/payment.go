package dto

import "time"

type CheckoutRequest struct {
	Kind     string `json:"kind" binding:"required" validate:"required,oneof=membership event"`
	TargetID string `json:"targetId" binding:"required" validate:"required,uuid4"`
}

// CheckoutResponse either redirects the client to the hosted payment page
// (URL set) or reports a direct free grant (Granted set, no URL).
type CheckoutResponse struct {
	URL     string `json:"url,omitempty"`
	Granted bool   `json:"granted,omitempty"`
}

// ConfirmResponse is idempotent: repeated confirmations of the same session
// return the same success result.
type ConfirmResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
}

type PaymentResponse struct {
	TransactionID string    `json:"transactionId"`
	UserEmail     string    `json:"userEmail"`
	Amount        float64   `json:"amount"`
	Purpose       string    `json:"type"`
	TargetName    string    `json:"targetName,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
