package payments

import (
	"context"
	"errors"
)

// Metadata keys attached to every checkout session. The confirmation flow
// reads business context back from these; the provider returns nothing else
// application-specific.
const (
	MetaTargetID     = "targetId"
	MetaTargetName   = "targetName"
	MetaSubjectEmail = "subjectEmail"
	MetaPurchaseKind = "purchaseKind"
)

// ErrSessionNotFound means the provider cannot locate the session reference.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutItem is a single line item in minor currency units.
type CheckoutItem struct {
	Name        string
	AmountMinor int64
	Currency    string
	Quantity    int64
}

type SessionRequest struct {
	Item          CheckoutItem
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// Session is a freshly created hosted checkout session.
type Session struct {
	ID  string
	URL string
}

// SessionStatus is the provider's authoritative view of a session.
type SessionStatus struct {
	ID            string
	PaymentStatus string // "paid" once the charge settled
	AmountTotal   int64  // minor units
	TransactionID string // payment intent reference; the idempotency key
	Metadata      map[string]string
}

// Provider is the hosted payment session provider.
type Provider interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error)
}
