package email

// Email is an outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Provider sends email notifications. Receipts are best effort: callers
// log failures but never fail the surrounding operation.
type Provider interface {
	Send(email *Email) error
}
