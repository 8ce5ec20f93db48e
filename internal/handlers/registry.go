package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ClubHandler    *ClubHandler
	EventHandler   *EventHandler
	PaymentHandler *PaymentHandler
}
