package services

import (
	"time"

	"clubsphere_backend/internal/config"
	"clubsphere_backend/internal/email"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/internal/repositories"
)

// ServiceContainer wires repositories and providers into the service layer.
type ServiceContainer struct {
	Auth     AuthService
	User     UserService
	Club     ClubService
	Event    EventService
	Checkout CheckoutService
	Payment  PaymentService
}

type Repositories struct {
	User         repositories.UserRepository
	Club         repositories.ClubRepository
	Event        repositories.EventRepository
	Membership   repositories.MembershipRepository
	Registration repositories.RegistrationRepository
	Payment      repositories.PaymentRepository
}

func NewServiceContainer(
	repos *Repositories,
	provider payments.Provider,
	emailProvider email.Provider,
	cfg *config.Config,
) *ServiceContainer {
	providerTimeout := time.Duration(cfg.Stripe.TimeoutSeconds) * time.Second

	checkoutConfig := CheckoutConfig{
		Currency:        cfg.Stripe.Currency,
		SuccessURL:      cfg.Stripe.SuccessURL,
		CancelURL:       cfg.Stripe.CancelURL,
		ProviderTimeout: providerTimeout,
	}

	return &ServiceContainer{
		Auth: NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.TTL),
		User: NewUserService(repos.User, repos.Membership, repos.Registration, repos.Event, repos.Club),
		Club: NewClubService(repos.Club),
		Event: NewEventService(
			repos.Event,
			repos.Club,
		),
		Checkout: NewCheckoutService(
			repos.Club,
			repos.Event,
			repos.Membership,
			repos.Registration,
			repos.Payment,
			provider,
			checkoutConfig,
		),
		Payment: NewPaymentService(
			repos.Payment,
			repos.Membership,
			repos.Registration,
			repos.Event,
			provider,
			emailProvider,
			providerTimeout,
		),
	}
}
