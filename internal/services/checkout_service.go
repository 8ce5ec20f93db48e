package services

import (
	"context"
	"fmt"
	"time"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/logger"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

// CheckoutConfig carries the provider-facing settings for hosted sessions.
type CheckoutConfig struct {
	Currency        string
	SuccessURL      string
	CancelURL       string
	ProviderTimeout time.Duration
}

// CheckoutService starts a purchase. A positive fee produces a hosted
// payment session and a redirect URL; a zero fee short-circuits to a direct
// entitlement grant and never contacts the provider. No local state is
// written for paid checkouts, they stay provisional until confirmed.
type CheckoutService interface {
	Initiate(ctx context.Context, kind models.PaymentPurpose, targetID string, identity *auth.Claims) (*dto.CheckoutResponse, error)
}

type CheckoutServiceImpl struct {
	clubRepo         repositories.ClubRepository
	eventRepo        repositories.EventRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	paymentRepo      repositories.PaymentRepository
	provider         payments.Provider
	config           CheckoutConfig
}

func NewCheckoutService(
	clubRepo repositories.ClubRepository,
	eventRepo repositories.EventRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	paymentRepo repositories.PaymentRepository,
	provider payments.Provider,
	config CheckoutConfig,
) CheckoutService {
	return &CheckoutServiceImpl{
		clubRepo:         clubRepo,
		eventRepo:        eventRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
		provider:         provider,
		config:           config,
	}
}

func (s *CheckoutServiceImpl) Initiate(ctx context.Context, kind models.PaymentPurpose, targetID string, identity *auth.Claims) (*dto.CheckoutResponse, error) {
	switch kind {
	case models.PaymentPurposeMembership:
		return s.initiateMembership(ctx, targetID, identity)
	case models.PaymentPurposeEvent:
		return s.initiateRegistration(ctx, targetID, identity)
	default:
		return nil, apperrors.NewBadRequestError("Unknown purchase kind: " + string(kind))
	}
}

func (s *CheckoutServiceImpl) initiateMembership(ctx context.Context, clubID string, identity *auth.Claims) (*dto.CheckoutResponse, error) {
	club, err := s.clubRepo.FindByID(clubID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClubNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	if club.Status != models.ClubStatusApproved {
		return nil, apperrors.ErrClubNotApproved
	}

	if _, err := s.membershipRepo.FindActive(identity.Email, club.ID); err == nil {
		return nil, apperrors.ErrAlreadyMember
	} else if !apperrors.Is(err, repositories.ErrMembershipNotFound) {
		return nil, apperrors.StorageError(err)
	}

	// Free club: grant directly, the provider is never involved.
	if club.MembershipFee <= 0 {
		now := time.Now()
		membership := &models.Membership{
			UserEmail: identity.Email,
			ClubID:    club.ID,
			Status:    models.MembershipStatusActive,
			JoinedAt:  now,
			ExpiresAt: now.AddDate(1, 0, 0),
		}
		if err := s.paymentRepo.CommitMembershipPurchase(nil, membership); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicateEntitlement) {
				return nil, apperrors.ErrAlreadyMember
			}
			return nil, apperrors.StorageError(err)
		}
		logger.CtxInfo(ctx, "free membership granted", "club_id", club.ID, "user_email", identity.Email)
		return &dto.CheckoutResponse{Granted: true}, nil
	}

	amountMinor, err := MinorUnits(club.MembershipFee)
	if err != nil {
		return nil, err
	}

	session, err := s.createSession(ctx, &payments.SessionRequest{
		Item: payments.CheckoutItem{
			Name:        fmt.Sprintf("%s Membership Fee", club.Name),
			AmountMinor: amountMinor,
			Currency:    s.config.Currency,
			Quantity:    1,
		},
		CustomerEmail: identity.Email,
		Metadata: map[string]string{
			payments.MetaTargetID:     club.ID,
			payments.MetaTargetName:   club.Name,
			payments.MetaSubjectEmail: identity.Email,
			payments.MetaPurchaseKind: string(models.PaymentPurposeMembership),
		},
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{URL: session.URL}, nil
}

func (s *CheckoutServiceImpl) initiateRegistration(ctx context.Context, eventID string, identity *auth.Claims) (*dto.CheckoutResponse, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if _, err := s.registrationRepo.Find(identity.Email, event.ID); err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	} else if !apperrors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, apperrors.StorageError(err)
	}

	// Free event: register directly.
	if !event.IsPaid || event.Fee <= 0 {
		registration := &models.EventRegistration{
			EventID:      event.ID,
			ClubID:       event.ClubID,
			UserEmail:    identity.Email,
			Status:       models.RegistrationStatusRegistered,
			RegisteredAt: time.Now(),
		}
		if err := s.paymentRepo.CommitRegistrationPurchase(nil, registration); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicateEntitlement) {
				return nil, apperrors.ErrAlreadyRegistered
			}
			return nil, apperrors.StorageError(err)
		}
		logger.CtxInfo(ctx, "free event registration granted", "event_id", event.ID, "user_email", identity.Email)
		return &dto.CheckoutResponse{Granted: true}, nil
	}

	amountMinor, err := MinorUnits(event.Fee)
	if err != nil {
		return nil, err
	}

	session, err := s.createSession(ctx, &payments.SessionRequest{
		Item: payments.CheckoutItem{
			Name:        fmt.Sprintf("%s Registration Fee", event.Title),
			AmountMinor: amountMinor,
			Currency:    s.config.Currency,
			Quantity:    1,
		},
		CustomerEmail: identity.Email,
		Metadata: map[string]string{
			payments.MetaTargetID:     event.ID,
			payments.MetaTargetName:   event.Title,
			payments.MetaSubjectEmail: identity.Email,
			payments.MetaPurchaseKind: string(models.PaymentPurposeEvent),
		},
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{URL: session.URL}, nil
}

func (s *CheckoutServiceImpl) createSession(ctx context.Context, req *payments.SessionRequest) (*payments.Session, error) {
	req.SuccessURL = s.config.SuccessURL
	req.CancelURL = s.config.CancelURL

	providerCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout)
	defer cancel()

	session, err := s.provider.CreateSession(providerCtx, req)
	if err != nil {
		logger.CtxWithError(ctx, "failed to create checkout session", err)
		return nil, apperrors.ProviderError(err)
	}
	return session, nil
}
