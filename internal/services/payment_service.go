package services

import (
	"context"
	"fmt"
	"time"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/email"
	"clubsphere_backend/internal/logger"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

const paymentStatusPaid = "paid"

// PaymentService resolves completed checkout sessions into committed
// entitlements. Confirm is safe to call any number of times for the same
// session: the transaction id is the idempotency key and the database
// unique indexes are the final guard under concurrent confirmations.
type PaymentService interface {
	Confirm(ctx context.Context, sessionID string, identity *auth.Claims) (*dto.ConfirmResponse, error)
	History(userEmail string, requester *auth.Claims, page, pageSize int) ([]dto.PaymentResponse, int64, error)
}

type PaymentServiceImpl struct {
	paymentRepo      repositories.PaymentRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	eventRepo        repositories.EventRepository
	provider         payments.Provider
	emailProvider    email.Provider // optional, receipts are best effort
	providerTimeout  time.Duration
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	eventRepo repositories.EventRepository,
	provider payments.Provider,
	emailProvider email.Provider,
	providerTimeout time.Duration,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:      paymentRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		provider:         provider,
		emailProvider:    emailProvider,
		providerTimeout:  providerTimeout,
	}
}

func (s *PaymentServiceImpl) Confirm(ctx context.Context, sessionID string, identity *auth.Claims) (*dto.ConfirmResponse, error) {
	if sessionID == "" {
		return nil, apperrors.NewBadRequestError("Missing session_id")
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	session, err := s.provider.RetrieveSession(providerCtx, sessionID)
	if err != nil {
		if apperrors.Is(err, payments.ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		// Includes timeouts: retryable, not a payment failure.
		logger.CtxWithError(ctx, "failed to retrieve checkout session", err, "session_id", sessionID)
		return nil, apperrors.ProviderError(err)
	}

	subjectEmail := session.Metadata[payments.MetaSubjectEmail]
	targetID := session.Metadata[payments.MetaTargetID]
	kind := models.PaymentPurpose(session.Metadata[payments.MetaPurchaseKind])
	if subjectEmail == "" || targetID == "" || (kind != models.PaymentPurposeMembership && kind != models.PaymentPurposeEvent) {
		return nil, apperrors.ErrInvalidSession
	}

	// Not yet paid is a legitimate polling outcome, not a fault.
	if session.PaymentStatus != paymentStatusPaid {
		return &dto.ConfirmResponse{Success: false}, nil
	}

	// The session must belong to the caller.
	if identity == nil || identity.Email != subjectEmail {
		return nil, apperrors.NewForbiddenError("Checkout session does not belong to the caller")
	}

	transactionID := session.TransactionID
	if transactionID == "" {
		return nil, apperrors.ErrInvalidSession
	}

	// Idempotency: a prior confirmation already committed this transaction.
	if _, err := s.paymentRepo.FindByTransactionID(transactionID); err == nil {
		return &dto.ConfirmResponse{
			Success:       true,
			TransactionID: transactionID,
			Message:       "Payment already processed",
		}, nil
	} else if !apperrors.Is(err, repositories.ErrPaymentNotFound) {
		return nil, apperrors.StorageError(err)
	}

	// All committed fields come from the provider's session, never from the
	// client request.
	payment := &models.Payment{
		TransactionID: transactionID,
		UserEmail:     subjectEmail,
		Amount:        MajorUnits(session.AmountTotal),
		Purpose:       kind,
		TargetName:    session.Metadata[payments.MetaTargetName],
		Status:        session.PaymentStatus,
	}

	var commitErr error
	switch kind {
	case models.PaymentPurposeMembership:
		commitErr = s.commitMembership(payment, subjectEmail, targetID, transactionID)
	case models.PaymentPurposeEvent:
		commitErr = s.commitRegistration(payment, subjectEmail, targetID, transactionID)
	}
	if commitErr != nil {
		if duplicate, resp := asDuplicateCommit(commitErr, transactionID); duplicate {
			return resp, nil
		}
		return nil, commitErr
	}

	s.sendReceipt(ctx, payment)

	logger.CtxInfo(ctx, "payment confirmed",
		"transaction_id", transactionID,
		"purpose", string(kind),
		"user_email", subjectEmail,
	)

	return &dto.ConfirmResponse{Success: true, TransactionID: transactionID}, nil
}

func (s *PaymentServiceImpl) commitMembership(payment *models.Payment, userEmail, clubID, transactionID string) error {
	// Secondary idempotency check: the entitlement may exist under another
	// payment record. The unique index remains the authoritative guard.
	if _, err := s.membershipRepo.FindActive(userEmail, clubID); err == nil {
		return repositories.ErrDuplicateEntitlement
	} else if !apperrors.Is(err, repositories.ErrMembershipNotFound) {
		return apperrors.StorageError(err)
	}

	payment.ClubID = &clubID

	now := time.Now()
	membership := &models.Membership{
		UserEmail: userEmail,
		ClubID:    clubID,
		Status:    models.MembershipStatusActive,
		PaymentID: &transactionID,
		JoinedAt:  now,
		// Calendar year, matching the user-facing "annual" wording.
		ExpiresAt: now.AddDate(1, 0, 0),
	}

	if err := s.paymentRepo.CommitMembershipPurchase(payment, membership); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateTransaction) || apperrors.Is(err, repositories.ErrDuplicateEntitlement) {
			return err
		}
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) commitRegistration(payment *models.Payment, userEmail, eventID, transactionID string) error {
	if _, err := s.registrationRepo.Find(userEmail, eventID); err == nil {
		return repositories.ErrDuplicateEntitlement
	} else if !apperrors.Is(err, repositories.ErrRegistrationNotFound) {
		return apperrors.StorageError(err)
	}

	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return apperrors.StorageError(err)
	}

	payment.EventID = &eventID

	registration := &models.EventRegistration{
		EventID:      event.ID,
		ClubID:       event.ClubID,
		UserEmail:    userEmail,
		Status:       models.RegistrationStatusRegistered,
		PaymentID:    &transactionID,
		RegisteredAt: time.Now(),
	}

	if err := s.paymentRepo.CommitRegistrationPurchase(payment, registration); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateTransaction) || apperrors.Is(err, repositories.ErrDuplicateEntitlement) {
			return err
		}
		return apperrors.StorageError(err)
	}
	return nil
}

// asDuplicateCommit converts a duplicate-key commit failure into the
// idempotent success response: a concurrent confirmation won the race and
// the entitlement exists.
func asDuplicateCommit(err error, transactionID string) (bool, *dto.ConfirmResponse) {
	if apperrors.Is(err, repositories.ErrDuplicateTransaction) || apperrors.Is(err, repositories.ErrDuplicateEntitlement) {
		return true, &dto.ConfirmResponse{
			Success:       true,
			TransactionID: transactionID,
			Message:       "Payment already processed",
		}
	}
	return false, nil
}

func (s *PaymentServiceImpl) History(userEmail string, requester *auth.Claims, page, pageSize int) ([]dto.PaymentResponse, int64, error) {
	// Non-admins may only read their own history.
	if userEmail == "" || (userEmail != requester.Email && !auth.IsAdmin(requester)) {
		userEmail = requester.Email
	}

	offset := (page - 1) * pageSize
	records, total, err := s.paymentRepo.FindByUserEmail(userEmail, pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.StorageError(err)
	}

	result := make([]dto.PaymentResponse, 0, len(records))
	for _, p := range records {
		result = append(result, dto.PaymentResponse{
			TransactionID: p.TransactionID,
			UserEmail:     p.UserEmail,
			Amount:        p.Amount,
			Purpose:       string(p.Purpose),
			TargetName:    p.TargetName,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt,
		})
	}
	return result, total, nil
}

func (s *PaymentServiceImpl) sendReceipt(ctx context.Context, payment *models.Payment) {
	if s.emailProvider == nil {
		return
	}

	subject := "ClubSphere payment receipt"
	body := fmt.Sprintf(
		"We received your payment of %.2f for %s (%s).\nTransaction: %s\n",
		payment.Amount, payment.TargetName, payment.Purpose, payment.TransactionID,
	)

	if err := s.emailProvider.Send(&email.Email{
		To:      []string{payment.UserEmail},
		Subject: subject,
		Body:    body,
	}); err != nil {
		logger.CtxWarn(ctx, "failed to send payment receipt", "error", err.Error(), "user_email", payment.UserEmail)
	}
}
