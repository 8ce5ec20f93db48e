package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	paymentRepo      *fakePaymentRepo
	membershipRepo   *fakeMembershipRepo
	registrationRepo *fakeRegistrationRepo
	eventRepo        *fakeEventRepo
	provider         *fakeProvider
	emailProvider    *fakeEmailProvider
	service          PaymentService
}

func newPaymentFixture() *paymentFixture {
	membershipRepo := &fakeMembershipRepo{}
	registrationRepo := &fakeRegistrationRepo{}
	paymentRepo := newFakePaymentRepo(membershipRepo, registrationRepo)
	eventRepo := newFakeEventRepo()
	provider := newFakeProvider()
	emailProvider := &fakeEmailProvider{}

	service := NewPaymentService(
		paymentRepo, membershipRepo, registrationRepo, eventRepo,
		provider, emailProvider, 5*time.Second,
	)

	return &paymentFixture{
		paymentRepo:      paymentRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		provider:         provider,
		emailProvider:    emailProvider,
		service:          service,
	}
}

func paidMembershipSession(sessionID, email, clubID, txID string) *payments.SessionStatus {
	return &payments.SessionStatus{
		ID:            sessionID,
		PaymentStatus: "paid",
		AmountTotal:   2500,
		TransactionID: txID,
		Metadata: map[string]string{
			payments.MetaTargetID:     clubID,
			payments.MetaTargetName:   "Chess Club",
			payments.MetaSubjectEmail: email,
			payments.MetaPurchaseKind: "membership",
		},
	}
}

func TestConfirm_MembershipHappyPath(t *testing.T) {
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = paidMembershipSession("cs_1", "alice@test.dev", "club-1", "pi_123")

	resp, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "pi_123", resp.TransactionID)

	payment, ok := f.paymentRepo.payments["pi_123"]
	require.True(t, ok, "ledger record must exist")
	assert.Equal(t, "alice@test.dev", payment.UserEmail)
	assert.Equal(t, 25.00, payment.Amount)
	assert.Equal(t, models.PaymentPurposeMembership, payment.Purpose)
	assert.Equal(t, "Chess Club", payment.TargetName)
	require.NotNil(t, payment.ClubID)
	assert.Equal(t, "club-1", *payment.ClubID)

	require.Len(t, f.membershipRepo.memberships, 1)
	m := f.membershipRepo.memberships[0]
	assert.Equal(t, models.MembershipStatusActive, m.Status)
	require.NotNil(t, m.PaymentID)
	assert.Equal(t, "pi_123", *m.PaymentID)
	assert.WithinDuration(t, m.JoinedAt.AddDate(1, 0, 0), m.ExpiresAt, time.Second)

	require.Len(t, f.emailProvider.sent, 1)
	assert.Equal(t, []string{"alice@test.dev"}, f.emailProvider.sent[0].To)
}

func TestConfirm_RegistrationHappyPath(t *testing.T) {
	f := newPaymentFixture()
	event := &models.Event{ClubID: "club-7", Title: "Summer Open", IsPaid: true, Fee: 15.50}
	event.ID = "event-1"
	f.eventRepo.events["event-1"] = event

	f.provider.sessions["cs_1"] = &payments.SessionStatus{
		ID:            "cs_1",
		PaymentStatus: "paid",
		AmountTotal:   1550,
		TransactionID: "pi_evt",
		Metadata: map[string]string{
			payments.MetaTargetID:     "event-1",
			payments.MetaTargetName:   "Summer Open",
			payments.MetaSubjectEmail: "alice@test.dev",
			payments.MetaPurchaseKind: "event",
		},
	}

	resp, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, f.registrationRepo.registrations, 1)
	r := f.registrationRepo.registrations[0]
	assert.Equal(t, "event-1", r.EventID)
	assert.Equal(t, "club-7", r.ClubID, "owning club comes from the event record")
	assert.Equal(t, models.RegistrationStatusRegistered, r.Status)

	payment := f.paymentRepo.payments["pi_evt"]
	require.NotNil(t, payment)
	require.NotNil(t, payment.EventID)
	assert.Equal(t, "event-1", *payment.EventID)
	assert.Equal(t, 15.50, payment.Amount)
}

func TestConfirm_SecondCallIsIdempotent(t *testing.T) {
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = paidMembershipSession("cs_1", "alice@test.dev", "club-1", "pi_123")

	first, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)

	assert.True(t, second.Success)
	assert.Equal(t, "pi_123", second.TransactionID)
	assert.Equal(t, "Payment already processed", second.Message)

	assert.Len(t, f.paymentRepo.payments, 1, "no second ledger record")
	assert.Len(t, f.membershipRepo.memberships, 1, "no second membership")
	assert.Len(t, f.emailProvider.sent, 1, "no second receipt")
}

func TestConfirm_ConcurrentConfirmationsCommitOnce(t *testing.T) {
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = paidMembershipSession("cs_1", "alice@test.dev", "club-1", "pi_123")

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*struct {
		success bool
		err     error
	}, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
			r := &struct {
				success bool
				err     error
			}{err: err}
			if resp != nil {
				r.success = resp.Success
			}
			results[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NoError(t, r.err)
		assert.True(t, r.success, "every caller observes success")
	}
	assert.Len(t, f.paymentRepo.payments, 1)
	assert.Len(t, f.membershipRepo.memberships, 1)
}

func TestConfirm_NotPaidIsNotAnError(t *testing.T) {
	f := newPaymentFixture()
	session := paidMembershipSession("cs_1", "alice@test.dev", "club-1", "")
	session.PaymentStatus = "unpaid"
	f.provider.sessions["cs_1"] = session

	resp, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Empty(t, f.paymentRepo.payments)
	assert.Empty(t, f.membershipRepo.memberships)
}

func TestConfirm_ForeignSessionIsForbidden(t *testing.T) {
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = paidMembershipSession("cs_1", "alice@test.dev", "club-1", "pi_123")

	_, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("mallory@test.dev"))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
	assert.Empty(t, f.paymentRepo.payments, "nothing written for a foreign session")
	assert.Empty(t, f.membershipRepo.memberships)
}

func TestConfirm_UnknownSession(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.service.Confirm(context.Background(), "cs_missing", memberClaims("alice@test.dev"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestConfirm_MissingSessionID(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.service.Confirm(context.Background(), "", memberClaims("alice@test.dev"))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestConfirm_MalformedMetadata(t *testing.T) {
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = &payments.SessionStatus{
		ID:            "cs_1",
		PaymentStatus: "paid",
		TransactionID: "pi_123",
		Metadata:      map[string]string{payments.MetaSubjectEmail: "alice@test.dev"},
	}

	_, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestConfirm_ProviderFailureIsRetryable(t *testing.T) {
	f := newPaymentFixture()
	f.provider.retrieveErr = context.DeadlineExceeded

	_, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodePaymentProviderError, appErr.Code)
	assert.Empty(t, f.paymentRepo.payments)
}

func TestConfirm_ExistingEntitlementReturnsSuccess(t *testing.T) {
	// The entitlement exists under another payment (or a free grant), so the
	// confirmation reports success without a second grant.
	f := newPaymentFixture()
	f.provider.sessions["cs_1"] = paidMembershipSession("cs_1", "alice@test.dev", "club-1", "pi_new")
	f.membershipRepo.memberships = append(f.membershipRepo.memberships, &models.Membership{
		UserEmail: "alice@test.dev",
		ClubID:    "club-1",
		Status:    models.MembershipStatusActive,
	})

	resp, err := f.service.Confirm(context.Background(), "cs_1", memberClaims("alice@test.dev"))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Payment already processed", resp.Message)
	assert.Len(t, f.membershipRepo.memberships, 1)
}

func TestHistory_NonAdminReadsOwnOnly(t *testing.T) {
	f := newPaymentFixture()
	f.paymentRepo.payments["pi_a"] = &models.Payment{TransactionID: "pi_a", UserEmail: "alice@test.dev", Amount: 10}
	f.paymentRepo.payments["pi_b"] = &models.Payment{TransactionID: "pi_b", UserEmail: "bob@test.dev", Amount: 20}

	records, total, err := f.service.History("bob@test.dev", memberClaims("alice@test.dev"), 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "alice@test.dev", records[0].UserEmail)
}

func TestHistory_AdminReadsAnyUser(t *testing.T) {
	f := newPaymentFixture()
	f.paymentRepo.payments["pi_b"] = &models.Payment{TransactionID: "pi_b", UserEmail: "bob@test.dev", Amount: 20}

	admin := &auth.Claims{Sub: "admin-1", Email: "admin@test.dev", Role: auth.RoleAdmin}
	records, total, err := f.service.History("bob@test.dev", admin, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "bob@test.dev", records[0].UserEmail)
}
