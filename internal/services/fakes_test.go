package services

import (
	"context"
	"fmt"
	"sync"

	"clubsphere_backend/internal/email"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/internal/repositories"
)

// In-memory fakes mirroring the repository sentinel behavior, including the
// duplicate-key translation done by the real gorm-backed implementations.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, exists := f.users[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdateRole(userID string, role models.UserRole) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.Role = role
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeClubRepo struct {
	clubs map[string]*models.Club
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{clubs: make(map[string]*models.Club)}
}

func (f *fakeClubRepo) FindByID(id string) (*models.Club, error) {
	club, ok := f.clubs[id]
	if !ok {
		return nil, repositories.ErrClubNotFound
	}
	return club, nil
}

func (f *fakeClubRepo) FindApproved(limit, offset int) ([]models.Club, int64, error) {
	var result []models.Club
	for _, c := range f.clubs {
		if c.Status == models.ClubStatusApproved {
			result = append(result, *c)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeClubRepo) FindFeatured(limit int) ([]models.Club, error) {
	clubs, _, err := f.FindApproved(limit, 0)
	return clubs, err
}

func (f *fakeClubRepo) Create(club *models.Club) error {
	if club.ID == "" {
		club.ID = fmt.Sprintf("club-%d", len(f.clubs)+1)
	}
	f.clubs[club.ID] = club
	return nil
}

func (f *fakeClubRepo) UpdateStatus(clubID string, status models.ClubStatus) error {
	club, ok := f.clubs[clubID]
	if !ok {
		return repositories.ErrClubNotFound
	}
	club.Status = status
	return nil
}

type fakeEventRepo struct {
	events map[string]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*models.Event)}
}

func (f *fakeEventRepo) FindByID(id string) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) FindAll(limit, offset int) ([]models.Event, int64, error) {
	var result []models.Event
	for _, e := range f.events {
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (f *fakeEventRepo) FindByClub(clubID string) ([]models.Event, error) {
	var result []models.Event
	for _, e := range f.events {
		if e.ClubID == clubID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (f *fakeEventRepo) Create(event *models.Event) error {
	if event.ID == "" {
		event.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	}
	f.events[event.ID] = event
	return nil
}

type fakeMembershipRepo struct {
	mu          sync.Mutex
	memberships []*models.Membership
}

func (f *fakeMembershipRepo) FindActive(userEmail, clubID string) (*models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.memberships {
		if m.UserEmail == userEmail && m.ClubID == clubID && m.Status == models.MembershipStatusActive {
			return m, nil
		}
	}
	return nil, repositories.ErrMembershipNotFound
}

func (f *fakeMembershipRepo) FindActiveByUser(userEmail string) ([]models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Membership
	for _, m := range f.memberships {
		if m.UserEmail == userEmail && m.Status == models.MembershipStatusActive {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (f *fakeMembershipRepo) ExpireOverdue() (int64, error) {
	return 0, nil
}

type fakeRegistrationRepo struct {
	mu            sync.Mutex
	registrations []*models.EventRegistration
}

func (f *fakeRegistrationRepo) Find(userEmail, eventID string) (*models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.registrations {
		if r.UserEmail == userEmail && r.EventID == eventID {
			return r, nil
		}
	}
	return nil, repositories.ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) FindByUser(userEmail string) ([]models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.EventRegistration
	for _, r := range f.registrations {
		if r.UserEmail == userEmail && r.Status == models.RegistrationStatusRegistered {
			result = append(result, *r)
		}
	}
	return result, nil
}

// fakePaymentRepo enforces the same uniqueness rules as the database:
// transaction id, one active membership per (user, club), one registration
// per (user, event).
type fakePaymentRepo struct {
	mu sync.Mutex

	payments         map[string]*models.Payment
	membershipRepo   *fakeMembershipRepo
	registrationRepo *fakeRegistrationRepo
}

func newFakePaymentRepo(m *fakeMembershipRepo, r *fakeRegistrationRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:         make(map[string]*models.Payment),
		membershipRepo:   m,
		registrationRepo: r,
	}
}

func (f *fakePaymentRepo) FindByTransactionID(transactionID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[transactionID]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	return payment, nil
}

func (f *fakePaymentRepo) FindByUserEmail(userEmail string, limit, offset int) ([]models.Payment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Payment
	for _, p := range f.payments {
		if p.UserEmail == userEmail {
			result = append(result, *p)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakePaymentRepo) FindAll(limit, offset int) ([]models.Payment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Payment
	for _, p := range f.payments {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (f *fakePaymentRepo) CommitMembershipPurchase(payment *models.Payment, membership *models.Membership) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if payment != nil {
		if _, exists := f.payments[payment.TransactionID]; exists {
			return repositories.ErrDuplicateTransaction
		}
	}
	if _, err := f.membershipRepo.FindActive(membership.UserEmail, membership.ClubID); err == nil {
		return repositories.ErrDuplicateEntitlement
	}

	if payment != nil {
		f.payments[payment.TransactionID] = payment
	}
	f.membershipRepo.mu.Lock()
	f.membershipRepo.memberships = append(f.membershipRepo.memberships, membership)
	f.membershipRepo.mu.Unlock()
	return nil
}

func (f *fakePaymentRepo) CommitRegistrationPurchase(payment *models.Payment, registration *models.EventRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if payment != nil {
		if _, exists := f.payments[payment.TransactionID]; exists {
			return repositories.ErrDuplicateTransaction
		}
	}
	if _, err := f.registrationRepo.Find(registration.UserEmail, registration.EventID); err == nil {
		return repositories.ErrDuplicateEntitlement
	}

	if payment != nil {
		f.payments[payment.TransactionID] = payment
	}
	f.registrationRepo.mu.Lock()
	f.registrationRepo.registrations = append(f.registrationRepo.registrations, registration)
	f.registrationRepo.mu.Unlock()
	return nil
}

type fakeProvider struct {
	createdRequests []*payments.SessionRequest
	sessions        map[string]*payments.SessionStatus
	createErr       error
	retrieveErr     error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sessions: make(map[string]*payments.SessionStatus)}
}

func (f *fakeProvider) CreateSession(ctx context.Context, req *payments.SessionRequest) (*payments.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdRequests = append(f.createdRequests, req)
	id := fmt.Sprintf("cs_test_%d", len(f.createdRequests))
	return &payments.Session{ID: id, URL: "https://checkout.test/" + id}, nil
}

func (f *fakeProvider) RetrieveSession(ctx context.Context, sessionID string) (*payments.SessionStatus, error) {
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, payments.ErrSessionNotFound
	}
	return session, nil
}

type fakeEmailProvider struct {
	sent []*email.Email
}

func (f *fakeEmailProvider) Send(e *email.Email) error {
	f.sent = append(f.sent, e)
	return nil
}
