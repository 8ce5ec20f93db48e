package services

import (
	"testing"
	"time"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventFixture() (*fakeClubRepo, *fakeEventRepo, EventService) {
	clubRepo := newFakeClubRepo()
	eventRepo := newFakeEventRepo()
	return clubRepo, eventRepo, NewEventService(eventRepo, clubRepo)
}

func approvedClub(clubRepo *fakeClubRepo, id, managerEmail string) {
	club := &models.Club{Name: "Chess Club", ManagerEmail: managerEmail, Status: models.ClubStatusApproved}
	club.ID = id
	clubRepo.clubs[id] = club
}

func TestCreateEvent_ByManager(t *testing.T) {
	clubRepo, eventRepo, service := newEventFixture()
	approvedClub(clubRepo, "club-1", "manager@test.dev")

	manager := &auth.Claims{Sub: "u1", Email: "manager@test.dev", Role: auth.RoleClubManager}
	event, err := service.Create(&dto.CreateEventRequest{
		ClubID:    "club-1",
		Title:     "Winter Cup",
		EventDate: time.Now().Add(72 * time.Hour),
		IsPaid:    true,
		Fee:       12.50,
	}, manager)
	require.NoError(t, err)

	assert.Equal(t, "club-1", event.ClubID)
	assert.True(t, event.IsPaid)
	assert.Equal(t, 12.50, event.Fee)
	assert.Len(t, eventRepo.events, 1)
}

func TestCreateEvent_ForeignManagerForbidden(t *testing.T) {
	clubRepo, _, service := newEventFixture()
	approvedClub(clubRepo, "club-1", "manager@test.dev")

	other := &auth.Claims{Sub: "u2", Email: "other@test.dev", Role: auth.RoleClubManager}
	_, err := service.Create(&dto.CreateEventRequest{
		ClubID: "club-1", Title: "Winter Cup", EventDate: time.Now(),
	}, other)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCreateEvent_AdminAllowedForAnyClub(t *testing.T) {
	clubRepo, _, service := newEventFixture()
	approvedClub(clubRepo, "club-1", "manager@test.dev")

	admin := &auth.Claims{Sub: "u3", Email: "admin@test.dev", Role: auth.RoleAdmin}
	_, err := service.Create(&dto.CreateEventRequest{
		ClubID: "club-1", Title: "Winter Cup", EventDate: time.Now(),
	}, admin)
	assert.NoError(t, err)
}

func TestCreateEvent_UnapprovedClub(t *testing.T) {
	clubRepo, _, service := newEventFixture()
	club := &models.Club{Name: "Chess Club", ManagerEmail: "manager@test.dev", Status: models.ClubStatusPending}
	club.ID = "club-1"
	clubRepo.clubs["club-1"] = club

	manager := &auth.Claims{Sub: "u1", Email: "manager@test.dev", Role: auth.RoleClubManager}
	_, err := service.Create(&dto.CreateEventRequest{
		ClubID: "club-1", Title: "Winter Cup", EventDate: time.Now(),
	}, manager)
	assert.ErrorIs(t, err, apperrors.ErrClubNotApproved)
}

func TestCreateEvent_PaidWithoutFee(t *testing.T) {
	clubRepo, _, service := newEventFixture()
	approvedClub(clubRepo, "club-1", "manager@test.dev")

	manager := &auth.Claims{Sub: "u1", Email: "manager@test.dev", Role: auth.RoleClubManager}
	_, err := service.Create(&dto.CreateEventRequest{
		ClubID: "club-1", Title: "Winter Cup", EventDate: time.Now(), IsPaid: true,
	}, manager)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestCreateEvent_FreeEventFeeZeroed(t *testing.T) {
	clubRepo, _, service := newEventFixture()
	approvedClub(clubRepo, "club-1", "manager@test.dev")

	manager := &auth.Claims{Sub: "u1", Email: "manager@test.dev", Role: auth.RoleClubManager}
	event, err := service.Create(&dto.CreateEventRequest{
		ClubID: "club-1", Title: "Open Day", EventDate: time.Now(), IsPaid: false, Fee: 9.99,
	}, manager)
	require.NoError(t, err)
	assert.Zero(t, event.Fee)
}
