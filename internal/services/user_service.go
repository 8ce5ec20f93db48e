package services

import (
	"time"

	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

type UserService interface {
	GetByEmail(email string) (*dto.UserResponse, error)
	MemberOverview(email string) (*dto.MemberOverviewResponse, error)
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	eventRepo        repositories.EventRepository
	clubRepo         repositories.ClubRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	eventRepo repositories.EventRepository,
	clubRepo repositories.ClubRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		clubRepo:         clubRepo,
	}
}

func (s *UserServiceImpl) GetByEmail(email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	return userToResponse(user), nil
}

func (s *UserServiceImpl) MemberOverview(email string) (*dto.MemberOverviewResponse, error) {
	memberships, err := s.membershipRepo.FindActiveByUser(email)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	registrations, err := s.registrationRepo.FindByUser(email)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	now := time.Now()
	upcoming := make([]dto.UpcomingEvent, 0)
	for _, reg := range registrations {
		event, err := s.eventRepo.FindByID(reg.EventID)
		if err != nil {
			// Registration may outlive a deleted event; skip it.
			continue
		}
		if event.EventDate.Before(now) {
			continue
		}

		clubName := ""
		if club, err := s.clubRepo.FindByID(event.ClubID); err == nil {
			clubName = club.Name
		}

		upcoming = append(upcoming, dto.UpcomingEvent{
			EventTitle: event.Title,
			EventDate:  event.EventDate,
			ClubName:   clubName,
		})
	}

	return &dto.MemberOverviewResponse{
		TotalClubsJoined:      len(memberships),
		TotalEventsRegistered: len(registrations),
		UpcomingEvents:        upcoming,
	}, nil
}
