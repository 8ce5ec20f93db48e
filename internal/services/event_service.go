package services

import (
	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

type EventService interface {
	List(page, pageSize int) (*dto.EventListResponse, error)
	Get(id string) (*dto.EventResponse, error)
	ListByClub(clubID string) ([]dto.EventResponse, error)
	Create(req *dto.CreateEventRequest, identity *auth.Claims) (*dto.EventResponse, error)
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
	clubRepo  repositories.ClubRepository
}

func NewEventService(eventRepo repositories.EventRepository, clubRepo repositories.ClubRepository) EventService {
	return &EventServiceImpl{eventRepo: eventRepo, clubRepo: clubRepo}
}

func (s *EventServiceImpl) List(page, pageSize int) (*dto.EventListResponse, error) {
	offset := (page - 1) * pageSize
	events, total, err := s.eventRepo.FindAll(pageSize, offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.EventListResponse{
		Events:   eventsToResponse(events),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *EventServiceImpl) Get(id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	resp := eventToResponse(event)
	return &resp, nil
}

func (s *EventServiceImpl) ListByClub(clubID string) ([]dto.EventResponse, error) {
	if _, err := s.clubRepo.FindByID(clubID); err != nil {
		if apperrors.Is(err, repositories.ErrClubNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	events, err := s.eventRepo.FindByClub(clubID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return eventsToResponse(events), nil
}

// Create adds an event to a club. Only the club's manager or an admin may
// do so, and only for approved clubs.
func (s *EventServiceImpl) Create(req *dto.CreateEventRequest, identity *auth.Claims) (*dto.EventResponse, error) {
	club, err := s.clubRepo.FindByID(req.ClubID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClubNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if club.ManagerEmail != identity.Email && !auth.IsAdmin(identity) {
		return nil, apperrors.NewForbiddenError("Only the club manager can create events for this club")
	}
	if club.Status != models.ClubStatusApproved {
		return nil, apperrors.ErrClubNotApproved
	}

	if req.IsPaid && req.Fee <= 0 {
		return nil, apperrors.NewBadRequestError("Paid events require a positive fee")
	}

	event := &models.Event{
		ClubID:    club.ID,
		Title:     req.Title,
		EventDate: req.EventDate,
		Location:  req.Location,
		IsPaid:    req.IsPaid,
		Fee:       req.Fee,
	}
	if !event.IsPaid {
		event.Fee = 0
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, apperrors.StorageError(err)
	}

	resp := eventToResponse(event)
	return &resp, nil
}

func eventToResponse(event *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:        event.ID,
		ClubID:    event.ClubID,
		Title:     event.Title,
		EventDate: event.EventDate,
		Location:  event.Location,
		IsPaid:    event.IsPaid,
		Fee:       event.Fee,
		CreatedAt: event.CreatedAt,
	}
}

func eventsToResponse(events []models.Event) []dto.EventResponse {
	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, eventToResponse(&events[i]))
	}
	return result
}
