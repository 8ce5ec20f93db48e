package services

import (
	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

const featuredClubLimit = 6

type ClubService interface {
	ListApproved(page, pageSize int) (*dto.ClubListResponse, error)
	Get(id string) (*dto.ClubResponse, error)
	Featured() ([]dto.ClubResponse, error)
	Create(req *dto.CreateClubRequest, identity *auth.Claims) (*dto.ClubResponse, error)
	UpdateStatus(clubID string, req *dto.UpdateClubStatusRequest) error
}

type ClubServiceImpl struct {
	clubRepo repositories.ClubRepository
}

func NewClubService(clubRepo repositories.ClubRepository) ClubService {
	return &ClubServiceImpl{clubRepo: clubRepo}
}

func (s *ClubServiceImpl) ListApproved(page, pageSize int) (*dto.ClubListResponse, error) {
	offset := (page - 1) * pageSize
	clubs, total, err := s.clubRepo.FindApproved(pageSize, offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.ClubListResponse{
		Clubs:    clubsToResponse(clubs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ClubServiceImpl) Get(id string) (*dto.ClubResponse, error) {
	club, err := s.clubRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClubNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	resp := clubToResponse(club)
	return &resp, nil
}

func (s *ClubServiceImpl) Featured() ([]dto.ClubResponse, error) {
	clubs, err := s.clubRepo.FindFeatured(featuredClubLimit)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return clubsToResponse(clubs), nil
}

// Create registers a new club in pending status. It becomes visible to
// members only after an admin approves it.
func (s *ClubServiceImpl) Create(req *dto.CreateClubRequest, identity *auth.Claims) (*dto.ClubResponse, error) {
	club := &models.Club{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		MembershipFee: req.MembershipFee,
		ManagerEmail:  identity.Email,
		Status:        models.ClubStatusPending,
	}

	if err := s.clubRepo.Create(club); err != nil {
		return nil, apperrors.StorageError(err)
	}

	resp := clubToResponse(club)
	return &resp, nil
}

func (s *ClubServiceImpl) UpdateStatus(clubID string, req *dto.UpdateClubStatusRequest) error {
	status := models.ClubStatus(req.Status)
	if status != models.ClubStatusApproved && status != models.ClubStatusRejected {
		return apperrors.ErrInvalidClubState
	}

	if err := s.clubRepo.UpdateStatus(clubID, status); err != nil {
		if apperrors.Is(err, repositories.ErrClubNotFound) {
			return apperrors.ErrClubNotFound
		}
		return apperrors.StorageError(err)
	}
	return nil
}

func clubToResponse(club *models.Club) dto.ClubResponse {
	return dto.ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Location:      club.Location,
		MembershipFee: club.MembershipFee,
		ManagerEmail:  club.ManagerEmail,
		Status:        string(club.Status),
		CreatedAt:     club.CreatedAt,
	}
}

func clubsToResponse(clubs []models.Club) []dto.ClubResponse {
	result := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		result = append(result, clubToResponse(&clubs[i]))
	}
	return result
}
