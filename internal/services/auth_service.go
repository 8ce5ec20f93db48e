package services

import (
	"time"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, jwtTTLMinutes int) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    time.Duration(jwtTTLMinutes) * time.Minute,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRoleMember
	if req.Role != "" {
		// Admin is never self-assignable.
		if req.Role != string(models.UserRoleMember) && req.Role != string(models.UserRoleClubManager) {
			return nil, apperrors.ErrInvalidUserRole
		}
		role = models.UserRole(req.Role)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Role:         role,
		PhotoURL:     req.PhotoURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageError(err)
	}

	return userToResponse(user), nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(user.ID, user.Email, string(user.Role), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        *userToResponse(user),
	}, nil
}

func userToResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		PhotoURL:  user.PhotoURL,
		CreatedAt: user.CreatedAt,
	}
}
