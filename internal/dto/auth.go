package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=member clubManager"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}
