package dto

import "time"

type CreateClubRequest struct {
	Name          string  `json:"name" binding:"required" validate:"required,min=2,max=200"`
	Description   string  `json:"description" validate:"max=2000"`
	Location      string  `json:"location" validate:"max=200"`
	MembershipFee float64 `json:"membershipFee" validate:"gte=0"`
}

type UpdateClubStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=approved rejected"`
}

type ClubResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	MembershipFee float64   `json:"membershipFee"`
	ManagerEmail  string    `json:"managerEmail"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ClubListResponse struct {
	Clubs    []ClubResponse `json:"clubs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
