package dto

import "time"

type CreateEventRequest struct {
	ClubID    string    `json:"clubId" binding:"required" validate:"required,uuid4"`
	Title     string    `json:"title" binding:"required" validate:"required,min=2,max=200"`
	EventDate time.Time `json:"eventDate" binding:"required" validate:"required"`
	Location  string    `json:"location" validate:"max=200"`
	IsPaid    bool      `json:"isPaid"`
	Fee       float64   `json:"fee" validate:"gte=0"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"clubId"`
	Title     string    `json:"title"`
	EventDate time.Time `json:"eventDate"`
	Location  string    `json:"location,omitempty"`
	IsPaid    bool      `json:"isPaid"`
	Fee       float64   `json:"fee"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
