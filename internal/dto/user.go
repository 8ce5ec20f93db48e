package dto

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type MemberOverviewResponse struct {
	TotalClubsJoined      int             `json:"totalClubsJoined"`
	TotalEventsRegistered int             `json:"totalEventsRegistered"`
	UpcomingEvents        []UpcomingEvent `json:"upcomingEvents"`
}

type UpcomingEvent struct {
	EventTitle string    `json:"eventTitle"`
	EventDate  time.Time `json:"eventDate"`
	ClubName   string    `json:"clubName"`
}
