package models

type UserRole string

const (
	UserRoleMember      UserRole = "member"
	UserRoleClubManager UserRole = "clubManager"
	UserRoleAdmin       UserRole = "admin"
)

type ClubStatus string

const (
	ClubStatusPending  ClubStatus = "pending"
	ClubStatusApproved ClubStatus = "approved"
	ClubStatusRejected ClubStatus = "rejected"
)

type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusExpired MembershipStatus = "expired"
)

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusAttended   RegistrationStatus = "attended"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

type PaymentPurpose string

const (
	PaymentPurposeMembership PaymentPurpose = "membership"
	PaymentPurposeEvent      PaymentPurpose = "event"
)
