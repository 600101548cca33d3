package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user account is suspended")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role determines what a user is allowed to do in the system.
type Role string

const (
	RoleUser          Role = "user"
	RoleFacilityOwner Role = "facility_owner"
	RoleAdmin         Role = "admin"
)

// ParseRole validates a role string coming from the API.
// Admin accounts cannot be self-registered, so it only accepts the two public roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleFacilityOwner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents an account in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     *string
	Role         Role
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	Role     string
	IsActive *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
