package model

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

type UserStatus string

const (
	StatusPending  UserStatus = "PENDING"
	StatusApproved UserStatus = "APPROVED"
	StatusRejected UserStatus = "REJECTED"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:100;unique;not null" json:"email"`
	Password       string     `gorm:"size:100;not null" json:"-"`
	Role           UserRole   `gorm:"type:enum('ADMIN','USER');default:'USER'" json:"role"`
	Status         UserStatus `gorm:"type:enum('PENDING','APPROVED','REJECTED');default:'APPROVED'" json:"status"`
	ProfilePicture string     `gorm:"size:255" json:"profilePicture"`
	LastLogin      time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen       time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`

	// Password reset flow
	ResetToken        string     `gorm:"size:64;index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserIdentity is the safe user shape returned by the API: everything but
// credentials and reset state.
type UserIdentity struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	LastSeen       time.Time  `json:"lastSeen"`
}

func (u *User) Identity() UserIdentity {
	return UserIdentity{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Status:         u.Status,
		ProfilePicture: u.ProfilePicture,
		LastSeen:       u.LastSeen,
	}
}
