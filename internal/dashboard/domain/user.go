package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is a platform account. Province and District are optional.
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"` // Never expose password in JSON
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	PhoneNumber string         `json:"phone_number"`
	Role        Role           `json:"role" gorm:"type:varchar(32);not null;index"`
	Active      bool           `json:"active" gorm:"not null;index"`
	Province    *Province      `json:"province,omitempty" gorm:"type:varchar(32);index"`
	District    *District      `json:"district,omitempty" gorm:"type:varchar(32);index"`
	LastLogin   *time.Time     `json:"last_login,omitempty"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserSummary is the projection of User returned by drill-down listings.
// It never carries credential material.
type UserSummary struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        Role       `json:"role"`
	Active      bool       `json:"active"`
	Province    *Province  `json:"province,omitempty"`
	District    *District  `json:"district,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// Summary projects u into a UserSummary
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Active:      u.Active,
		Province:    u.Province,
		District:    u.District,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLogin:   u.LastLogin,
	}
}

// Summaries projects a slice of users. The result is never nil.
func Summaries(users []User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
