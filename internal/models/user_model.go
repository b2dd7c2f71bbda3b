package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPhotoURL = "https://api.dicebear.com/9.x/identicon/png?seed=devconnect"
	DefaultAbout    = "This is default description of the user"
)

// StringList stores a slice of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// IsStrongPassword reports whether a password meets the account rules:
// at least 8 characters with upper and lower case letters and a digit.
// Applied on signup and on password change.
func IsStrongPassword(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return len(password) >= 8 && hasUpper && hasLower && hasDigit
}

/** --------------------ENTITIES-------------------- */

// User represents a developer profile.
type User struct {
	ID        string         `gorm:"primaryKey;type:char(36)" json:"id"`
	FirstName string         `gorm:"not null" json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Age       int            `json:"age,omitempty"`
	Gender    string         `gorm:"type:varchar(10)" json:"gender,omitempty"`
	PhotoURL  string         `gorm:"type:text" json:"photoUrl"`
	About     string         `gorm:"type:text" json:"about"`
	Skills    StringList     `gorm:"type:text" json:"skills"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.PhotoURL == "" {
		u.PhotoURL = DefaultPhotoURL
	}
	if u.About == "" {
		u.About = DefaultAbout
	}
	return nil
}

// Summary strips credentials and contact details for feed/connection cards.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Gender:    u.Gender,
		PhotoURL:  u.PhotoURL,
		About:     u.About,
		Skills:    u.Skills,
	}
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Gender:    u.Gender,
		PhotoURL:  u.PhotoURL,
		About:     u.About,
		Skills:    u.Skills,
		CreatedAt: u.CreatedAt,
	}
}

/** -------------------- DTOs -------------------- */

// Request
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required,min=4"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EditProfileRequest carries only the fields a user may edit. Email and
// password changes go through their own endpoints.
type EditProfileRequest struct {
	FirstName *string    `json:"firstName" binding:"omitempty,min=4"`
	LastName  *string    `json:"lastName"`
	Age       *int       `json:"age" binding:"omitempty,gte=18"`
	Gender    *string    `json:"gender" binding:"omitempty,oneof=male female others"`
	PhotoURL  *string    `json:"photoUrl" binding:"omitempty,url"`
	About     *string    `json:"about"`
	Skills    StringList `json:"skills"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// Response
type UserResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Age       int        `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	PhotoURL  string     `json:"photoUrl"`
	About     string     `json:"about"`
	Skills    StringList `json:"skills"`
	CreatedAt time.Time  `json:"createdAt"`
}

type UserSummary struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Age       int        `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	PhotoURL  string     `json:"photoUrl"`
	About     string     `json:"about"`
	Skills    StringList `json:"skills"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
