package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// Profile holds the optional display fields of a user. It is embedded in the
// user document and owned exclusively by it.
type Profile struct {
	Bio       string   `bson:"bio" json:"bio"`
	Skills    []string `bson:"skills" json:"skills"`
	PhotoURL  string   `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	ResumeURL string   `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`
}

// User represents an account in the system
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string        `bson:"fullname" json:"fullname"`
	Email        string        `bson:"email" json:"email"`
	PhoneNumber  string        `bson:"phone_number" json:"phoneNumber"`
	PasswordHash string        `bson:"password_hash" json:"-"` // Do not expose password hash in JSON responses
	Role         string        `bson:"role" json:"role"`
	Profile      Profile       `bson:"profile" json:"profile"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// SanitizedUser is the view of a user returned to clients. It carries no
// credential material.
type SanitizedUser struct {
	ID          string  `json:"_id"`
	FullName    string  `json:"fullname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        string  `json:"role"`
	Profile     Profile `json:"profile"`
}

// Sanitize strips the password hash and internal fields from a user record.
func (u *User) Sanitize() *SanitizedUser {
	return &SanitizedUser{
		ID:          u.ID.Hex(),
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile:     u.Profile,
	}
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleRecruiter
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	FullName    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=student recruiter"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=student recruiter"`
}

// UpdateProfileRequest carries the optional profile fields. Pointers allow
// partial updates: absent fields keep their stored value.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullname,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Skills      *string `json:"skills,omitempty"` // comma-delimited, parsed before storage
}
