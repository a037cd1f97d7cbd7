package models

import (
	"time"
)

// User is a back-office account. Passwords are stored only as bcrypt
// hashes and never serialize to JSON.
type User struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
}
