package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type Role struct {
	ID   int64
	Name string
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	PhoneNumber  *string
	RoleID       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
