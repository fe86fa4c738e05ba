package models

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	ID    int64
	Name  string
	Email string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *User
	Token string
}
