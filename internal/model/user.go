package model

type User struct {
	Base
	Name         string  `db:"name" json:"name"`
	Email        string  `db:"email" json:"email"`
	Avatar       *string `db:"avatar" json:"avatar,omitempty"`
	PasswordHash string  `db:"password_hash" json:"-"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
