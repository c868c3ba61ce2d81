package request

import (
	"rental-market/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) ToDomain() (user.Credentials, error) {
	return credentials(r.Email, r.Password)
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return credentials(r.Email, r.Password)
}

func credentials(email, pass string) (user.Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return user.Credentials{}, err
	}
	p, err := user.NewPassword(pass)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(e, p), nil
}
