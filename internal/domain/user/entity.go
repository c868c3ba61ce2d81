package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a market participant identity. Ownership and renter checks key
// off the id; the account itself carries no market state.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	verified     bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		verified:     true,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsVerified() bool     { return u.verified }
func (u *User) CreatedAt() time.Time { return u.createdAt }
