package usecase

import (
	"context"
	"errors"

	"rental-market/internal/domain/user"
	"rental-market/internal/infra/state"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/jwt"
	"rental-market/internal/pkg/password"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthUseCase interface {
	Register(ctx context.Context, credentials user.Credentials) (*queries.UserView, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.UserView, error)
	GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*queries.UserView, error)
}

type authUseCaseImpl struct {
	users      *state.UserStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(users *state.UserStore, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Register(_ context.Context, credentials user.Credentials) (*queries.UserView, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(credentials.Email(), hash, a.clock.Now())
	if err := a.users.Create(u); err != nil {
		if errors.Is(err, state.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return userViewOf(u), nil
}

func (a *authUseCaseImpl) Login(_ context.Context, credentials user.Credentials) (string, *queries.UserView, error) {
	u, err := a.users.ByEmail(credentials.Email().Value())
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, userViewOf(u), nil
}

func (a *authUseCaseImpl) GetCurrentUser(_ context.Context, accountID uuid.UUID) (*queries.UserView, error) {
	u, err := a.users.ByID(accountID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return userViewOf(u), nil
}

func userViewOf(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Verified:  u.IsVerified(),
		CreatedAt: u.CreatedAt(),
	}
}
