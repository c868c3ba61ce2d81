package state

import (
	"strings"
	"sync"

	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errs.New("email already registered")
	ErrUserNotFound   = errs.New("user not found")
)

// UserStore keeps registered accounts. Separate lock from the market
// aggregate: identity lookups never contend with booking operations.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) Create(u *user.User) error {
	key := emailKey(u.Email().Value())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	s.byID[u.ID()] = u
	s.byEmail[key] = u.ID()
	return nil
}

func (s *UserStore) ByID(id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) ByEmail(email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.byID[id], nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
