package user

import (
	"context"
	"sync"
)

// MemoryRepo holds registered users in process memory.
type MemoryRepo struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepo(seed []User) *MemoryRepo {
	users := make([]User, len(seed))
	copy(users, seed)
	return &MemoryRepo{users: users}
}

// Create checks for a duplicate and appends under one lock, so two
// registrations of the same identity cannot both succeed.
func (r *MemoryRepo) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(u.Username, u.Email) {
		return ErrAlreadyExists
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.taken(username, email), nil
}

func (r *MemoryRepo) taken(username, email string) bool {
	for _, existing := range r.users {
		if existing.Username == username || existing.Email == email {
			return true
		}
	}
	return false
}

func (r *MemoryRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// Count reports how many users are registered.
func (r *MemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
