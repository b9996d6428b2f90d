// Package identity keeps the registered users. The registry is persisted to
// local storage under a fixed namespace so accounts survive restarts, unlike
// the ledger which always reseeds.
package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinebook/internal/domain"
	"cinebook/internal/localstore"
)

const storageNamespace = "auth-storage"

type Registry struct {
	mu    sync.Mutex
	store *localstore.Store
	users []*domain.User

	now func() time.Time
}

func NewRegistry(store *localstore.Store) (*Registry, error) {
	r := &Registry{
		store: store,
		now:   time.Now,
	}

	err := store.Load(storageNamespace, &r.users)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Create registers a new user. Emails are unique across users; a duplicate
// fails with ErrUserAlreadyExists and changes nothing.
func (r *Registry) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrUserAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.now()

	r.users = append(r.users, user)

	err := r.store.Save(storageNamespace, r.users)
	if err != nil {
		r.users = r.users[:len(r.users)-1]
		return err
	}

	return nil
}

func (r *Registry) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (r *Registry) GetById(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}
