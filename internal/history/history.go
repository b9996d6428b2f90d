// Package history tracks recently viewed movies, most recent first, capped at
// twenty entries. Persisted to local storage under its own namespace,
// independent of the ledger's state.
package history

import (
	"context"
	"sync"
	"time"

	"cinebook/internal/domain"
	"cinebook/internal/localstore"
)

const (
	storageNamespace = "history-storage"
	maxEntries       = 20
)

type Recorder struct {
	mu      sync.Mutex
	store   *localstore.Store
	entries []domain.ViewedMovie

	now func() time.Time
}

func NewRecorder(store *localstore.Store) (*Recorder, error) {
	r := &Recorder{
		store: store,
		now:   time.Now,
	}

	err := store.Load(storageNamespace, &r.entries)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Add prepends a viewed entry. Adding beyond the cap drops the oldest entry.
func (r *Recorder) Add(ctx context.Context, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := domain.ViewedMovie{MovieID: movieID, ViewedAt: r.now()}

	entries := make([]domain.ViewedMovie, 0, len(r.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, r.entries...)

	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	err := r.store.Save(storageNamespace, entries)
	if err != nil {
		return err
	}

	r.entries = entries

	return nil
}

// GetAll returns a copy of the entries, most recent first.
func (r *Recorder) GetAll(ctx context.Context) ([]domain.ViewedMovie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.ViewedMovie, len(r.entries))
	copy(entries, r.entries)

	return entries, nil
}
