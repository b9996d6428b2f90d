// Package localstore is a namespaced key-value store backed by JSON files on
// disk, one file per namespace. It fills the role browser local storage plays
// for a client-side app: small fixed namespaces, whole-value reads and writes.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Load unmarshals the value stored under namespace into v. A namespace that
// has never been saved leaves v untouched and returns nil.
func (s *Store) Load(namespace string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading namespace %q: %w", namespace, err)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("decoding namespace %q: %w", namespace, err)
	}

	return nil
}

// Save replaces the value stored under namespace. The file is written to a
// temp path first and renamed into place so readers never observe a partial
// write.
func (s *Store) Save(namespace string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding namespace %q: %w", namespace, err)
	}

	tmp, err := os.CreateTemp(s.dir, namespace+"-*.tmp")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path(namespace))
}

func (s *Store) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}
