package content

import (
	"sync/atomic"
)

// Store holds the current catalog and lets it be swapped while requests read it
type Store struct {
	path    string
	current atomic.Pointer[Catalog]
}

// NewStore loads the catalog at path into a new Store
func NewStore(path string) (*Store, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(c)
	return s, nil
}

// NewStaticStore wraps an already loaded catalog. Reload keeps it unchanged.
func NewStaticStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Catalog returns the catalog currently served
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Reload re-reads the content file. On error the previous catalog stays in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	c, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(c)
	return nil
}

// Path returns the content file backing the store
func (s *Store) Path() string {
	return s.path
}
