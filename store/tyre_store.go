package store

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/houranii/tyreshop/models"
)

// TyreStore publishes the catalog as immutable snapshots. Every write
// builds a new slice and bumps the version; readers holding an older
// snapshot keep a consistent view.
type TyreStore struct {
	mu        sync.RWMutex
	tyres     []models.Tyre
	version   uint64
	listeners []func(version uint64)
}

func NewTyreStore(seed []models.Tyre) *TyreStore {
	tyres := make([]models.Tyre, len(seed))
	for i, t := range seed {
		tyres[i] = t.Clone()
	}
	return &TyreStore{tyres: tyres, version: 1}
}

// Snapshot returns the current catalog and its version. Callers must not
// modify the returned records.
func (s *TyreStore) Snapshot() ([]models.Tyre, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tyres, s.version
}

func (s *TyreStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// OnPublish registers fn to run after every catalog change.
func (s *TyreStore) OnPublish(fn func(version uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *TyreStore) GetByID(id string) (models.Tyre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tyres[i], nil
	}
	return models.Tyre{}, fmt.Errorf("tyre %s: %w", id, ErrTyreNotFound)
}

// Create appends t. An empty ID gets the next numeric id.
func (s *TyreStore) Create(t models.Tyre) (models.Tyre, error) {
	s.mu.Lock()
	if t.ID == "" {
		t.ID = s.nextID()
	} else if s.indexOf(t.ID) >= 0 {
		s.mu.Unlock()
		return models.Tyre{}, fmt.Errorf("tyre %s: %w", t.ID, ErrDuplicateID)
	}
	t = t.Clone()
	next := make([]models.Tyre, len(s.tyres), len(s.tyres)+1)
	copy(next, s.tyres)
	next = append(next, t)
	fns, v := s.publish(next)
	s.mu.Unlock()

	notify(fns, v)
	return t, nil
}

// Update applies edit to a private copy of the record and publishes it
// in place of the old one. An edit error aborts without publishing.
func (s *TyreStore) Update(id string, edit func(*models.Tyre) error) (models.Tyre, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Tyre{}, fmt.Errorf("tyre %s: %w", id, ErrTyreNotFound)
	}
	replacement := s.tyres[i].Clone()
	if err := edit(&replacement); err != nil {
		s.mu.Unlock()
		return models.Tyre{}, err
	}
	replacement.ID = id

	next := make([]models.Tyre, len(s.tyres))
	copy(next, s.tyres)
	next[i] = replacement
	fns, v := s.publish(next)
	s.mu.Unlock()

	notify(fns, v)
	return replacement, nil
}

func (s *TyreStore) Delete(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("tyre %s: %w", id, ErrTyreNotFound)
	}
	next := make([]models.Tyre, 0, len(s.tyres)-1)
	next = append(next, s.tyres[:i]...)
	next = append(next, s.tyres[i+1:]...)
	fns, v := s.publish(next)
	s.mu.Unlock()

	notify(fns, v)
	return nil
}

// StocksLocation reports whether any tyre holds units at loc.
func (s *TyreStore) StocksLocation(loc string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tyres {
		if t.Stock[loc] > 0 {
			return true
		}
	}
	return false
}

// publish must be called with mu held. It returns the listeners to run
// once the lock is released.
func (s *TyreStore) publish(next []models.Tyre) ([]func(uint64), uint64) {
	s.tyres = next
	s.version++
	return append([]func(uint64){}, s.listeners...), s.version
}

func notify(fns []func(uint64), version uint64) {
	for _, fn := range fns {
		fn(version)
	}
}

func (s *TyreStore) indexOf(id string) int {
	for i := range s.tyres {
		if s.tyres[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TyreStore) nextID() string {
	max := 0
	for _, t := range s.tyres {
		if n, err := strconv.Atoi(t.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
