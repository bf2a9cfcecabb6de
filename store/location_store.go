package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/houranii/tyreshop/models"
)

type LocationStore struct {
	c *collection[models.Location]
}

func NewLocationStore(seed []models.Location) *LocationStore {
	return &LocationStore{c: newCollection(seed, func(l *models.Location) string { return l.ID })}
}

func (s *LocationStore) List() []models.Location { return s.c.list() }

func (s *LocationStore) Count() int { return s.c.len() }

// ListByServiceType keeps locations offering st. An empty st returns all.
func (s *LocationStore) ListByServiceType(st models.ServiceType) []models.Location {
	all := s.c.list()
	if st == "" {
		return all
	}
	out := make([]models.Location, 0, len(all))
	for _, l := range all {
		if l.ServiceType == st {
			out = append(out, l)
		}
	}
	return out
}

func (s *LocationStore) Get(id string) (models.Location, error) {
	l, ok := s.c.get(id)
	if !ok {
		return models.Location{}, fmt.Errorf("location %s: %w", id, ErrLocationNotFound)
	}
	return l, nil
}

// Create stores l under the next loc<N> id.
func (s *LocationStore) Create(l models.Location) (models.Location, error) {
	created, ok := s.c.insert(l, false, func(items []models.Location, l *models.Location) {
		l.ID = nextLocationID(items)
	})
	if !ok {
		return models.Location{}, fmt.Errorf("location %s: %w", created.ID, ErrDuplicateID)
	}
	return created, nil
}

func (s *LocationStore) Update(id string, l models.Location) (models.Location, error) {
	updated, found, err := s.c.update(id, func(cur *models.Location) error {
		l.ID = id
		*cur = l
		return nil
	})
	if err != nil {
		return models.Location{}, err
	}
	if !found {
		return models.Location{}, fmt.Errorf("location %s: %w", id, ErrLocationNotFound)
	}
	return updated, nil
}

func (s *LocationStore) Delete(id string) error {
	if !s.c.remove(id) {
		return fmt.Errorf("location %s: %w", id, ErrLocationNotFound)
	}
	return nil
}

func nextLocationID(items []models.Location) string {
	max := len(items)
	for _, l := range items {
		if n, err := strconv.Atoi(strings.TrimPrefix(l.ID, "loc")); err == nil && n > max {
			max = n
		}
	}
	return "loc" + strconv.Itoa(max+1)
}
