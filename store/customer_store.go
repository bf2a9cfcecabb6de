package store

import (
	"fmt"
	"math/rand/v2"

	"github.com/houranii/tyreshop/models"
)

type CustomerStore struct {
	c *collection[models.Customer]
}

func NewCustomerStore(seed []models.Customer) *CustomerStore {
	return &CustomerStore{c: newCollection(seed, func(c *models.Customer) string { return c.ID })}
}

func (s *CustomerStore) List() []models.Customer { return s.c.list() }

func (s *CustomerStore) Count() int { return s.c.len() }

func (s *CustomerStore) Get(id string) (models.Customer, error) {
	c, ok := s.c.get(id)
	if !ok {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	return c, nil
}

// Create assigns a random C<6 digits> id not already taken.
func (s *CustomerStore) Create(c models.Customer) (models.Customer, error) {
	created, ok := s.c.insert(c, false, func(items []models.Customer, c *models.Customer) {
		taken := make(map[string]struct{}, len(items))
		for _, it := range items {
			taken[it.ID] = struct{}{}
		}
		for {
			c.ID = fmt.Sprintf("C%06d", rand.IntN(1_000_000))
			if _, dup := taken[c.ID]; !dup {
				return
			}
		}
	})
	if !ok {
		return models.Customer{}, fmt.Errorf("customer %s: %w", created.ID, ErrDuplicateID)
	}
	return created, nil
}

// Update applies edit to the stored record. The id cannot change.
func (s *CustomerStore) Update(id string, edit func(*models.Customer) error) (models.Customer, error) {
	updated, found, err := s.c.update(id, func(c *models.Customer) error {
		if err := edit(c); err != nil {
			return err
		}
		c.ID = id
		return nil
	})
	if err != nil {
		return models.Customer{}, err
	}
	if !found {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	return updated, nil
}

func (s *CustomerStore) Delete(id string) error {
	if !s.c.remove(id) {
		return fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	return nil
}
