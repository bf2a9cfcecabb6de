package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/houranii/tyreshop/models"
)

// OrderStore keeps orders newest first.
type OrderStore struct {
	c *collection[models.Order]
}

func NewOrderStore(seed []models.Order) *OrderStore {
	return &OrderStore{c: newCollection(seed, func(o *models.Order) string { return o.ID })}
}

func (s *OrderStore) List() []models.Order { return s.c.list() }

func (s *OrderStore) Count() int { return s.c.len() }

func (s *OrderStore) ListByUser(userID string) []models.Order {
	var out []models.Order
	for _, o := range s.c.list() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	o, ok := s.c.get(id)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return o, nil
}

// Create stores o under ORD-<n>, one past the highest number in use.
func (s *OrderStore) Create(o models.Order) (models.Order, error) {
	created, ok := s.c.insert(o, true, func(items []models.Order, o *models.Order) {
		o.ID = nextOrderID(items)
	})
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", created.ID, ErrDuplicateID)
	}
	return created, nil
}

func (s *OrderStore) Update(id string, edit func(*models.Order) error) (models.Order, error) {
	updated, found, err := s.c.update(id, func(o *models.Order) error {
		if err := edit(o); err != nil {
			return err
		}
		o.ID = id
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return updated, nil
}

func nextOrderID(items []models.Order) string {
	max := 1000
	for _, o := range items {
		if n, err := strconv.Atoi(strings.TrimPrefix(o.ID, "ORD-")); err == nil && n > max {
			max = n
		}
	}
	return "ORD-" + strconv.Itoa(max+1)
}
