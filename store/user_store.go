package store

import (
	"fmt"
	"strings"

	"github.com/houranii/tyreshop/models"
)

type UserStore struct {
	c *collection[models.User]
}

func NewUserStore(seed []models.User) *UserStore {
	return &UserStore{c: newCollection(seed, func(u *models.User) string { return u.ID })}
}

func (s *UserStore) Get(id string) (models.User, error) {
	u, ok := s.c.get(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrUserNotFound)
	}
	return u, nil
}

// FindByEmail matches case-insensitively.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	email = strings.TrimSpace(email)
	for _, u := range s.c.list() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", email, ErrUserNotFound)
}

// AddOrder records orderID against the user.
func (s *UserStore) AddOrder(userID, orderID string) error {
	_, found, _ := s.c.update(userID, func(u *models.User) error {
		u.Orders = append(append([]string(nil), u.Orders...), orderID)
		return nil
	})
	if !found {
		return fmt.Errorf("user %s: %w", userID, ErrUserNotFound)
	}
	return nil
}
