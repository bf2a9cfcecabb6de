package store

import "sync"

// collection is an ordered, mutex-guarded list of records keyed by id.
// Reads hand out copies of the slice so callers can sort freely.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) string
}

func newCollection[T any](seed []T, id func(*T) string) *collection[T] {
	return &collection[T]{items: append([]T(nil), seed...), id: id}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// insert adds item at the front when prepend is set, otherwise at the end.
// assign runs under the write lock and may set the id from the current items.
func (c *collection[T]) insert(item T, prepend bool, assign func(items []T, item *T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if assign != nil {
		assign(c.items, &item)
	}
	if c.indexOf(c.id(&item)) >= 0 {
		return item, false
	}
	if prepend {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}
	return item, true
}

func (c *collection[T]) update(id string, edit func(*T) error) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}
	next := c.items[i]
	if err := edit(&next); err != nil {
		return zero, true, err
	}
	c.items[i] = next
	return next, true, nil
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return true
}

func (c *collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}
