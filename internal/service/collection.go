package service

import (
	"fmt"

	"github.com/vanshika/insuradmin/internal/domain"
)

// CollectionStore is the persistence contract of one entity collection.
type CollectionStore[T any] interface {
	Load() ([]T, error)
	Save(records []T) error
	Path() string
}

type keyed interface {
	Key() string
}

// collection holds one entity collection in memory in insertion order. Nothing
// reaches the backing file until save is called.
type collection[T keyed] struct {
	store CollectionStore[T]
	items []T
	dirty bool
}

func (c *collection[T]) load() error {
	items, err := c.store.Load()
	if err != nil {
		return err
	}
	c.items = items
	c.dirty = false
	return nil
}

func (c *collection[T]) save() error {
	if err := c.store.Save(c.items); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func (c *collection[T]) list() []T {
	return append([]T(nil), c.items...)
}

// index returns the position of the first record with id, or -1.
func (c *collection[T]) index(id string) int {
	for i := range c.items {
		if c.items[i].Key() == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) find(id string) (T, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.items[i], nil
}

func (c *collection[T]) add(item T) error {
	if c.index(item.Key()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, item.Key())
	}
	c.items = append(c.items, item)
	c.dirty = true
	return nil
}

// mutate applies fn to the first record with id.
func (c *collection[T]) mutate(id string, fn func(*T) domain.Outcome) (T, domain.Outcome, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	outcome := fn(&c.items[i])
	if outcome.Changed() {
		c.dirty = true
	}
	return c.items[i], outcome, nil
}

func (c *collection[T]) search(match func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
