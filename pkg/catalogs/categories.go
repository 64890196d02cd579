package catalogs

import (
	"maps"
	"slices"
)

// Categories is the set of every category seen on a book.
// Entries are never removed.
type Categories struct {
	set map[string]struct{}
}

// NewCategories creates an empty category registry.
func NewCategories() *Categories {
	return &Categories{set: make(map[string]struct{})}
}

// Add registers a category.
func (c *Categories) Add(category string) {
	c.set[category] = struct{}{}
}

// Contains reports whether category has been registered.
func (c *Categories) Contains(category string) bool {
	_, ok := c.set[category]
	return ok
}

// Len returns the number of distinct categories.
func (c *Categories) Len() int {
	return len(c.set)
}

// List returns the categories in sorted order.
func (c *Categories) List() []string {
	return slices.Sorted(maps.Keys(c.set))
}
