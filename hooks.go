package citylib

import (
	"sync"

	"github.com/agentstation/citylib/pkg/catalogs"
)

// Hook function types for catalog events
type (
	// BookAddedHook is called when a book is added to the catalog
	BookAddedHook func(book catalogs.Book)

	// MemberAddedHook is called when a member is registered
	MemberAddedHook func(member catalogs.Member)

	// CirculationHook is called after a book is issued or returned. The
	// arguments reflect the state after the change.
	CirculationHook func(book catalogs.Book, member catalogs.Member)
)

// Hooks provides event callback registration.
type Hooks interface {
	OnBookAdded(fn BookAddedHook)
	OnMemberAdded(fn MemberAddedHook)
	OnBookIssued(fn CirculationHook)
	OnBookReturned(fn CirculationHook)
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu             sync.RWMutex
	onBookAdded    []BookAddedHook
	onMemberAdded  []MemberAddedHook
	onBookIssued   []CirculationHook
	onBookReturned []CirculationHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added
func (c *client) OnBookAdded(fn BookAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookAdded = append(c.hooks.onBookAdded, fn)
}

// OnMemberAdded registers a callback for when members are added
func (c *client) OnMemberAdded(fn MemberAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onMemberAdded = append(c.hooks.onMemberAdded, fn)
}

// OnBookIssued registers a callback for when books are issued
func (c *client) OnBookIssued(fn CirculationHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookIssued = append(c.hooks.onBookIssued, fn)
}

// OnBookReturned registers a callback for when books are returned
func (c *client) OnBookReturned(fn CirculationHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookReturned = append(c.hooks.onBookReturned, fn)
}

func (h *hooks) bookAdded(book catalogs.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookAdded {
		hook(book)
	}
}

func (h *hooks) memberAdded(member catalogs.Member) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onMemberAdded {
		hook(member)
	}
}

func (h *hooks) bookIssued(book catalogs.Book, member catalogs.Member) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookIssued {
		hook(book, member)
	}
}

func (h *hooks) bookReturned(book catalogs.Book, member catalogs.Member) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookReturned {
		hook(book, member)
	}
}
