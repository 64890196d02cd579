package citylib

import (
	"context"

	"github.com/agentstation/citylib/pkg/errors"
	"github.com/agentstation/citylib/pkg/logging"
)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the whole catalog to the data files.
	Save(ctx context.Context) error

	// Close saves any change that has not been saved yet. Calls after
	// the first are no-ops.
	Close(ctx context.Context) error

	// DataDir returns the directory the catalog is saved to, or "" for
	// an in-memory library.
	DataDir() string
}

// Save persists the current catalog. It is a no-op without a store.
func (c *client) Save(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveAll(ctx, c.catalog); err != nil {
		return errors.WrapResource("save", "catalog", c.store.Dir(), err)
	}
	c.dirty = false
	return nil
}

// Close saves the catalog one last time if it has unsaved changes, so
// read-only sessions leave the data files untouched.
func (c *client) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	dirty := c.dirty
	c.mu.Unlock()

	if !dirty {
		return nil
	}
	return c.Save(ctx)
}

// DataDir returns the store directory.
func (c *client) DataDir() string {
	if c.store == nil {
		return ""
	}
	return c.store.Dir()
}

// persist is the write-through step after a successful mutation. The
// mutation is kept even when the save fails.
func (c *client) persist(ctx context.Context) error {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()

	if !c.options.autoSave {
		return nil
	}
	if err := c.Save(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("save failed, change kept in memory")
		return err
	}
	return nil
}
