package editor

import (
	"log/slog"

	"github.com/shipyard/shipyard/internal/scene"
)

// Mirror receives a copy of whatever is placed on the clipboard, e.g. to publish it to the
// operating system clipboard.
type Mirror interface {
	Publish(entities []scene.Entity) error
}

// Clipboard stores deep copies of entities. Nothing it holds is ever shared with the store or
// with previous retrievals.
type Clipboard struct {
	items  []scene.Entity
	mirror Mirror
	scene.Observers
}

// NewClipboard returns an empty clipboard. mirror may be nil.
func NewClipboard(mirror Mirror) *Clipboard {
	return &Clipboard{mirror: mirror}
}

// Store replaces the contents with duplicates of es.
func (c *Clipboard) Store(es []scene.Entity) {
	c.items = duplicateAll(es)
	if c.mirror != nil {
		if err := c.mirror.Publish(duplicateAll(c.items)); err != nil {
			slog.Warn("mirror clipboard", "error", err)
		}
	}
	c.Notify()
}

// Retrieve returns fresh duplicates of the contents.
func (c *Clipboard) Retrieve() []scene.Entity {
	return duplicateAll(c.items)
}

// Len returns the number of stored entities.
func (c *Clipboard) Len() int { return len(c.items) }

func duplicateAll(es []scene.Entity) []scene.Entity {
	out := make([]scene.Entity, 0, len(es))
	for _, e := range es {
		out = append(out, e.Duplicate())
	}
	return out
}
