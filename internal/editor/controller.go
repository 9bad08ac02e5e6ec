package editor

import (
	"log/slog"

	"github.com/shipyard/shipyard/internal/scene"
)

// State is the controller's gesture state.
type State int

const (
	StateReady State = iota
	StateDragging
	StateRubber
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDragging:
		return "dragging"
	case StateRubber:
		return "rubber"
	default:
		return "unknown"
	}
}

// Controller turns pointer and keyboard events into store, selection and clipboard
// operations. Events must be delivered one at a time from a single goroutine.
type Controller struct {
	store     *scene.Store
	selection *Selection
	clipboard *Clipboard
	log       *slog.Logger

	state State

	// gesture scratch, reset on every return to StateReady
	prevX, prevY     float64
	anchorX, anchorY float64
}

// NewController wires a controller to its collaborators. logger may be nil.
func NewController(store *scene.Store, selection *Selection, clipboard *Clipboard, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:     store,
		selection: selection,
		clipboard: clipboard,
		log:       logger,
		state:     StateReady,
	}
}

// State returns the current gesture state.
func (c *Controller) State() State { return c.state }

// Press handles a pointer press at world coordinates (x, y).
func (c *Controller) Press(x, y float64, mods Modifiers) {
	if c.state != StateReady {
		return
	}
	c.prevX, c.prevY = x, y
	c.prune()

	if hit, ok := c.store.HitTest(x, y); ok {
		switch {
		case mods.Has(ModToggle):
			c.selection.Toggle(hit)
		case c.selection.Contains(hit):
			// keep the selection so the whole group of selected ships drags together
		default:
			c.selection.Replace(hit)
		}
		c.transition(StateDragging)
		return
	}

	if mods.Has(ModCreate) {
		ship := c.store.CreateShape(x, y)
		c.selection.Replace(ship)
		c.log.Debug("ship created", "id", ship.ID(), "x", x, "y", y)
		c.transition(StateDragging)
		return
	}

	if !mods.Has(ModToggle) && !mods.Has(ModKeep) {
		c.selection.Clear()
	}
	c.anchorX, c.anchorY = x, y
	c.selection.StartRubberBand(x, y)
	c.transition(StateRubber)
}

// Drag handles pointer motion with the button held.
func (c *Controller) Drag(x, y float64) {
	switch c.state {
	case StateDragging:
		dx, dy := x-c.prevX, y-c.prevY
		c.prevX, c.prevY = x, y
		c.store.Move(c.selected(), dx, dy)
	case StateRubber:
		c.prevX, c.prevY = x, y
		c.selection.ResizeRubberBand(c.anchorX, c.anchorY, x, y)
	}
}

// Release ends the current gesture.
func (c *Controller) Release() {
	switch c.state {
	case StateDragging:
		c.transition(StateReady)
	case StateRubber:
		band, _ := c.selection.RubberBand()
		hits := c.store.RectHitTest(band)
		c.selection.ClearRubberBand()
		c.selection.ReplaceAll(hits)
		c.log.Debug("rubber band selection", "count", len(hits))
		c.transition(StateReady)
	}
}

// Key handles a keyboard command. Commands are only honoured between gestures.
func (c *Controller) Key(cmd Command) {
	if c.state != StateReady {
		return
	}

	switch cmd {
	case CommandCopy:
		c.clipboard.Store(c.selected())
	case CommandCut:
		selected := c.selected()
		c.clipboard.Store(selected)
		c.store.Remove(selected)
		c.selection.Clear()
	case CommandPaste:
		items := c.clipboard.Retrieve()
		c.store.Add(items)
		c.selection.ReplaceAll(items)
	case CommandGroup:
		if g, ok := c.store.Group(c.selected()); ok {
			c.selection.Replace(g)
		}
	case CommandUngroup:
		selected := c.selected()
		if len(selected) != 1 || !selected[0].HasChildren() {
			return
		}
		if items, ok := c.store.Ungroup(selected[0]); ok {
			c.selection.ReplaceAll(items)
		}
	default:
		return
	}
	c.log.Debug("command", "command", cmd.String(), "entities", c.store.Len(), "selected", c.selection.Len())
}

// selected returns the selection after dropping entities no longer in the store.
func (c *Controller) selected() []scene.Entity {
	c.prune()
	return c.selection.Members()
}

func (c *Controller) prune() {
	if c.selection.Retain(c.store.Contains) {
		c.log.Debug("pruned stale selection")
	}
}

func (c *Controller) transition(next State) {
	if next == StateReady {
		c.prevX, c.prevY = 0, 0
		c.anchorX, c.anchorY = 0, 0
	}
	if next != c.state {
		c.log.Debug("state transition", "from", c.state.String(), "to", next.String())
	}
	c.state = next
}
