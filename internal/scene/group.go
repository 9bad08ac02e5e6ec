package scene

import (
	"errors"

	"github.com/shipyard/shipyard/internal/typeid"
)

var ErrEmptyGroup = errors.New("fleet must have at least one member")

// Group is a fleet: an ordered, non-empty collection of ships and fleets that behaves as one.
type Group struct {
	id       string
	children []Entity
	bounds   Bounds
}

// NewGroup builds a fleet from children in the given order. Repeated references are dropped.
func NewGroup(children ...Entity) (*Group, error) {
	g := &Group{id: typeid.NewFleetID()}
	for _, c := range children {
		if c == nil || indexOf(g.children, c) >= 0 {
			continue
		}
		g.children = append(g.children, c)
	}
	if len(g.children) == 0 {
		return nil, ErrEmptyGroup
	}
	g.recalculateBounds()
	return g, nil
}

func (g *Group) ID() string { return g.id }

func (g *Group) ContainsPoint(x, y float64) bool {
	for _, c := range g.children {
		if c.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

func (g *Group) Move(dx, dy float64) {
	for _, c := range g.children {
		c.Move(dx, dy)
	}
	g.recalculateBounds()
}

func (g *Group) Bounds() Bounds { return g.bounds }

func (g *Group) IsFullyInside(b Bounds) bool {
	for _, c := range g.children {
		if !c.IsFullyInside(b) {
			return false
		}
	}
	return true
}

func (g *Group) Duplicate() Entity {
	c := &Group{
		id:       typeid.NewFleetID(),
		children: make([]Entity, len(g.children)),
	}
	for i, child := range g.children {
		c.children[i] = child.Duplicate()
	}
	c.recalculateBounds()
	return c
}

func (g *Group) HasChildren() bool { return true }

func (g *Group) Children() []Entity {
	out := make([]Entity, len(g.children))
	copy(out, g.children)
	return out
}

func (g *Group) recalculateBounds() {
	g.bounds, _ = UnionAll(g.children)
}
