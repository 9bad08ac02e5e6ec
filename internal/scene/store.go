package scene

import (
	"github.com/shipyard/shipyard/internal/geometry"
)

// Store owns the top-level list of entities. Later entries are drawn on top of earlier ones.
// Every mutation notifies observers once, after the list is consistent again.
type Store struct {
	template geometry.Template
	entities []Entity
	Observers
}

// NewStore creates an empty store that builds new ships from t.
func NewStore(t geometry.Template) *Store {
	return &Store{template: t}
}

// Template returns the template new ships are built from.
func (s *Store) Template() geometry.Template { return s.template }

// Entities returns a copy of the top-level list in drawing order.
func (s *Store) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of top-level entities.
func (s *Store) Len() int { return len(s.entities) }

// Contains reports whether e is currently a top-level entity.
func (s *Store) Contains(e Entity) bool { return indexOf(s.entities, e) >= 0 }

// Find returns the top-level entity with the given ID.
func (s *Store) Find(id string) (Entity, bool) {
	for _, e := range s.entities {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// CreateShape places a new ship at (x, y) on top of the stack.
func (s *Store) CreateShape(x, y float64) *Shape {
	sh := NewShape(s.template, x, y)
	s.entities = append(s.entities, sh)
	s.Notify()
	return sh
}

// HitTest returns the topmost entity containing the point.
func (s *Store) HitTest(x, y float64) (Entity, bool) {
	for i := len(s.entities) - 1; i >= 0; i-- {
		if s.entities[i].ContainsPoint(x, y) {
			return s.entities[i], true
		}
	}
	return nil, false
}

// RectHitTest returns every entity lying entirely within r, in drawing order.
func (s *Store) RectHitTest(r Rect) []Entity {
	b := r.Bounds()
	var hits []Entity
	for _, e := range s.entities {
		if e.IsFullyInside(b) {
			hits = append(hits, e)
		}
	}
	return hits
}

// Move translates each entity and notifies once.
func (s *Store) Move(es []Entity, dx, dy float64) {
	for _, e := range es {
		e.Move(dx, dy)
	}
	s.Notify()
}

// Group wraps the given top-level entities into a new fleet appended to the list.
// Entities that are not top-level members are ignored; if none remain nothing changes.
func (s *Store) Group(es []Entity) (*Group, bool) {
	members := s.Members(es)
	if len(members) == 0 {
		return nil, false
	}
	g, err := NewGroup(members...)
	if err != nil {
		return nil, false
	}
	s.entities = removeAll(s.entities, members)
	s.entities = append(s.entities, g)
	s.Notify()
	return g, true
}

// Ungroup replaces a top-level fleet with its immediate children, appended in order.
func (s *Store) Ungroup(e Entity) ([]Entity, bool) {
	g, ok := e.(*Group)
	if !ok || !s.Contains(g) {
		return nil, false
	}
	items := g.Children()
	s.entities = removeAll(s.entities, []Entity{g})
	s.entities = append(s.entities, items...)
	s.Notify()
	return items, true
}

// Add appends entities that are not already present and notifies once.
func (s *Store) Add(es []Entity) {
	for _, e := range es {
		if e == nil || s.Contains(e) {
			continue
		}
		s.entities = append(s.entities, e)
	}
	s.Notify()
}

// Remove deletes the given entities and notifies once.
func (s *Store) Remove(es []Entity) {
	s.entities = removeAll(s.entities, es)
	s.Notify()
}

// Members filters es down to current top-level entities, dropping repeats and keeping order.
func (s *Store) Members(es []Entity) []Entity {
	var out []Entity
	for _, e := range es {
		if s.Contains(e) && indexOf(out, e) < 0 {
			out = append(out, e)
		}
	}
	return out
}

func removeAll(list, drop []Entity) []Entity {
	out := make([]Entity, 0, len(list))
	for _, e := range list {
		if indexOf(drop, e) < 0 {
			out = append(out, e)
		}
	}
	return out
}
