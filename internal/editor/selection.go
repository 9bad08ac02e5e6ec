package editor

import "github.com/shipyard/shipyard/internal/scene"

// Selection holds references to selected top-level entities and the active rubber band.
// It does not own the entities; callers prune stale members with Retain after structural
// changes to the store.
type Selection struct {
	members []scene.Entity
	band    *scene.Rect
	scene.Observers
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Members returns a copy of the selected entities in selection order.
func (s *Selection) Members() []scene.Entity {
	out := make([]scene.Entity, len(s.members))
	copy(out, s.members)
	return out
}

// Len returns the number of selected entities.
func (s *Selection) Len() int { return len(s.members) }

// Contains reports whether e is selected.
func (s *Selection) Contains(e scene.Entity) bool { return s.index(e) >= 0 }

// Toggle deselects e if it is selected and selects it otherwise.
func (s *Selection) Toggle(e scene.Entity) {
	if i := s.index(e); i >= 0 {
		s.members = append(s.members[:i:i], s.members[i+1:]...)
	} else {
		s.members = append(s.members, e)
	}
	s.Notify()
}

// Replace makes e the only selected entity.
func (s *Selection) Replace(e scene.Entity) {
	s.members = []scene.Entity{e}
	s.Notify()
}

// ReplaceAll makes es the selection. The slice is copied and repeats are dropped.
func (s *Selection) ReplaceAll(es []scene.Entity) {
	s.members = nil
	for _, e := range es {
		if e != nil && s.index(e) < 0 {
			s.members = append(s.members, e)
		}
	}
	s.Notify()
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.members = nil
	s.Notify()
}

// Retain drops members for which keep returns false and reports whether any were dropped.
// Observers are only notified when the selection changed.
func (s *Selection) Retain(keep func(scene.Entity) bool) bool {
	kept := s.members[:0:0]
	for _, e := range s.members {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.members) {
		return false
	}
	s.members = kept
	s.Notify()
	return true
}

// RubberBand returns the active rubber band, if any.
func (s *Selection) RubberBand() (scene.Rect, bool) {
	if s.band == nil {
		return scene.Rect{}, false
	}
	return *s.band, true
}

// StartRubberBand opens a zero-sized rubber band at (x, y).
func (s *Selection) StartRubberBand(x, y float64) {
	s.band = &scene.Rect{Left: x, Top: y}
	s.Notify()
}

// ResizeRubberBand spans the rubber band between the anchor (x0, y0) and (x, y).
func (s *Selection) ResizeRubberBand(x0, y0, x, y float64) {
	r := scene.RectFromCorners(x0, y0, x, y)
	s.band = &r
	s.Notify()
}

// ClearRubberBand removes the rubber band.
func (s *Selection) ClearRubberBand() {
	s.band = nil
	s.Notify()
}

func (s *Selection) index(e scene.Entity) int {
	for i, m := range s.members {
		if m == e {
			return i
		}
	}
	return -1
}
