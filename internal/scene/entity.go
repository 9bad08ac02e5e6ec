package scene

// Entity is a ship or a fleet (group of entities). Both variants answer the same queries so
// callers never need to know which one they hold.
type Entity interface {
	// ID returns the entity's unique identifier.
	ID() string

	// ContainsPoint reports whether the point hits the entity.
	// A fleet is hit when any of its children is hit.
	ContainsPoint(x, y float64) bool

	// Move translates the entity and refreshes its bounds.
	Move(dx, dy float64)

	// Bounds returns the current bounding box.
	Bounds() Bounds

	// IsFullyInside reports whether every vertex (every child, for a fleet) lies within b.
	IsFullyInside(b Bounds) bool

	// Duplicate returns a deep copy with a fresh ID and no storage shared with the original.
	Duplicate() Entity

	// HasChildren reports whether the entity is a fleet.
	HasChildren() bool

	// Children returns a copy of a fleet's child list, or nil for a ship.
	Children() []Entity
}

// indexOf returns the position of e in es by identity, or -1.
func indexOf(es []Entity, e Entity) int {
	for i, x := range es {
		if x == e {
			return i
		}
	}
	return -1
}
