// Package sysclip mirrors the editor clipboard to the operating system clipboard as text.
package sysclip

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/shipyard/shipyard/internal/scene"
)

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Mirror publishes a one-line summary per entity to the system clipboard.
type Mirror struct{}

// New returns a Mirror. It reports clipboard.Unsupported when the platform has no clipboard utility.
func New() (*Mirror, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("system clipboard unsupported on this platform")
	}
	return &Mirror{}, nil
}

// Publish replaces the system clipboard contents with Format(entities).
func (m *Mirror) Publish(entities []scene.Entity) error {
	if err := writeAll(Format(entities)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Format renders entities as lines of "id kind left,top,right,bottom vertices".
func Format(entities []scene.Entity) string {
	var b strings.Builder
	for _, e := range entities {
		bb := e.Bounds()
		kind := "ship"
		if e.HasChildren() {
			kind = "fleet"
		}
		fmt.Fprintf(&b, "%s %s %g,%g,%g,%g %d\n", e.ID(), kind, bb.Left, bb.Top, bb.Right, bb.Bottom, vertexCount(e))
	}
	return b.String()
}

func vertexCount(e scene.Entity) int {
	if s, ok := e.(*scene.Shape); ok {
		return len(s.Vertices())
	}
	n := 0
	for _, c := range e.Children() {
		n += vertexCount(c)
	}
	return n
}
