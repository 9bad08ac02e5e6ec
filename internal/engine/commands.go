package engine

import (
	"encoding/json"

	"github.com/shipyard/shipyard/internal/scene"
)

// Palette colours, as hex strings usable by canvas, lipgloss and gg alike.
const (
	ColorBackground = "#000000"
	ColorYellow     = "#FFFF00"
	ColorCoral      = "#FF7F50"
	ColorBand       = "#B88625"
	ColorFleet      = "#FFFFFF"
)

// Draw operations.
const (
	OpBand    = "band"
	OpPolygon = "polygon"
	OpBounds  = "bounds"
)

// DrawCommand represents a single drawing operation for a host to execute.
// Geometry is in world space; hosts apply Transform to reach the screen.
type DrawCommand struct {
	Op          string       `json:"op"`                    // Operation: "band", "polygon", "bounds"
	ObjectID    string       `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64    `json:"transform,omitempty"`   // [a, b, c, d, e, f] view matrix, omitted when identity
	Points      [][2]float64 `json:"points,omitempty"`      // Closed polygon for "polygon" ops
	Rect        *Rect        `json:"rect,omitempty"`        // Rectangle for "bounds" and "band" ops
	Fill        string       `json:"fill,omitempty"`        // Fill color
	Stroke      string       `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64      `json:"strokeWidth,omitempty"` // Stroke width
	Selected    bool         `json:"selected,omitempty"`
}

// Rect is the JSON form of an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func rectOf(b scene.Bounds) *Rect {
	return &Rect{X: b.Left, Y: b.Top, Width: b.Width(), Height: b.Height()}
}

// Frame is everything needed to draw one picture of the editor.
type Frame struct {
	Entities []scene.Entity
	Selected func(scene.Entity) bool
	Band     *scene.Rect
	View     Matrix2D
}

// CompileDrawCommands generates a draw command buffer for a frame.
// Commands are in painter's order (back to front): the rubber band first, then every
// top-level entity in list order.
func CompileDrawCommands(f Frame) []DrawCommand {
	c := compiler{selected: f.Selected}
	if !f.View.IsIdentity() && f.View != (Matrix2D{}) {
		c.transform = f.View.ToSlice()
	}
	if c.selected == nil {
		c.selected = func(scene.Entity) bool { return false }
	}

	if f.Band != nil {
		c.commands = append(c.commands, DrawCommand{
			Op:          OpBand,
			Transform:   c.transform,
			Rect:        rectOf(f.Band.Bounds()),
			Fill:        ColorBand,
			Stroke:      ColorBand,
			StrokeWidth: 1,
		})
	}
	for _, e := range f.Entities {
		c.entity(e, false)
	}
	return c.commands
}

type compiler struct {
	selected  func(scene.Entity) bool
	transform []float64
	commands  []DrawCommand
}

// entity emits e and its descendants. Everything under a selected fleet draws selected.
func (c *compiler) entity(e scene.Entity, inSelected bool) {
	selected := inSelected || c.selected(e)

	if !e.HasChildren() {
		c.commands = append(c.commands, c.polygon(e, selected))
		return
	}

	if c.selected(e) {
		c.commands = append(c.commands, DrawCommand{
			Op:          OpBounds,
			ObjectID:    e.ID(),
			Transform:   c.transform,
			Rect:        rectOf(e.Bounds()),
			Stroke:      ColorFleet,
			StrokeWidth: 1,
			Selected:    true,
		})
	}
	for _, child := range e.Children() {
		c.entity(child, selected)
	}
}

func (c *compiler) polygon(e scene.Entity, selected bool) DrawCommand {
	cmd := DrawCommand{
		Op:          OpPolygon,
		ObjectID:    e.ID(),
		Transform:   c.transform,
		StrokeWidth: 1,
		Selected:    selected,
		Fill:        ColorCoral,
		Stroke:      ColorYellow,
	}
	if selected {
		cmd.Fill, cmd.Stroke = ColorYellow, ColorCoral
	}
	if s, ok := e.(*scene.Shape); ok {
		for _, p := range s.Vertices() {
			cmd.Points = append(cmd.Points, [2]float64{p.X, p.Y})
		}
	}
	return cmd
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// BoundsToJSON serializes a box to JSON as x, y, width and height.
func BoundsToJSON(b scene.Bounds) string {
	data, _ := json.Marshal(rectOf(b))
	return string(data)
}
