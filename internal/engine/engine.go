package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/geometry"
	"github.com/shipyard/shipyard/internal/scene"
	"github.com/shipyard/shipyard/internal/typeid"
)

// ErrUnknownEntity is returned when an ID names nothing at the top level of the scene.
var ErrUnknownEntity = errors.New("unknown entity")

// Options configure a new Engine. The zero value is usable.
type Options struct {
	// Template new ships are built from. Defaults to geometry.DefaultTemplate.
	Template geometry.Template
	// Mirror receives copies of everything placed on the clipboard. Optional.
	Mirror editor.Mirror
	// Logger defaults to slog.Default.
	Logger *slog.Logger
	// Keymap defaults to editor.DefaultKeymap.
	Keymap editor.Keymap
}

// Engine owns the scene, selection, clipboard and controller of one editing session and
// exposes them in screen coordinates to a host (terminal, window or browser).
type Engine struct {
	store      *scene.Store
	selection  *editor.Selection
	clipboard  *editor.Clipboard
	controller *editor.Controller
	keymap     editor.Keymap

	// world → screen
	view Matrix2D

	session string
	log     *slog.Logger
}

// New creates an engine with an empty scene and an identity view.
func New(opts Options) *Engine {
	if opts.Template.Tester == nil {
		opts.Template = geometry.DefaultTemplate()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Keymap == nil {
		opts.Keymap = editor.DefaultKeymap
	}

	session := uuid.New().String()
	log := opts.Logger.With("session", session)

	e := &Engine{
		store:     scene.NewStore(opts.Template),
		selection: editor.NewSelection(),
		clipboard: editor.NewClipboard(opts.Mirror),
		keymap:    opts.Keymap,
		view:      Identity(),
		session:   session,
		log:       log,
	}
	e.controller = editor.NewController(e.store, e.selection, e.clipboard, log)
	log.Info("engine started", "hit_width", opts.Template.Width, "hit_height", opts.Template.Height)
	return e
}

// NewEngine creates an engine with default options.
func NewEngine() *Engine {
	return New(Options{})
}

// --- Input (host → engine), screen coordinates ---

// Press forwards a pointer press.
func (e *Engine) Press(x, y float64, mods editor.Modifiers) {
	wx, wy := e.ToWorld(x, y)
	e.controller.Press(wx, wy, mods)
}

// Drag forwards pointer motion with the button held.
func (e *Engine) Drag(x, y float64) {
	wx, wy := e.ToWorld(x, y)
	e.controller.Drag(wx, wy)
}

// Release ends the current gesture.
func (e *Engine) Release() {
	e.controller.Release()
}

// Key runs a command.
func (e *Engine) Key(cmd editor.Command) {
	e.controller.Key(cmd)
}

// KeyPress resolves a key through the keymap and runs the bound command.
// It reports whether the key was bound.
func (e *Engine) KeyPress(key rune, ctrl bool) bool {
	cmd := e.keymap.Lookup(key, ctrl)
	if cmd == editor.CommandNone {
		return false
	}
	e.controller.Key(cmd)
	return true
}

// --- View ---

// SetView replaces the world → screen transform. Matrices that are singular or hold NaN or
// infinite entries are ignored.
func (e *Engine) SetView(m Matrix2D) {
	if !m.Invertible() {
		e.log.Warn("ignoring non-invertible view", "matrix", fmt.Sprint(m))
		return
	}
	e.view = m
	e.store.Notify()
}

// View returns the world → screen transform.
func (e *Engine) View() Matrix2D { return e.view }

// Pan shifts the view by (dx, dy) screen units.
func (e *Engine) Pan(dx, dy float64) {
	if !finite(dx, dy) {
		return
	}
	e.SetView(Translate(dx, dy).Multiply(e.view))
}

// Zoom scales the view by factor around the screen point (cx, cy). The factor must be
// positive and finite.
func (e *Engine) Zoom(factor, cx, cy float64) {
	if factor <= 0 || !finite(factor, cx, cy) {
		return
	}
	e.SetView(ScaleAt(factor, cx, cy).Multiply(e.view))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ToWorld maps a screen point into world space.
func (e *Engine) ToWorld(x, y float64) (float64, float64) {
	inv, _ := e.view.Inverse()
	return inv.TransformPoint(x, y)
}

// ToScreen maps a world point onto the screen.
func (e *Engine) ToScreen(x, y float64) (float64, float64) {
	return e.view.TransformPoint(x, y)
}

// --- Queries (host ← engine) ---

// Commands compiles the current picture.
func (e *Engine) Commands() []DrawCommand {
	f := Frame{
		Entities: e.store.Entities(),
		Selected: e.selection.Contains,
		View:     e.view,
	}
	if band, ok := e.selection.RubberBand(); ok {
		f.Band = &band
	}
	return CompileDrawCommands(f)
}

// Render returns the current draw commands as JSON.
func (e *Engine) Render() string {
	result, err := DrawCommandsToJSON(e.Commands())
	if err != nil {
		e.log.Error("encode draw commands", "error", err)
	}
	return result
}

// HitTest returns the ID of the topmost top-level entity under a screen point, or "".
func (e *Engine) HitTest(x, y float64) string {
	wx, wy := e.ToWorld(x, y)
	hit, ok := e.store.HitTest(wx, wy)
	if !ok {
		return ""
	}
	return hit.ID()
}

// SelectionBounds returns the union of the selected entities' boxes in world space.
func (e *Engine) SelectionBounds() (scene.Bounds, bool) {
	return scene.UnionAll(e.store.Members(e.selection.Members()))
}

// GetSelectionBounds returns the selection's screen-space box as JSON, zero when empty.
func (e *Engine) GetSelectionBounds() string {
	b, ok := e.SelectionBounds()
	if !ok {
		return BoundsToJSON(scene.Bounds{})
	}
	return BoundsToJSON(e.view.TransformBounds(b))
}

// SelectionIDs returns the IDs of the selected entities in selection order.
func (e *Engine) SelectionIDs() []string {
	members := e.selection.Members()
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID())
	}
	return ids
}

// SetSelection replaces the selection with the top-level entities named by ids. Every ID must
// be a well-formed ship or fleet ID present in the scene; otherwise nothing changes.
func (e *Engine) SetSelection(ids []string) error {
	es := make([]scene.Entity, 0, len(ids))
	for _, id := range ids {
		prefix := typeid.PrefixShip
		if typeid.Prefix(id) == typeid.PrefixFleet {
			prefix = typeid.PrefixFleet
		}
		if err := typeid.Validate(id, prefix); err != nil {
			return err
		}
		ent, ok := e.store.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
		}
		es = append(es, ent)
	}
	e.selection.ReplaceAll(es)
	return nil
}

// GetSelection returns the selected IDs as JSON.
func (e *Engine) GetSelection() string {
	data, _ := json.Marshal(e.SelectionIDs())
	return string(data)
}

// State returns the controller's gesture state.
func (e *Engine) State() editor.State { return e.controller.State() }

// Session identifies this engine in logs.
func (e *Engine) Session() string { return e.session }

// Store returns the scene store.
func (e *Engine) Store() *scene.Store { return e.store }

// Selection returns the selection model.
func (e *Engine) Selection() *editor.Selection { return e.selection }

// Subscribe registers fn with the store, the selection and the clipboard. The returned
// function removes all three registrations.
func (e *Engine) Subscribe(fn func()) (unsubscribe func()) {
	unsubs := []func(){
		e.store.Subscribe(fn),
		e.selection.Subscribe(fn),
		e.clipboard.Subscribe(fn),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
