package engine

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/scene"
)

func newTestEngine() *Engine {
	return New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestEngineCreateDragAndHit(t *testing.T) {
	e := newTestEngine()

	e.Press(100, 100, editor.ModCreate)
	e.Drag(150, 120)
	e.Release()

	if e.Store().Len() != 1 {
		t.Fatalf("store has %d entities; want 1", e.Store().Len())
	}
	id := e.Store().Entities()[0].ID()
	if got := e.HitTest(150, 120); got != id {
		t.Errorf("HitTest at dragged position = %q; want %q", got, id)
	}
	if got := e.HitTest(100, 100); got != "" {
		t.Errorf("HitTest at old position = %q; want none", got)
	}
	if ids := e.SelectionIDs(); len(ids) != 1 || ids[0] != id {
		t.Errorf("SelectionIDs() = %v", ids)
	}
}

func TestEngineViewMapsInput(t *testing.T) {
	e := newTestEngine()
	e.SetView(Translate(100, 0).Multiply(Scale(2, 2)))

	// screen (300, 200) is world (100, 100)
	e.Press(300, 200, editor.ModCreate)
	e.Release()

	b := e.Store().Entities()[0].Bounds()
	if b != (scene.Bounds{Left: 80, Top: 80, Right: 120, Bottom: 124}) {
		t.Errorf("world bounds = %+v", b)
	}
	if e.HitTest(300, 200) == "" {
		t.Error("screen hit test missed")
	}

	var r Rect
	if err := json.Unmarshal([]byte(e.GetSelectionBounds()), &r); err != nil {
		t.Fatal(err)
	}
	if r != (Rect{X: 260, Y: 160, Width: 80, Height: 88}) {
		t.Errorf("screen selection bounds = %+v", r)
	}
}

func TestEnginePanAndZoom(t *testing.T) {
	e := newTestEngine()
	e.Pan(10, 20)
	if x, y := e.ToScreen(0, 0); x != 10 || y != 20 {
		t.Errorf("after pan origin at (%g, %g)", x, y)
	}

	e.Zoom(2, 10, 20)
	if x, y := e.ToScreen(0, 0); x != 10 || y != 20 {
		t.Errorf("zoom about the origin moved it to (%g, %g)", x, y)
	}
	if x, _ := e.ToScreen(5, 0); x != 20 {
		t.Errorf("zoomed x = %g; want 20", x)
	}

	before := e.View()
	e.SetView(Scale(0, 0))
	e.Zoom(-1, 0, 0)
	if e.View() != before {
		t.Error("invalid view change applied")
	}
}

func TestEngineRejectsNonFiniteView(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	e := newTestEngine()
	e.Press(100, 100, editor.ModCreate)
	e.Release()
	e.Zoom(2, 0, 0)
	before := e.View()

	e.SetView(Matrix2D{nan, nan, nan, nan, nan, nan})
	e.SetView(Translate(inf, 0))
	e.Zoom(inf, 0, 0)
	e.Zoom(nan, 0, 0)
	e.Zoom(2, nan, 0)
	e.Pan(0, -inf)
	if e.View() != before {
		t.Fatalf("view = %v; want %v", e.View(), before)
	}

	var cmds []map[string]any
	if err := json.Unmarshal([]byte(e.Render()), &cmds); err != nil {
		t.Fatalf("Render is not valid JSON: %v", err)
	}
	if len(cmds) == 0 {
		t.Error("Render produced no commands")
	}
	if e.HitTest(200, 200) == "" {
		t.Error("hit test broken after rejected view changes")
	}
}

func TestEngineSetSelection(t *testing.T) {
	e := newTestEngine()
	a := e.Store().CreateShape(100, 100)
	b := e.Store().CreateShape(200, 100)
	g, ok := e.Store().Group([]scene.Entity{b})
	if !ok {
		t.Fatal("Group refused b")
	}

	if err := e.SetSelection([]string{g.ID(), a.ID()}); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if ids := e.SelectionIDs(); len(ids) != 2 || ids[0] != g.ID() || ids[1] != a.ID() {
		t.Fatalf("SelectionIDs() = %v", ids)
	}

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "malformed", ids: []string{a.ID(), "not-an-id"}},
		{name: "wrong prefix", ids: []string{"user_01h455vb4pex5vsknk084sn02q"}},
		{name: "grouped child", ids: []string{b.ID()}},
		{name: "well formed but absent", ids: []string{"ship_01h455vb4pex5vsknk084sn02q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := e.SetSelection(tt.ids); err == nil {
				t.Error("expected an error")
			}
			if ids := e.SelectionIDs(); len(ids) != 2 {
				t.Errorf("failed SetSelection changed the selection to %v", ids)
			}
		})
	}

	err := e.SetSelection([]string{"ship_01h455vb4pex5vsknk084sn02q"})
	if !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("error = %v; want ErrUnknownEntity", err)
	}

	if err := e.SetSelection(nil); err != nil || len(e.SelectionIDs()) != 0 {
		t.Errorf("SetSelection(nil) = %v, selection %v", err, e.SelectionIDs())
	}
}

func TestEngineKeyPress(t *testing.T) {
	e := newTestEngine()
	e.Press(100, 100, editor.ModCreate)
	e.Release()
	e.Press(200, 100, editor.ModCreate|editor.ModToggle)
	e.Release()

	// creating replaced the selection, so toggle the first ship back in
	e.Press(100, 100, editor.ModToggle)
	e.Release()
	if len(e.SelectionIDs()) != 2 {
		t.Fatalf("selection = %v; want both ships", e.SelectionIDs())
	}

	if !e.KeyPress('g', false) {
		t.Fatal("g not bound")
	}
	if e.Store().Len() != 1 {
		t.Fatalf("store has %d entities after group", e.Store().Len())
	}

	if !e.KeyPress('C', true) || !e.KeyPress('v', true) {
		t.Fatal("copy or paste not bound")
	}
	if e.Store().Len() != 2 {
		t.Errorf("store has %d entities after paste; want 2", e.Store().Len())
	}

	if e.KeyPress('q', false) {
		t.Error("q reported as bound")
	}
}

func TestEngineRubberBandCommands(t *testing.T) {
	e := newTestEngine()
	e.Press(0, 0, 0)
	e.Drag(40, 30)

	if e.State() != editor.StateRubber {
		t.Fatalf("State() = %s; want rubber", e.State())
	}
	cmds := e.Commands()
	if len(cmds) != 1 || cmds[0].Op != OpBand || *cmds[0].Rect != (Rect{Width: 40, Height: 30}) {
		t.Errorf("commands = %+v", cmds)
	}

	e.Release()
	if got := e.Render(); got != "[]" {
		t.Errorf("Render() = %s; want []", got)
	}
}

func TestEngineSubscribe(t *testing.T) {
	e := newTestEngine()
	calls := 0
	unsubscribe := e.Subscribe(func() { calls++ })

	// create notifies the store and the selection
	e.Press(100, 100, editor.ModCreate)
	e.Release()
	if calls != 2 {
		t.Errorf("calls = %d after create; want 2", calls)
	}

	e.KeyPress('c', true)
	if calls != 3 {
		t.Errorf("calls = %d after copy; want 3", calls)
	}

	unsubscribe()
	e.KeyPress('v', true)
	if calls != 3 {
		t.Errorf("calls = %d after unsubscribe", calls)
	}
}

func TestEngineLoadSample(t *testing.T) {
	e := newTestEngine()
	e.Press(10, 10, editor.ModCreate)
	e.Release()

	e.LoadSample()

	if e.Store().Len() != 3 {
		t.Fatalf("sample has %d top-level entities; want 3", e.Store().Len())
	}
	fleets := 0
	for _, ent := range e.Store().Entities() {
		if ent.HasChildren() {
			fleets++
			if n := len(ent.Children()); n != 3 {
				t.Errorf("fleet has %d ships; want 3", n)
			}
		}
	}
	if fleets != 1 {
		t.Errorf("sample has %d fleets; want 1", fleets)
	}
	if len(e.SelectionIDs()) != 0 {
		t.Error("selection survived LoadSample")
	}
	if e.GetSelection() != "[]" {
		t.Errorf("GetSelection() = %s", e.GetSelection())
	}
}

func TestEngineSessionID(t *testing.T) {
	a, b := newTestEngine(), newTestEngine()
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("sessions %q and %q", a.Session(), b.Session())
	}
}
