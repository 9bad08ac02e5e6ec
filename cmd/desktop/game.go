package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/engine"
)

const panSpeed = 6 // pixels per tick

var commandKeys = map[ebiten.Key]rune{
	ebiten.KeyC: 'c',
	ebiten.KeyX: 'x',
	ebiten.KeyV: 'v',
	ebiten.KeyG: 'g',
	ebiten.KeyU: 'u',
}

var hoverColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

// Shipyard implements ebiten.Game interface.
type Shipyard struct {
	eng *engine.Engine

	width, height int
	canvas        *ebiten.Image
	dirty         bool

	pressed      bool
	panning      bool
	lastX, lastY int
	lastZoomTime time.Time
	showDebug    bool
}

func newShipyard(eng *engine.Engine, width, height int) *Shipyard {
	g := &Shipyard{eng: eng, width: width, height: height, dirty: true}
	eng.Subscribe(func() { g.dirty = true })
	return g
}

func (g *Shipyard) Update() error {
	g.keys()
	g.pointer()
	return nil
}

func (g *Shipyard) keys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyF1:
			g.showDebug = !g.showDebug
		case ebiten.KeyS:
			if !ctrl {
				g.eng.LoadSample()
			}
		case ebiten.Key0:
			g.eng.SetView(engine.Identity())
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			g.eng.Zoom(1.25, float64(g.width)/2, float64(g.height)/2)
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			g.eng.Zoom(0.8, float64(g.width)/2, float64(g.height)/2)
		default:
			if r, ok := commandKeys[k]; ok {
				g.eng.KeyPress(r, ctrl)
			}
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.eng.Pan(panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.eng.Pan(-panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.eng.Pan(0, panSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.eng.Pan(0, -panSpeed)
	}
}

func (g *Shipyard) pointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		var mods editor.Modifiers
		if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
			mods |= editor.ModToggle
		}
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			mods |= editor.ModCreate
		}
		if ebiten.IsKeyPressed(ebiten.KeyAlt) {
			mods |= editor.ModKeep
		}
		g.pressed = true
		g.eng.Press(x, y, mods)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.pressed {
			g.eng.Drag(x, y)
			g.eng.Release()
			g.pressed = false
		}
	case g.pressed:
		g.eng.Drag(x, y)
	}

	// right button pans
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panning = true
		g.lastX, g.lastY = cx, cy
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.panning = false
	}
	if g.panning && (cx != g.lastX || cy != g.lastY) {
		g.eng.Pan(float64(cx-g.lastX), float64(cy-g.lastY))
		g.lastX, g.lastY = cx, cy
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && time.Since(g.lastZoomTime) > 100*time.Millisecond {
		factor := 1.25
		if wheelY < 0 {
			factor = 0.8
		}
		g.eng.Zoom(factor, x, y)
		g.lastZoomTime = time.Now()
	}
}

func (g *Shipyard) Draw(screen *ebiten.Image) {
	if g.dirty || g.canvas == nil {
		img := engine.Rasterize(g.eng.Commands(), g.width, g.height)
		if g.canvas == nil || g.canvas.Bounds() != img.Bounds() {
			g.canvas = ebiten.NewImage(g.width, g.height)
		}
		g.canvas.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.canvas, nil)

	g.drawHover(screen)

	if g.showDebug {
		cx, cy := ebiten.CursorPosition()
		wx, wy := g.eng.ToWorld(float64(cx), float64(cy))
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nships: %d\nselected: %d\nworld: %.0f,%.0f\nsession: %s",
			g.eng.State(), g.eng.Store().Len(), len(g.eng.SelectionIDs()), wx, wy, g.eng.Session()))
	}
}

// drawHover outlines the entity under the cursor while no gesture is running.
func (g *Shipyard) drawHover(screen *ebiten.Image) {
	if g.pressed {
		return
	}
	cx, cy := ebiten.CursorPosition()
	id := g.eng.HitTest(float64(cx), float64(cy))
	if id == "" {
		return
	}
	e, ok := g.eng.Store().Find(id)
	if !ok {
		return
	}
	b := g.eng.View().TransformBounds(e.Bounds())
	vector.StrokeRect(screen, float32(b.Left)-2, float32(b.Top)-2, float32(b.Width())+4, float32(b.Height())+4, 1, hoverColor, false)
}

func (g *Shipyard) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
