package engine

import (
	"image"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
)

// Rasterize paints commands onto a width x height image with a black background.
func Rasterize(commands []DrawCommand, width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)
	dc.SetHexColor(ColorBackground)
	dc.Clear()
	dc.SetFillRuleEvenOdd()

	for _, cmd := range commands {
		view := Identity()
		if len(cmd.Transform) == 6 {
			copy(view[:], cmd.Transform)
		}

		switch cmd.Op {
		case OpPolygon:
			if len(cmd.Points) == 0 {
				continue
			}
			for i, p := range cmd.Points {
				x, y := view.TransformPoint(p[0], p[1])
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			paint(dc, cmd)
		case OpBounds, OpBand:
			if cmd.Rect == nil {
				continue
			}
			x0, y0 := view.TransformPoint(cmd.Rect.X, cmd.Rect.Y)
			x1, y1 := view.TransformPoint(cmd.Rect.X+cmd.Rect.Width, cmd.Rect.Y+cmd.Rect.Height)
			dc.DrawRectangle(min(x0, x1), min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
			paint(dc, cmd)
		}
	}

	if img, ok := dc.Image().(*image.RGBA); ok {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out
}

// paint fills then strokes the current path with the command's colours.
func paint(dc *gg.Context, cmd DrawCommand) {
	if cmd.Fill != "" {
		dc.SetHexColor(cmd.Fill)
		dc.FillPreserve()
	}
	if cmd.Stroke != "" {
		dc.SetHexColor(cmd.Stroke)
		dc.SetLineWidth(max(cmd.StrokeWidth, 1))
		dc.StrokePreserve()
	}
	dc.ClearPath()
}
