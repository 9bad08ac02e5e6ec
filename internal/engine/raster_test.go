package engine

import (
	"image/color"
	"testing"

	"github.com/shipyard/shipyard/internal/geometry"
	"github.com/shipyard/shipyard/internal/scene"
)

func TestRasterize(t *testing.T) {
	tmpl := geometry.DefaultTemplate()
	a := scene.NewShape(tmpl, 50, 50)
	b := scene.NewShape(tmpl, 150, 50)
	band := scene.RectFromCorners(10, 130, 60, 180)

	img := Rasterize(CompileDrawCommands(Frame{
		Entities: []scene.Entity{a, b},
		Selected: func(e scene.Entity) bool { return e == scene.Entity(b) },
		Band:     &band,
	}), 200, 200)

	yellow := color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	coral := color.RGBA{0xFF, 0x7F, 0x50, 0xFF}
	bandColor := color.RGBA{0xB8, 0x86, 0x25, 0xFF}
	black := color.RGBA{0, 0, 0, 0xFF}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"unselected body", 50, 50, coral},
		{"selected body", 150, 50, yellow},
		{"band interior", 35, 155, bandColor},
		{"background", 100, 190, black},
		{"notch", 50, 35, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
