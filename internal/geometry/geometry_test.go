package geometry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
)

func TestParseOutline(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Outline
		wantErr bool
	}{
		{
			name:  "triangle",
			input: "0,0 10,0 5,8",
			want:  Outline{{0, 0}, {10, 0}, {5, 8}},
		},
		{
			name:  "extra whitespace and negatives",
			input: "  0,24   20,-20\t0,-12 -20,-20 ",
			want:  Outline{{0, 24}, {20, -20}, {0, -12}, {-20, -20}},
		},
		{name: "too few vertices", input: "0,0 1,1", wantErr: true},
		{name: "missing comma", input: "0,0 10 5,8", wantErr: true},
		{name: "not a number", input: "0,0 a,1 5,8", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutline(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOutline(%q) = %v; want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutline(%q) error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d vertices; want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("vertex %d = %v; want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutlineDecodeRoundTrip(t *testing.T) {
	var o Outline
	if err := o.Decode(ShipOutline.String()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(o) != len(ShipOutline) {
		t.Fatalf("decoded %d vertices; want %d", len(o), len(ShipOutline))
	}
	for i := range o {
		if o[i] != ShipOutline[i] {
			t.Errorf("vertex %d = %v; want %v", i, o[i], ShipOutline[i])
		}
	}
}

func TestOutlineCloneIsIndependent(t *testing.T) {
	o := Outline{{0, 0}, {1, 0}, {0, 1}}
	c := o.Clone()
	c[0].X = 42
	if o[0].X != 0 {
		t.Error("mutating the clone changed the original")
	}
}

func TestOutlineExtent(t *testing.T) {
	lo, hi := ShipOutline.Extent()
	if lo != (Point{-20, -20}) || hi != (Point{20, 24}) {
		t.Errorf("Extent() = %v, %v; want (-20,-20), (20,24)", lo, hi)
	}
}

func TestContains(t *testing.T) {
	square := Outline{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "center", x: 5, y: 5, want: true},
		{name: "corner", x: 0, y: 0, want: true},
		{name: "edge", x: 10, y: 4, want: true},
		{name: "outside right", x: 10.01, y: 4, want: false},
		{name: "outside above", x: 5, y: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(square, tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// Local frame of ShipOutline: origin at (-20,-20), so the tip (0,24) sits at (20,44) and the
// notch vertex (0,-12) at (20,8).
func TestShipTesters(t *testing.T) {
	testers := map[string]Tester{
		"polygon": NewPolygonTester(ShipOutline),
		"raster":  NewRasterTester(ShipOutline),
	}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "body", x: 20, y: 20, want: true},
		{name: "left wing", x: 6, y: 6, want: true},
		{name: "notch", x: 20, y: 4, want: false},
		{name: "beside tip", x: 2, y: 40, want: false},
		{name: "outside frame", x: -5, y: 20, want: false},
	}

	for mode, tester := range testers {
		for _, tt := range tests {
			t.Run(mode+"/"+tt.name, func(t *testing.T) {
				if got := tester.TestPoint(tt.x, tt.y); got != tt.want {
					t.Errorf("TestPoint(%v, %v) = %v; want %v", tt.x, tt.y, got, tt.want)
				}
			})
		}
	}
}

func TestShipTestersIncludeOutline(t *testing.T) {
	testers := map[string]Tester{
		"polygon": NewPolygonTester(ShipOutline),
		"raster":  NewRasterTester(ShipOutline),
	}
	points := []Point{
		{X: 20, Y: 44}, // tip
		{X: 0, Y: 0},   // left wing corner
		{X: 40, Y: 0},  // right wing corner
		{X: 20, Y: 8},  // notch vertex
		{X: 10, Y: 22}, // middle of the left flank
	}

	for mode, tester := range testers {
		for _, p := range points {
			if !tester.TestPoint(p.X, p.Y) {
				t.Errorf("%s: outline point (%v, %v) should hit", mode, p.X, p.Y)
			}
		}
	}
}

func TestRasterTesterSize(t *testing.T) {
	w, h := NewRasterTester(ShipOutline).Size()
	if w != 41 || h != 45 {
		t.Errorf("Size() = %d, %d; want 41, 45", w, h)
	}
}

func TestNewTemplate(t *testing.T) {
	tmpl, err := NewTemplate(ShipOutline, HitRaster)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if tmpl.Width != 40 || tmpl.Height != 44 {
		t.Errorf("size = %v x %v; want 40 x 44", tmpl.Width, tmpl.Height)
	}
	if tmpl.Origin != (Point{X: -20, Y: -20}) {
		t.Errorf("Origin = %+v; want (-20,-20)", tmpl.Origin)
	}

	if _, err := NewTemplate(Outline{{0, 0}}, HitPolygon); !errors.Is(err, ErrDegenerateOutline) {
		t.Errorf("degenerate outline error = %v; want ErrDegenerateOutline", err)
	}
	if _, err := NewTemplate(ShipOutline, HitMode("sonar")); err == nil {
		t.Error("expected error for unknown hit mode")
	}
}

func TestHitModeDecode(t *testing.T) {
	var m HitMode
	if err := m.Decode(" Raster "); err != nil || m != HitRaster {
		t.Errorf("Decode(Raster) = %v, %q", err, m)
	}
	if err := m.Decode("sonar"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestLoadShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hull.shp")

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	ring := []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
	w.Write(&poly)
	w.Close()

	got, err := LoadShapefile(path)
	if err != nil {
		t.Fatalf("LoadShapefile: %v", err)
	}
	if len(got) != len(ring) {
		t.Fatalf("got %d vertices; want %d", len(got), len(ring))
	}
	for i, p := range ring {
		if got[i].X != p.X || got[i].Y != -p.Y {
			t.Errorf("vertex %d = %v; want (%v, %v)", i, got[i], p.X, -p.Y)
		}
	}
}

func TestLoadShapefileMissing(t *testing.T) {
	if _, err := LoadShapefile(filepath.Join(t.TempDir(), "missing.shp")); err == nil {
		t.Error("expected error for missing file")
	}
}
