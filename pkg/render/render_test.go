package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"

	"github.com/dtnitsch/name-atlas/pkg/geo"
)

var testOptions = Options{
	Palette:      []string{"#3b7b80", "#68999d", "#89afb4", "#f1a85f", "#ee9133", "#db780b"},
	Unclassified: "#ffffff",
	LegendLabels: []string{
		"Many more surnames",
		"More surnames",
		"Moderately more surnames",
		"Moderately more forenames",
		"More forenames",
		"Many more forenames",
	},
}

func testRecords() []geo.GeoRecord {
	return []geo.GeoRecord{
		{
			Alpha3: "USA",
			Name:   "United States",
			Tier:   1,
			Geometry: orb.Polygon{
				{{-120, 30}, {-80, 30}, {-80, 45}, {-120, 45}, {-120, 30}},
			},
		},
		{
			Alpha3: "NOR",
			Name:   "Norway",
			Tier:   geo.UnclassifiedTier,
			Geometry: orb.MultiPolygon{
				{{{5, 58}, {10, 58}, {10, 63}, {5, 63}, {5, 58}}},
				{{{15, 68}, {20, 68}, {20, 70}, {15, 70}, {15, 68}}},
			},
		},
	}
}

func TestMap(t *testing.T) {
	opts := testOptions
	opts.OutputPath = filepath.Join(t.TempDir(), "world_map.png")

	if err := Map(testRecords(), opts); err != nil {
		t.Fatalf("Map() failed: %v", err)
	}

	f, err := os.Open(opts.OutputPath)
	if err != nil {
		t.Fatalf("output image missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != canvasWidth || bounds.Dy() != canvasHeight {
		t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), canvasWidth, canvasHeight)
	}
}

func TestMapEmptyInput(t *testing.T) {
	opts := testOptions
	opts.OutputPath = filepath.Join(t.TempDir(), "world_map.png")

	if err := Map(nil, opts); err != nil {
		t.Fatalf("Map() with no records failed: %v", err)
	}
	if _, err := os.Stat(opts.OutputPath); err != nil {
		t.Errorf("output image missing: %v", err)
	}
}

func TestMapBadOutputPath(t *testing.T) {
	opts := testOptions
	opts.OutputPath = filepath.Join(t.TempDir(), "no-such-dir", "world_map.png")

	if err := Map(testRecords(), opts); err == nil {
		t.Error("Map() to unwritable path succeeded, want error")
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
		x, y  float64
	}{
		{name: "origin", point: orb.Point{0, 0}, x: canvasWidth / 2, y: canvasHeight / 2},
		{name: "north west corner", point: orb.Point{-180, 90}, x: 0, y: 0},
		{name: "south east corner", point: orb.Point{180, -90}, x: canvasWidth, y: canvasHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := project(tt.point)
			if x != tt.x || y != tt.y {
				t.Errorf("project(%v) = (%v, %v), want (%v, %v)", tt.point, x, y, tt.x, tt.y)
			}
		})
	}
}
