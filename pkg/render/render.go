// Package render draws the choropleth world map.
package render

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"golang.org/x/image/font/basicfont"

	"github.com/dtnitsch/name-atlas/pkg/geo"
)

const (
	canvasWidth  = 1600
	canvasHeight = 800

	backgroundColor = "#F0F8FF"
	boundaryColor   = "#ffffff"
	textColor       = "#333333"
)

// Options carries the externalized render constants.
type Options struct {
	Palette      []string // six tier fill colors, index = tier
	Unclassified string   // fill for polygons without data
	LegendLabels []string // one label per tier
	OutputPath   string
}

// Map renders the records into a single PNG at opts.OutputPath, each
// polygon filled by its tier color. Any failure aborts the run.
func Map(records []geo.GeoRecord, opts Options) error {
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetHexColor(backgroundColor)
	dc.Clear()

	for _, rec := range records {
		fill := opts.Unclassified
		if rec.Tier >= 0 && rec.Tier < len(opts.Palette) {
			fill = opts.Palette[rec.Tier]
		}
		drawGeometry(dc, rec.Geometry, fill)
	}

	drawLegend(dc, opts)
	drawTitle(dc)

	if err := dc.SavePNG(opts.OutputPath); err != nil {
		return fmt.Errorf("failed to write map image: %w", err)
	}
	return nil
}

// project maps lon/lat onto the canvas (plate carrée).
func project(p orb.Point) (float64, float64) {
	x := (p.Lon() + 180) / 360 * canvasWidth
	y := (90 - p.Lat()) / 180 * canvasHeight
	return x, y
}

func drawGeometry(dc *gg.Context, g orb.Geometry, fill string) {
	switch geom := g.(type) {
	case orb.Polygon:
		drawPolygon(dc, geom, fill)
	case orb.MultiPolygon:
		for _, poly := range geom {
			drawPolygon(dc, poly, fill)
		}
	}
}

// drawPolygon traces every ring in one path so interior rings punch
// holes under the even-odd fill rule.
func drawPolygon(dc *gg.Context, poly orb.Polygon, fill string) {
	for _, ring := range poly {
		for i, pt := range ring {
			x, y := project(pt)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(boundaryColor)
	dc.SetLineWidth(0.6)
	dc.Stroke()
}

func drawLegend(dc *gg.Context, opts Options) {
	dc.SetFontFace(basicfont.Face7x13)

	x := float64(canvasWidth) - 240
	y := float64(canvasHeight) - 26*float64(len(opts.LegendLabels)) - 30
	for i, label := range opts.LegendLabels {
		fill := opts.Unclassified
		if i < len(opts.Palette) {
			fill = opts.Palette[i]
		}
		dc.SetHexColor(fill)
		dc.DrawRectangle(x, y, 16, 16)
		dc.Fill()
		dc.SetHexColor(textColor)
		dc.DrawString(label, x+24, y+12)
		y += 26
	}
}

func drawTitle(dc *gg.Context) {
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor(textColor)
	dc.DrawString("Global Distribution of Names: Surnames vs Forenames", 20, 24)
	dc.DrawString("Data source: forebears.io", 20, float64(canvasHeight)-12)
}
