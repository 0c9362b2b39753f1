// Package geo loads the country boundary dataset and joins it with
// the classified table.
package geo

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/dtnitsch/name-atlas/models"
)

// The Natural Earth 110m admin-0 countries dataset, the standard
// shapes for small-scale world maps. Downloaded once into the data
// dir and reused on later runs.
const (
	boundaryURL  = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master/geojson/ne_110m_admin_0_countries.geojson"
	boundaryFile = "ne_110m_admin_0_countries.geojson"
)

// UnclassifiedTier marks polygons that matched no classified record.
const UnclassifiedTier = -1

// GeoRecord is one drawable country: its boundary geometry plus the
// tier it should be filled with.
type GeoRecord struct {
	Alpha3   string
	Name     string
	Tier     int
	Geometry orb.Geometry
}

// Load returns the boundary feature collection, downloading the
// dataset on first use.
func Load(dataDir string) (*geojson.FeatureCollection, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, boundaryFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := downloadFile(boundaryURL, path); err != nil {
			return nil, fmt.Errorf("downloading boundary dataset: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading boundary dataset: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding boundary dataset: %w", err)
	}
	return fc, nil
}

var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

func downloadFile(url, path string) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP GET %s: status %d", url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(path) // best-effort cleanup of partial file
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	success = true
	return nil
}

// Alpha3 returns the join key for a boundary feature. Natural Earth
// leaves ISO_A3 as "-99" for a handful of countries, so ISO_A3_EH is
// preferred, with ADM0_A3 as the final fallback.
func Alpha3(f *geojson.Feature) string {
	for _, key := range []string{"ISO_A3_EH", "ISO_A3", "ADM0_A3"} {
		if v := f.Properties.MustString(key, ""); v != "" && v != "-99" {
			return v
		}
	}
	return ""
}

// Join left-joins the classified table onto the polygon set: every
// drawable country appears, with UnclassifiedTier where no data
// matched its code.
func Join(fc *geojson.FeatureCollection, ratios []models.RatioRecord) []GeoRecord {
	byAlpha3 := make(map[string]models.RatioRecord, len(ratios))
	for _, r := range ratios {
		byAlpha3[r.Alpha3] = r
	}

	out := make([]GeoRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		code := Alpha3(f)
		if code == "" {
			continue
		}
		rec := GeoRecord{
			Alpha3:   code,
			Name:     f.Properties.MustString("NAME", code),
			Tier:     UnclassifiedTier,
			Geometry: f.Geometry,
		}
		if r, ok := byAlpha3[code]; ok {
			rec.Tier = r.Tier
		}
		out = append(out, rec)
	}
	return out
}
