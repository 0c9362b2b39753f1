// Package countries builds the list of scrape targets from the
// ISO-3166 dataset.
package countries

import (
	"sort"
	"strings"

	"github.com/pariz/gountries"
)

// Country is one scrape target: the URL slug the site uses plus the
// ISO identifiers it maps back to.
type Country struct {
	Slug   string
	Alpha3 string
	Name   string
}

// slugCorrections overrides slugs where the site disagrees with the
// ISO common name.
var slugCorrections = map[string]string{
	"BIH": "bosnia",
	"RUS": "russia",
	"TUR": "turkey",
	"CIV": "ivory-coast",
	"GBR": "england",
	"COD": "dr-congo",
	"SWZ": "swaziland",
}

// All returns every scrape target, sorted by alpha-3 code so runs are
// deterministic.
func All() []Country {
	query := gountries.New()
	found := query.FindAllCountries()

	out := make([]Country, 0, len(found))
	for _, gc := range found {
		name := gc.Name.Common
		if name == "" || gc.Alpha3 == "" {
			continue
		}
		slug, ok := slugCorrections[gc.Alpha3]
		if !ok {
			slug = Slugify(name)
		}
		out = append(out, Country{Slug: slug, Alpha3: gc.Alpha3, Name: name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Alpha3 < out[j].Alpha3 })
	return out
}

// Slugify converts a country name into the site's URL form.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
