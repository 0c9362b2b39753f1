// Package models defines the records passed between pipeline stages
// and the runtime configuration.
package models

// CountryRecord is one scraped row: name incidence counts for a single
// country, keyed by its ISO-3166 alpha-3 code. Records are immutable
// after the scrape; reruns overwrite the cache file wholesale.
type CountryRecord struct {
	Alpha3        string `csv:"alpha3"`
	Name          string `csv:"country"`
	SurnameCount  int    `csv:"surname_count"`
	ForenameCount int    `csv:"forename_count"`
}

// RatioRecord is a CountryRecord with its derived classification.
type RatioRecord struct {
	CountryRecord
	Ratio float64
	Tier  int
}
