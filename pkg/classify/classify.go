// Package classify buckets countries by forename/surname ratio.
package classify

import "github.com/dtnitsch/name-atlas/models"

// TierCount is the number of ratio tiers.
const TierCount = 6

// Tier maps a ratio to a tier in [0, TierCount). thresholds holds the
// five ascending upper bounds separating the six buckets. Bounds are
// inclusive, so a ratio equal to thresholds[i] lands in tier i; above
// the last bound is the top tier.
func Tier(ratio float64, thresholds []float64) int {
	for i, upper := range thresholds {
		if ratio <= upper {
			return i
		}
	}
	return len(thresholds)
}

// Records computes the ratio for each country and assigns its tier.
// A zero surname or forename count leaves the ratio undefined, so the
// record is excluded from the output.
func Records(in []models.CountryRecord, thresholds []float64) []models.RatioRecord {
	out := make([]models.RatioRecord, 0, len(in))
	for _, r := range in {
		if r.SurnameCount <= 0 || r.ForenameCount <= 0 {
			continue
		}
		ratio := float64(r.ForenameCount) / float64(r.SurnameCount)
		out = append(out, models.RatioRecord{
			CountryRecord: r,
			Ratio:         ratio,
			Tier:          Tier(ratio, thresholds),
		})
	}
	return out
}
