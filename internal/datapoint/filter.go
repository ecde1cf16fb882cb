package datapoint

import (
	"strings"
)

// FilterDataPoints returns the records matching every set filter field.
// Asset class and quarter are exact matches; provider is a
// case-insensitive substring match against the provider display name.
// Input order is preserved.
func FilterDataPoints(records []DataPoint, f DataPointFilters) []DataPoint {
	needle := strings.ToLower(strings.TrimSpace(f.Provider))

	out := make([]DataPoint, 0, len(records))
	for _, dp := range records {
		if f.AssetClass != "" && dp.AssetClass != f.AssetClass {
			continue
		}
		if f.Quarter != "" && dp.Quarter != f.Quarter {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(dp.Provider.Name), needle) {
			continue
		}
		out = append(out, dp)
	}
	return out
}
