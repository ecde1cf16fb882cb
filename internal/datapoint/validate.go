package datapoint

import (
	"strconv"
	"strings"
)

// ValidateDataPoint inspects a draft and returns one human-readable
// message per problem. An empty slice means the draft can be persisted.
func ValidateDataPoint(in DataPointInput) []string {
	errs := []string{}

	providerRef := strings.TrimSpace(in.Provider)
	if providerRef == "" {
		errs = append(errs, "provider is required")
	} else if id, err := strconv.Atoi(providerRef); err != nil || id <= 0 {
		errs = append(errs, "provider must be a valid provider id")
	}

	if strings.TrimSpace(in.AssetClass) == "" {
		errs = append(errs, "asset class is required")
	}
	if strings.TrimSpace(in.Quarter) == "" {
		errs = append(errs, "quarter is required")
	}
	if in.MinPrice == nil {
		errs = append(errs, "min price is required")
	}
	if in.MaxPrice == nil {
		errs = append(errs, "max price is required")
	}

	return errs
}
