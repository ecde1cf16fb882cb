package datapoint

import (
	"strings"
	"testing"
)

func validInput() DataPointInput {
	return DataPointInput{
		Provider:   "7",
		AssetClass: "Growth",
		Quarter:    "Q3 2024",
		MinPrice:   fptr(1.5),
		MaxPrice:   fptr(3.0),
	}
}

func TestValidateDataPoint_FullyPopulated_NoErrors(t *testing.T) {
	errs := ValidateDataPoint(validInput())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateDataPoint_ZeroPrices_AreValid(t *testing.T) {
	in := validInput()
	in.MinPrice = fptr(0)
	in.MaxPrice = fptr(0)

	errs := ValidateDataPoint(in)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for explicit zero prices, got %v", errs)
	}
}

func TestValidateDataPoint_MissingFields_OneMessageEach(t *testing.T) {
	errs := ValidateDataPoint(DataPointInput{})
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), errs)
	}

	wantFragments := []string{"provider", "asset class", "quarter", "min price", "max price"}
	for _, frag := range wantFragments {
		found := false
		for _, e := range errs {
			if strings.Contains(e, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a message about %q, got %v", frag, errs)
		}
	}
}

func TestValidateDataPoint_MissingSingleField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DataPointInput)
		want   string
	}{
		{"provider", func(in *DataPointInput) { in.Provider = "" }, "provider is required"},
		{"asset class", func(in *DataPointInput) { in.AssetClass = "  " }, "asset class is required"},
		{"quarter", func(in *DataPointInput) { in.Quarter = "" }, "quarter is required"},
		{"min price", func(in *DataPointInput) { in.MinPrice = nil }, "min price is required"},
		{"max price", func(in *DataPointInput) { in.MaxPrice = nil }, "max price is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			errs := ValidateDataPoint(in)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0] != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, errs[0])
			}
		})
	}
}

func TestValidateDataPoint_ProviderNotNumeric(t *testing.T) {
	for _, ref := range []string{"abc", "1.5", "-3", "0"} {
		in := validInput()
		in.Provider = ref

		errs := ValidateDataPoint(in)
		if len(errs) != 1 || errs[0] != "provider must be a valid provider id" {
			t.Fatalf("provider=%q: expected id error, got %v", ref, errs)
		}
	}
}
