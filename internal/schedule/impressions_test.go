package schedule

import (
	"errors"
	"testing"
)

func TestImpressions(t *testing.T) {
	testCases := []struct {
		name     string
		qty, ups int
		overs    float64
		want     int
	}{
		// ceil(100000/12)=8334 sheets, *1.02 truncated.
		{name: "standard order with overs", qty: 100000, ups: 12, overs: 2, want: 8500},
		{name: "exact division no overs", qty: 1000, ups: 10, overs: 0, want: 100},
		{name: "remainder rounds sheets up", qty: 1001, ups: 10, overs: 0, want: 101},
		{name: "single up", qty: 500, ups: 1, overs: 10, want: 550},
		{name: "scaling truncates toward zero", qty: 100, ups: 3, overs: 1, want: 34}, // 34*1.01=34.34
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Impressions(tc.qty, tc.ups, tc.overs)
			if err != nil {
				t.Fatalf("Impressions returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Impressions(%d, %d, %v) = %d, want %d", tc.qty, tc.ups, tc.overs, got, tc.want)
			}
		})
	}
}

func TestImpressionsRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		qty, ups int
		overs    float64
		field    string
	}{
		{name: "zero quantity", qty: 0, ups: 12, overs: 2, field: "finished_qty"},
		{name: "zero ups", qty: 100, ups: 0, overs: 2, field: "ups_per_sheet"},
		{name: "negative ups", qty: 100, ups: -3, overs: 2, field: "ups_per_sheet"},
		{name: "negative overs", qty: 100, ups: 12, overs: -1, field: "overs_pct"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Impressions(tc.qty, tc.ups, tc.overs)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}
