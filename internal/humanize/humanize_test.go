package humanize

import "testing"

func TestAsMoney(t *testing.T) {
	tests := []struct {
		cents        int64
		wholeDollars bool
		want         string
	}{
		{0, false, "$0.00"},
		{1234567, false, "$12,345.67"},
		{6000000, false, "$60,000.00"},
		{123456789012, false, "$1,234,567,890.12"},
		{-50, false, "-$0.50"},
		// Whole dollars round above 50 cents.
		{1234551, true, "$12,346"},
		{1234550, true, "$12,345"},
		{1234500, true, "$12,345"},
	}
	for _, tc := range tests {
		if got := AsMoney(tc.cents, tc.wholeDollars); got != tc.want {
			t.Errorf("AsMoney(%d, %v) = %q, want %q",
				tc.cents, tc.wholeDollars, got, tc.want)
		}
	}
}

func TestAsPercentage(t *testing.T) {
	tests := []struct {
		scaled int64
		want   string
	}{
		{0, "0.00%"},
		{6000, "60.00%"},
		{14000, "140.00%"},
		{1250, "12.50%"},
		{5, "0.05%"},
	}
	for _, tc := range tests {
		if got := AsPercentage(tc.scaled); got != tc.want {
			t.Errorf("AsPercentage(%d) = %q, want %q", tc.scaled, got, tc.want)
		}
	}
}
