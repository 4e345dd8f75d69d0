package money

import "testing"

func TestParseCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"45.00", 4500},
		{"7.00", 700},
		{"7", 700},
		{"0.85", 85},
		{" 30.00 ", 3000},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if err != nil {
			t.Fatalf("ParseCents(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParseCents(""); err == nil {
		t.Fatal("expected error for empty amount")
	}
	if _, err := ParseCents("not-a-price"); err == nil {
		t.Fatal("expected error for malformed amount")
	}
}

func TestFormatEuros(t *testing.T) {
	t.Parallel()

	if got := FormatEuros(5350); got != "53.50" {
		t.Fatalf("FormatEuros(5350) = %q", got)
	}
	if got := FormatEuros(0); got != "0.00" {
		t.Fatalf("FormatEuros(0) = %q", got)
	}
}

func TestRoundKmRate(t *testing.T) {
	t.Parallel()

	if got := RoundKmRate(5, 85); got != 425 {
		t.Fatalf("5km at 85c = %d, want 425", got)
	}
	if got := RoundKmRate(10, 85); got != 850 {
		t.Fatalf("10km at 85c = %d, want 850", got)
	}
	// half rounds away from zero: 0.5 * 85 = 42.5 -> 43
	if got := RoundKmRate(0.5, 85); got != 43 {
		t.Fatalf("0.5km at 85c = %d, want 43", got)
	}
}
