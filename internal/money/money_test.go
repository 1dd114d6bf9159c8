package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$ 0"},
		{"800", "$ 800"},
		{"1200", "$ 1.200"},
		{"3400", "$ 3.400"},
		{"1234567", "$ 1.234.567"},
		{"1234.5", "$ 1.234,5"},
		{"1234.50", "$ 1.234,5"},
		{"99.99", "$ 99,99"},
		{"0.05", "$ 0,05"},
		{"-1500.25", "-$ 1.500,25"},
	}
	for _, tc := range cases {
		if got := Format(dec(tc.in)); got != tc.want {
			t.Fatalf("Format(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTimes(t *testing.T) {
	if got := Times(dec("1200"), 2); !got.Equal(dec("2400")) {
		t.Fatalf("expected 2400, got %s", got)
	}
	if got := Times(dec("0.10"), 3); !got.Equal(dec("0.30")) {
		t.Fatalf("expected 0.30, got %s", got)
	}
}
