package skills

import (
	"context"
	"errors"
	"testing"
)

func TestCurrency_Convert(t *testing.T) {
	c := NewCurrency("bitcoin2euro", "", 49929.38)
	if got := c.Convert(100); got != 4992938.0 {
		t.Errorf("Convert(100) = %v, want 4992938.0", got)
	}
}

func TestCurrency_DefaultRate(t *testing.T) {
	c := NewCurrency("euro2dolar", "", 0)
	if c.Rate() != DefaultRate {
		t.Errorf("Rate() = %v, want %v", c.Rate(), DefaultRate)
	}
	if got := c.Convert(10); got != 8.5 {
		t.Errorf("Convert(10) = %v, want 8.5", got)
	}
}

func TestCurrency_Invoke(t *testing.T) {
	btc := 49929.38
	tests := []struct {
		rate float64
		in   string
		want string
	}{
		{btc, "100", "4992938.0"},
		{1 / btc, "100", "0.0020028287953906096"},
		{1 / btc, "0.1", "2.0028287953906097e-06"},
		{2, "1.25", "2.5"},
		{2, " 3 ", "6.0"},
	}
	for _, tt := range tests {
		c := NewCurrency("x", "", tt.rate)
		got, err := c.Invoke(context.Background(), []string{tt.in})
		if err != nil {
			t.Fatalf("Invoke(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Invoke(%q) at rate %v = %q, want %q", tt.in, tt.rate, got, tt.want)
		}
	}
}

func TestCurrency_InvokeErrors(t *testing.T) {
	c := NewCurrency("x", "", 1)
	if _, err := c.Invoke(context.Background(), nil); !errors.Is(err, ErrArity) {
		t.Errorf("no args: err = %v, want ErrArity", err)
	}
	var arity *ArityError
	_, err := c.Invoke(context.Background(), []string{"1", "2"})
	if !errors.As(err, &arity) || arity.Want != 1 || arity.Got != 2 {
		t.Errorf("two args: err = %#v", err)
	}
	if _, err := c.Invoke(context.Background(), []string{"diez"}); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:          "0.0",
		-3:         "-3.0",
		4992938:    "4992938.0",
		0.5:        "0.5",
		1234.5678:  "1234.5678",
		0.0001:     "0.0001",
		2.0028e-06: "2.0028e-06",
		-5e-05:     "-5e-05",
		1e16:       "1e+16",
		1.5e17:     "1.5e+17",
		9.5e15:     "9500000000000000.0",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
