package skills

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultRate is used when a Currency is built with a zero rate.
const DefaultRate = 0.85

// Currency converts an amount from one currency to another at a fixed rate.
type Currency struct {
	Base
	rate float64
}

func NewCurrency(name, description string, rate float64) *Currency {
	if rate == 0 {
		rate = DefaultRate
	}
	return &Currency{Base: NewBase(name, description), rate: rate}
}

func (c *Currency) Rate() float64 {
	return c.rate
}

// Convert returns amount expressed in the target currency.
func (c *Currency) Convert(amount float64) float64 {
	return amount * c.rate
}

func (c *Currency) Params() []string {
	return []string{"cantidad"}
}

func (c *Currency) Invoke(ctx context.Context, args []string) (string, error) {
	if err := CheckArity(c.Name(), c.Params(), args); err != nil {
		return "", err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return "", fmt.Errorf("cantidad no válida: %q", args[0])
	}
	return FormatNumber(c.Convert(amount)), nil
}

func (c *Currency) Help(w io.Writer) {
	WriteSimpleHelp(w, c)
}

// FormatNumber prints f in its shortest exact form, keeping a decimal point
// on whole numbers (4992938 prints as "4992938.0"). Magnitudes below 1e-4 or
// from 1e16 up use exponent notation ("2.0028e-06").
func FormatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
