package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// maxAmount bounds the magnitude of every input and rule figure.
	maxAmount = decimal.New(1, 15)
)

const (
	maxExponent        = 15
	maxCoefficientBits = 128
)

// CheckAmount rejects values whose magnitude or scale cannot be calculated
// with in bounded time. The exponent and coefficient are inspected before
// any comparison, since comparing rescales the operands.
func CheckAmount(field string, d decimal.Decimal) error {
	exp := d.Exponent()

	if exp > maxExponent || exp < -compoundPrecision ||
		d.Coefficient().BitLen() > maxCoefficientBits ||
		d.Abs().GreaterThan(maxAmount) {
		return invalidf("%s is out of range", field)
	}

	return nil
}

type amountField struct {
	name  string
	value decimal.Decimal
}

func checkAmounts(fields ...amountField) error {
	for _, f := range fields {
		if err := CheckAmount(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// money rounds to paise.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func atLeastZero(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(d, decimal.Zero)
}

// formatINR renders the integer part of d with Indian digit grouping,
// e.g. 1500000 -> "15,00,000".
func formatINR(d decimal.Decimal) string {
	s := d.Round(0).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	if len(s) <= 3 {
		return sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + strings.Join(groups, ",") + "," + tail
}
