package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckAmount(t *testing.T) {
	type TC struct {
		value   string
		wantErr bool
	}

	tcs := []TC{
		{value: "0"},
		{value: "1500000.75"},
		{value: "-250000"},
		{value: "1e15"},
		{value: "0.000000000000000001"},
		{value: "1000000000000001", wantErr: true},
		{value: "-1e16", wantErr: true},
		{value: "1e20000000", wantErr: true},
		{value: "1e-20000000", wantErr: true},
		{value: "123456789012345678901234567890123456789012345", wantErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.value, func(t *testing.T) {
			err := CheckAmount("amount", d(tc.value))

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.EqualError(t, err, "invalid input: amount is out of range")
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCalculatorsRejectHugeAmounts(t *testing.T) {
	huge := d("1e20000000")
	tiny := d("1e-20000000")
	fine := decimal.NewFromInt(100_000)
	calc := newTestCalculator()

	calls := map[string]func(v decimal.Decimal) error{
		"income tax": func(v decimal.Decimal) error {
			_, err := calc.IncomeTax(v, AgeUnder60, RegimeOld, nil)
			return err
		},
		"income tax deduction": func(v decimal.Decimal) error {
			_, err := calc.IncomeTax(fine, AgeUnder60, RegimeOld, Deductions{Deduction80C: v})
			return err
		},
		"compare regimes": func(v decimal.Decimal) error {
			_, err := calc.CompareRegimes(v, AgeUnder60, nil)
			return err
		},
		"hra": func(v decimal.Decimal) error {
			_, err := calc.HRAExemption(fine, fine, v, true)
			return err
		},
		"capital gains": func(v decimal.Decimal) error {
			_, err := calc.CapitalGains(fine, v, 24, AssetEquity)
			return err
		},
		"sip": func(v decimal.Decimal) error {
			_, err := SIP(v, d("12"), 10)
			return err
		},
		"gst": func(v decimal.Decimal) error {
			_, err := GST(v, d("18"), GSTExclusive)
			return err
		},
		"gst rate": func(v decimal.Decimal) error {
			_, err := GST(fine, v, GSTInclusive)
			return err
		},
		"tds": func(v decimal.Decimal) error {
			_, err := calc.TDS(v, Section194J)
			return err
		},
		"gratuity": func(v decimal.Decimal) error {
			_, err := calc.Gratuity(v, d("10"), true)
			return err
		},
		"gratuity years": func(v decimal.Decimal) error {
			_, err := calc.Gratuity(fine, v, false)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(huge), ErrInvalidInput)
			assert.ErrorIs(t, call(tiny), ErrInvalidInput)
			assert.NoError(t, call(fine))
		})
	}
}
