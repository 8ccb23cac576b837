package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGratuity(t *testing.T) {
	type TC struct {
		name     string
		basic    string
		years    string
		covered  bool
		eligible bool
		amount   string
		taxFree  string
		taxable  string
	}

	tcs := []TC{
		{
			name:     "under five years is not eligible",
			basic:    "30000",
			years:    "4",
			covered:  true,
			eligible: false,
			amount:   "0",
			taxFree:  "0",
			taxable:  "0",
		},
		{
			name:     "exactly five years is eligible",
			basic:    "26000",
			years:    "5",
			covered:  true,
			eligible: true,
			amount:   "75000",
			taxFree:  "75000",
			taxable:  "0",
		},
		{
			name:     "covered uses 26 working days",
			basic:    "30000",
			years:    "10",
			covered:  true,
			eligible: true,
			amount:   "173076.92",
			taxFree:  "173076.92",
			taxable:  "0",
		},
		{
			name:     "not covered uses 30 days",
			basic:    "30000",
			years:    "10",
			covered:  false,
			eligible: true,
			amount:   "150000",
			taxFree:  "150000",
			taxable:  "0",
		},
		{
			name:     "covered payout is capped",
			basic:    "500000",
			years:    "30",
			covered:  true,
			eligible: true,
			amount:   "2000000",
			taxFree:  "2000000",
			taxable:  "0",
		},
		{
			name:     "uncovered payout is uncapped but exemption is",
			basic:    "500000",
			years:    "30",
			covered:  false,
			eligible: true,
			amount:   "7500000",
			taxFree:  "2000000",
			taxable:  "5500000",
		},
	}

	t.Parallel()

	calc := newTestCalculator()

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Gratuity(d(tc.basic), d(tc.years), tc.covered)
			require.NoError(t, err)

			assert.Equal(t, tc.eligible, got.Eligible)
			assertDecimal(t, tc.amount, got.GratuityAmount, "amount")
			assertDecimal(t, tc.taxFree, got.TaxFreeAmount, "taxFree")
			assertDecimal(t, tc.taxable, got.TaxableAmount, "taxable")
		})
	}
}

func TestGratuityInvalidInput(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Gratuity(d("-1"), d("5"), true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.Gratuity(d("1000"), d("-5"), true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
