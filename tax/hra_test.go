package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHRAExemption(t *testing.T) {
	type TC struct {
		name      string
		basic     string
		hra       string
		rent      string
		isMetro   bool
		exemption string
		taxable   string
		basis     HRABasis
	}

	tcs := []TC{
		{
			name:      "rent minus ten percent binds",
			basic:     "50000",
			hra:       "25000",
			rent:      "20000",
			isMetro:   true,
			exemption: "15000",
			taxable:   "10000",
			basis:     BasisRentExcess,
		},
		{
			name:      "ties go to actual hra",
			basic:     "50000",
			hra:       "25000",
			rent:      "30000",
			isMetro:   true,
			exemption: "25000",
			taxable:   "0",
			basis:     BasisActualHRA,
		},
		{
			name:      "non metro salary share binds",
			basic:     "50000",
			hra:       "30000",
			rent:      "40000",
			isMetro:   false,
			exemption: "20000",
			taxable:   "10000",
			basis:     BasisSalaryPercent,
		},
		{
			name:      "rent below ten percent of salary gives no exemption",
			basic:     "50000",
			hra:       "20000",
			rent:      "4000",
			isMetro:   true,
			exemption: "0",
			taxable:   "20000",
			basis:     BasisRentExcess,
		},
	}

	t.Parallel()

	calc := newTestCalculator()

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.HRAExemption(d(tc.basic), d(tc.hra), d(tc.rent), tc.isMetro)
			require.NoError(t, err)

			assertDecimal(t, tc.exemption, got.ExemptionAmount, "exemption")
			assertDecimal(t, tc.taxable, got.TaxableHRA, "taxable")
			assert.Equal(t, tc.basis, got.Basis)
			assert.True(t, got.ExemptionAmount.LessThanOrEqual(d(tc.hra)))
		})
	}
}

func TestHRAExemptionInvalidInput(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.HRAExemption(d("-1"), d("0"), d("0"), true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.HRAExemption(d("1"), d("-1"), d("0"), true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.HRAExemption(d("1"), d("0"), d("-1"), false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
