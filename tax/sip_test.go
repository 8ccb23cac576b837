package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIP(t *testing.T) {
	got, err := SIP(d("5000"), d("12"), 10)
	require.NoError(t, err)

	assertDecimal(t, "600000", got.TotalInvested, "totalInvested")
	assert.True(t, got.MaturityValue.GreaterThan(got.TotalInvested))
	assert.Truef(t, got.MaturityValue.GreaterThan(d("1161695")) && got.MaturityValue.LessThan(d("1161696")),
		"maturity value %s", got.MaturityValue)
	assert.True(t, got.TotalReturns.Equal(got.MaturityValue.Sub(got.TotalInvested)))

	require.Len(t, got.YearlyBreakdown, 10)

	for i, y := range got.YearlyBreakdown {
		assert.Equal(t, i+1, y.Year)
		assert.True(t, y.Invested.Equal(decimal.NewFromInt(int64(60_000*(i+1)))))

		if i > 0 {
			assert.True(t, y.Value.GreaterThan(got.YearlyBreakdown[i-1].Value))
		}
	}

	assert.True(t, got.YearlyBreakdown[9].Value.Equal(got.MaturityValue))
}

func TestSIPYearEntriesAreIndependent(t *testing.T) {
	full, err := SIP(d("2500"), d("10"), 5)
	require.NoError(t, err)

	for _, y := range full.YearlyBreakdown {
		short, err := SIP(d("2500"), d("10"), y.Year)
		require.NoError(t, err)

		assert.True(t, short.MaturityValue.Equal(y.Value), "year %d", y.Year)
	}
}

func TestSIPZeroReturn(t *testing.T) {
	got, err := SIP(d("1000"), d("0"), 2)
	require.NoError(t, err)

	assertDecimal(t, "24000", got.MaturityValue, "maturity")
	assertDecimal(t, "0", got.TotalReturns, "returns")
	assertDecimal(t, "12000", got.YearlyBreakdown[0].Value, "year 1")
}

func TestSIPInvalidInput(t *testing.T) {
	_, err := SIP(d("0"), d("12"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SIP(d("5000"), d("-1"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SIP(d("5000"), d("12"), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SIP(d("5000"), d("101"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SIP(d("5000"), d("12"), MaxSIPYears+1)
	assert.EqualError(t, err, "invalid input: tenure_years must be <= 100")
}

func TestSIPLongestTenure(t *testing.T) {
	got, err := SIP(d("5000"), d("12"), MaxSIPYears)
	assert.NoError(t, err)

	assert.Len(t, got.YearlyBreakdown, MaxSIPYears)
	assertDecimal(t, "6000000", got.TotalInvested, "invested")
	assert.True(t, got.MaturityValue.GreaterThan(got.TotalInvested))
}

func TestGrowth(t *testing.T) {
	assertDecimal(t, "1", growth(d("0.01"), 0), "n=0")
	assertDecimal(t, "1.01", growth(d("0.01"), 1), "n=1")
	assertDecimal(t, "1.030301", growth(d("0.01"), 3), "n=3")
}
