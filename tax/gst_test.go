package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGST(t *testing.T) {
	type TC struct {
		name   string
		amount string
		rate   string
		mode   GSTMode
		base   string
		gst    string
		total  string
		cgst   string
		sgst   string
	}

	tcs := []TC{
		{
			name:   "inclusive extraction",
			amount: "118",
			rate:   "18",
			mode:   GSTInclusive,
			base:   "100",
			gst:    "18",
			total:  "118",
			cgst:   "9",
			sgst:   "9",
		},
		{
			name:   "exclusive addition",
			amount: "1000",
			rate:   "18",
			mode:   GSTExclusive,
			base:   "1000",
			gst:    "180",
			total:  "1180",
			cgst:   "90",
			sgst:   "90",
		},
		{
			name:   "zero rated supply",
			amount: "500",
			rate:   "0",
			mode:   GSTExclusive,
			base:   "500",
			gst:    "0",
			total:  "500",
			cgst:   "0",
			sgst:   "0",
		},
		{
			name:   "odd paise split keeps halves summing to total",
			amount: "0.05",
			rate:   "18",
			mode:   GSTExclusive,
			base:   "0.05",
			gst:    "0.01",
			total:  "0.06",
			cgst:   "0.01",
			sgst:   "0",
		},
	}

	t.Parallel()

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GST(d(tc.amount), d(tc.rate), tc.mode)
			require.NoError(t, err)

			assertDecimal(t, tc.base, got.BaseAmount, "base")
			assertDecimal(t, tc.gst, got.GSTAmount, "gst")
			assertDecimal(t, tc.total, got.TotalAmount, "total")
			assertDecimal(t, tc.cgst, got.CGST, "cgst")
			assertDecimal(t, tc.sgst, got.SGST, "sgst")

			assert.True(t, got.CGST.Add(got.SGST).Equal(got.GSTAmount))
			assert.True(t, got.IGST.Equal(got.GSTAmount))
		})
	}
}

func TestGSTRoundTrip(t *testing.T) {
	tolerance := d("0.01")

	for _, amount := range []string{"1", "99.99", "12345.67", "250000"} {
		for _, rate := range []string{"0", "5", "12", "18", "28"} {
			exclusive, err := GST(d(amount), d(rate), GSTExclusive)
			require.NoError(t, err)

			inclusive, err := GST(exclusive.TotalAmount, d(rate), GSTInclusive)
			require.NoError(t, err)

			diff := inclusive.BaseAmount.Sub(d(amount)).Abs()
			assert.Truef(t, diff.LessThanOrEqual(tolerance), "amount %s rate %s recovered %s", amount, rate, inclusive.BaseAmount)
		}
	}
}

func TestGSTInvalidInput(t *testing.T) {
	_, err := GST(d("0"), d("18"), GSTExclusive)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GST(d("100"), d("-1"), GSTExclusive)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GST(d("100"), d("18"), GSTMode("both"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
