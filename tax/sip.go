package tax

import "github.com/shopspring/decimal"

// compoundPrecision bounds the scale of intermediate products so that long
// tenures do not grow unbounded digit strings.
const compoundPrecision = 18

// MaxSIPYears caps the projection horizon.
const MaxSIPYears = 100

type SIPYear struct {
	Year     int             `json:"year"`
	Invested decimal.Decimal `json:"invested"`
	Value    decimal.Decimal `json:"value"`
	Returns  decimal.Decimal `json:"returns"`
}

type SIPProjection struct {
	MonthlyInvestment decimal.Decimal `json:"monthlyInvestment"`
	AnnualReturnPct   decimal.Decimal `json:"annualReturnPct"`
	TenureYears       int             `json:"tenureYears"`
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	MaturityValue     decimal.Decimal `json:"maturityValue"`
	TotalReturns      decimal.Decimal `json:"totalReturns"`
	YearlyBreakdown   []SIPYear       `json:"yearlyBreakdown"`
}

// growth returns (1+rate)^n by repeated squaring.
func growth(rate decimal.Decimal, n int) decimal.Decimal {
	result := one
	base := one.Add(rate)

	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(compoundPrecision)
		}
		base = base.Mul(base).Round(compoundPrecision)
	}

	return result
}

// annuityDue is the future value of n payments made at the start of each
// period.
func annuityDue(payment, rate decimal.Decimal, n int) decimal.Decimal {
	periods := decimal.NewFromInt(int64(n))

	if rate.IsZero() {
		return payment.Mul(periods)
	}

	return payment.
		Mul(growth(rate, n).Sub(one)).
		DivRound(rate, compoundPrecision).
		Mul(one.Add(rate))
}

// SIP projects a monthly systematic investment. Each yearly entry is derived
// from its own elapsed month count, not from the previous year's value.
func SIP(monthly, annualReturnPct decimal.Decimal, years int) (SIPProjection, error) {
	if err := checkAmounts(
		amountField{"monthly_investment", monthly},
		amountField{"annual_return_pct", annualReturnPct},
	); err != nil {
		return SIPProjection{}, err
	}

	switch {
	case !monthly.IsPositive():
		return SIPProjection{}, invalidf("monthly_investment must be > 0")
	case annualReturnPct.IsNegative():
		return SIPProjection{}, invalidf("annual_return_pct must be >= 0")
	case annualReturnPct.GreaterThan(hundred):
		return SIPProjection{}, invalidf("annual_return_pct must be <= 100")
	case years <= 0:
		return SIPProjection{}, invalidf("tenure_years must be > 0")
	case years > MaxSIPYears:
		return SIPProjection{}, invalidf("tenure_years must be <= %d", MaxSIPYears)
	}

	rate := annualReturnPct.DivRound(decimal.NewFromInt(1200), compoundPrecision)

	breakdown := make([]SIPYear, 0, years)
	for year := 1; year <= years; year++ {
		months := year * 12
		invested := monthly.Mul(decimal.NewFromInt(int64(months)))
		value := money(annuityDue(monthly, rate, months))

		breakdown = append(breakdown, SIPYear{
			Year:     year,
			Invested: money(invested),
			Value:    value,
			Returns:  value.Sub(money(invested)),
		})
	}

	last := breakdown[len(breakdown)-1]

	return SIPProjection{
		MonthlyInvestment: monthly,
		AnnualReturnPct:   annualReturnPct,
		TenureYears:       years,
		TotalInvested:     last.Invested,
		MaturityValue:     last.Value,
		TotalReturns:      last.Returns,
		YearlyBreakdown:   breakdown,
	}, nil
}
