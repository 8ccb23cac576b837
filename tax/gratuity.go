package tax

import "github.com/shopspring/decimal"

type GratuityResult struct {
	Eligible        bool            `json:"eligible"`
	CoveredUnderAct bool            `json:"coveredUnderAct"`
	GratuityAmount  decimal.Decimal `json:"gratuityAmount"`
	TaxFreeAmount   decimal.Decimal `json:"taxFreeAmount"`
	TaxableAmount   decimal.Decimal `json:"taxableAmount"`
}

// Gratuity computes the payout for the last drawn basic salary. The cap on
// the payout applies only to employers covered by the Act; the exemption cap
// applies to both.
func (c *Calculator) Gratuity(basic, years decimal.Decimal, covered bool) (GratuityResult, error) {
	if err := checkAmounts(
		amountField{"basic_salary", basic},
		amountField{"years_of_service", years},
	); err != nil {
		return GratuityResult{}, err
	}

	switch {
	case basic.IsNegative():
		return GratuityResult{}, invalidf("basic_salary must be >= 0")
	case years.IsNegative():
		return GratuityResult{}, invalidf("years_of_service must be >= 0")
	}

	rules := c.rules.Gratuity

	result := GratuityResult{
		CoveredUnderAct: covered,
		GratuityAmount:  decimal.Zero,
		TaxFreeAmount:   decimal.Zero,
		TaxableAmount:   decimal.Zero,
	}

	if years.LessThan(rules.MinYears) {
		return result, nil
	}

	earned := basic.Mul(rules.DaysPerYear).Mul(years)

	var amount decimal.Decimal
	if covered {
		amount = decimal.Min(money(earned.Div(rules.CoveredDivisor)), rules.Cap)
	} else {
		amount = money(earned.Div(rules.UncoveredDivisor))
	}

	result.Eligible = true
	result.GratuityAmount = amount
	result.TaxFreeAmount = decimal.Min(amount, rules.Cap)
	result.TaxableAmount = atLeastZero(amount.Sub(rules.Cap))

	return result, nil
}
