package tax

import "github.com/shopspring/decimal"

type TDSResult struct {
	Section    TDSSection      `json:"section"`
	Rate       decimal.Decimal `json:"rate"`
	Income     decimal.Decimal `json:"income"`
	TDSAmount  decimal.Decimal `json:"tdsAmount"`
	NetPayment decimal.Decimal `json:"netPayment"`
}

func (c *Calculator) TDS(income decimal.Decimal, section TDSSection) (TDSResult, error) {
	if err := CheckAmount("income", income); err != nil {
		return TDSResult{}, err
	}

	if income.IsNegative() {
		return TDSResult{}, invalidf("income must be >= 0")
	}

	rate, ok := c.rules.TDSRates[section]
	if !ok {
		return TDSResult{}, invalidf("unsupported tds section %q", section)
	}

	tds := money(income.Mul(rate).Div(hundred))

	return TDSResult{
		Section:    section,
		Rate:       rate,
		Income:     income,
		TDSAmount:  tds,
		NetPayment: income.Sub(tds),
	}, nil
}
