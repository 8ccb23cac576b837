package tax

import "github.com/shopspring/decimal"

type CapitalGainsResult struct {
	AssetType     AssetType       `json:"assetType"`
	HoldingMonths int             `json:"holdingMonths"`
	GainAmount    decimal.Decimal `json:"gainAmount"`
	IsLoss        bool            `json:"isLoss"`
	Term          Term            `json:"term"`
	Exemption     decimal.Decimal `json:"exemption"`
	TaxableGain   decimal.Decimal `json:"taxableGain"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	NetGain       decimal.Decimal `json:"netGain"`
}

func (c *Calculator) CapitalGains(purchase, sale decimal.Decimal, months int, asset AssetType) (CapitalGainsResult, error) {
	if err := checkAmounts(
		amountField{"purchase_price", purchase},
		amountField{"sale_price", sale},
	); err != nil {
		return CapitalGainsResult{}, err
	}

	switch {
	case purchase.IsNegative():
		return CapitalGainsResult{}, invalidf("purchase_price must be >= 0")
	case sale.IsNegative():
		return CapitalGainsResult{}, invalidf("sale_price must be >= 0")
	case months < 0:
		return CapitalGainsResult{}, invalidf("holding_period_months must be >= 0")
	}

	if _, err := ParseAssetType(string(asset)); err != nil {
		return CapitalGainsResult{}, err
	}

	rules := c.rules.CapitalGains
	gain := sale.Sub(purchase)

	term := ShortTerm
	if months >= rules.LongTermMonths[asset] {
		term = LongTerm
	}

	result := CapitalGainsResult{
		AssetType:     asset,
		HoldingMonths: months,
		GainAmount:    money(gain),
		Term:          term,
		Exemption:     decimal.Zero,
		TaxableGain:   decimal.Zero,
		TaxRate:       decimal.Zero,
		TaxAmount:     decimal.Zero,
		NetGain:       money(gain),
	}

	if !gain.IsPositive() {
		result.IsLoss = true
		return result, nil
	}

	taxable := gain
	rate := rules.ShortTermRates[asset]

	if term == LongTerm {
		rate = rules.LongTermRates[asset]

		if asset == AssetEquity {
			taxable = atLeastZero(gain.Sub(rules.EquityLTCGExemption))
		}
	}

	tax := money(taxable.Mul(rate))

	result.Exemption = money(gain.Sub(taxable))
	result.TaxableGain = money(taxable)
	result.TaxRate = rate
	result.TaxAmount = tax
	result.NetGain = money(gain.Sub(tax))

	return result, nil
}
