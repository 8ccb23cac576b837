package tax

import "github.com/shopspring/decimal"

// GSTResult presents both the intra-state (CGST+SGST) and inter-state (IGST)
// decomposition of the same tax; only one applies to a given supply.
type GSTResult struct {
	Mode        GSTMode         `json:"mode"`
	Rate        decimal.Decimal `json:"rate"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	GSTAmount   decimal.Decimal `json:"gstAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
}

func GST(amount, ratePct decimal.Decimal, mode GSTMode) (GSTResult, error) {
	if err := checkAmounts(
		amountField{"amount", amount},
		amountField{"gst_rate_pct", ratePct},
	); err != nil {
		return GSTResult{}, err
	}

	switch {
	case !amount.IsPositive():
		return GSTResult{}, invalidf("amount must be > 0")
	case ratePct.IsNegative():
		return GSTResult{}, invalidf("gst_rate_pct must be >= 0")
	}

	if _, err := ParseGSTMode(string(mode)); err != nil {
		return GSTResult{}, err
	}

	var base, gst, total decimal.Decimal

	switch mode {
	case GSTExclusive:
		base = money(amount)
		gst = money(amount.Mul(ratePct).Div(hundred))
		total = base.Add(gst)
	case GSTInclusive:
		total = money(amount)
		base = money(amount.DivRound(one.Add(ratePct.Div(hundred)), compoundPrecision))
		gst = total.Sub(base)
	}

	// Halves are rounded on CGST so that CGST+SGST always equals the total.
	cgst := money(gst.Div(decimal.NewFromInt(2)))

	return GSTResult{
		Mode:        mode,
		Rate:        ratePct,
		BaseAmount:  base,
		GSTAmount:   gst,
		TotalAmount: total,
		CGST:        cgst,
		SGST:        gst.Sub(cgst),
		IGST:        gst,
	}, nil
}
