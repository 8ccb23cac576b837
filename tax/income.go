package tax

import "github.com/shopspring/decimal"

// Deductions maps a deduction code to the amount claimed. Amounts above the
// statutory cap are clamped, not rejected.
type Deductions map[DeductionCode]decimal.Decimal

type AppliedDeduction struct {
	Code    DeductionCode   `json:"code"`
	Claimed decimal.Decimal `json:"claimed"`
	Allowed decimal.Decimal `json:"allowed"`
}

type IncomeTaxResult struct {
	GrossIncome     decimal.Decimal    `json:"grossIncome"`
	TaxableIncome   decimal.Decimal    `json:"taxableIncome"`
	Regime          Regime             `json:"regime"`
	AgeGroup        AgeGroup           `json:"ageGroup"`
	Deductions      []AppliedDeduction `json:"deductions"`
	TotalDeductions decimal.Decimal    `json:"totalDeductions"`
	TaxBeforeRebate decimal.Decimal    `json:"taxBeforeRebate"`
	RebateApplied   decimal.Decimal    `json:"rebateApplied"`
	TaxAfterRebate  decimal.Decimal    `json:"taxAfterRebate"`
	Cess            decimal.Decimal    `json:"cess"`
	TotalTax        decimal.Decimal    `json:"totalTax"`
	EffectiveRate   decimal.Decimal    `json:"effectiveRate"`
	TakeHome        decimal.Decimal    `json:"takeHome"`
	SlabBreakdown   []SlabTax          `json:"slabBreakdown"`
}

type RegimeComparison struct {
	Old         IncomeTaxResult `json:"old"`
	New         IncomeTaxResult `json:"new"`
	Recommended Regime          `json:"recommended"`
	Savings     decimal.Decimal `json:"savings"`
}

func (c *Calculator) deductionCap(code DeductionCode, gross decimal.Decimal, age AgeGroup) decimal.Decimal {
	switch code {
	case Deduction80D:
		return c.rules.Deductions.HealthCaps[age]
	case Deduction80G:
		return gross.Mul(c.rules.Deductions.DonationShare)
	}
	return c.rules.Deductions.Caps[code]
}

// calculateTotalDeduction clamps each claim to its cap and sums the result.
// Claims are reported in DeductionCodes order.
func (c *Calculator) calculateTotalDeduction(gross decimal.Decimal, age AgeGroup, claims Deductions) ([]AppliedDeduction, decimal.Decimal) {
	var applied []AppliedDeduction
	total := decimal.Zero

	for _, code := range DeductionCodes {
		claimed, ok := claims[code]
		if !ok {
			continue
		}

		allowed := decimal.Min(claimed, c.deductionCap(code, gross, age))
		total = total.Add(allowed)

		applied = append(applied, AppliedDeduction{
			Code:    code,
			Claimed: claimed,
			Allowed: money(allowed),
		})
	}

	return applied, money(total)
}

func validateIncomeTaxInput(gross decimal.Decimal, age AgeGroup, regime Regime, claims Deductions) error {
	if err := CheckAmount("gross_income", gross); err != nil {
		return err
	}

	if gross.IsNegative() {
		return invalidf("gross_income must be >= 0")
	}

	if _, err := ParseAgeGroup(string(age)); err != nil {
		return err
	}

	if _, err := ParseRegime(string(regime)); err != nil {
		return err
	}

	for code, amount := range claims {
		if _, err := ParseDeductionCode(string(code)); err != nil {
			return err
		}

		if err := CheckAmount("deduction "+string(code), amount); err != nil {
			return err
		}

		if amount.IsNegative() {
			return invalidf("deduction %s must be >= 0", code)
		}
	}

	return nil
}

// IncomeTax computes tax for gross under the chosen regime. Deductions are
// only honoured under the old regime.
func (c *Calculator) IncomeTax(gross decimal.Decimal, age AgeGroup, regime Regime, claims Deductions) (IncomeTaxResult, error) {
	if err := validateIncomeTaxInput(gross, age, regime, claims); err != nil {
		return IncomeTaxResult{}, err
	}

	var (
		bands      []Band
		rebateRule RebateRule
		rebateBase decimal.Decimal
		applied    []AppliedDeduction
	)

	totalDeduc := decimal.Zero
	taxable := gross

	switch regime {
	case RegimeNew:
		bands = c.rules.NewRegime.Bands
		rebateRule = c.rules.NewRegime.Rebate
		rebateBase = gross
	case RegimeOld:
		applied, totalDeduc = c.calculateTotalDeduction(gross, age, claims)
		taxable = atLeastZero(gross.Sub(totalDeduc))
		bands = c.rules.OldRegime.bandsFor(age)
		rebateRule = c.rules.OldRegime.Rebate
		rebateBase = taxable
	}

	statements, tax := calculateTaxStatement(bands, taxable)

	rebate := decimal.Zero
	if rebateBase.LessThanOrEqual(rebateRule.IncomeLimit) {
		rebate = decimal.Min(tax, rebateRule.MaxRebate)
	}

	afterRebate := tax.Sub(rebate)
	cess := money(afterRebate.Mul(c.rules.CessRate))
	total := afterRebate.Add(cess)

	effective := decimal.Zero
	if gross.IsPositive() {
		effective = total.Div(gross).Mul(hundred).Round(2)
	}

	return IncomeTaxResult{
		GrossIncome:     gross,
		TaxableIncome:   money(taxable),
		Regime:          regime,
		AgeGroup:        age,
		Deductions:      applied,
		TotalDeductions: totalDeduc,
		TaxBeforeRebate: tax,
		RebateApplied:   rebate,
		TaxAfterRebate:  afterRebate,
		Cess:            cess,
		TotalTax:        total,
		EffectiveRate:   effective,
		TakeHome:        gross.Sub(total),
		SlabBreakdown:   statements,
	}, nil
}

// CompareRegimes runs both regimes on the same inputs. Ties favour the new
// regime since it is the default election.
func (c *Calculator) CompareRegimes(gross decimal.Decimal, age AgeGroup, claims Deductions) (RegimeComparison, error) {
	oldResult, err := c.IncomeTax(gross, age, RegimeOld, claims)
	if err != nil {
		return RegimeComparison{}, err
	}

	newResult, err := c.IncomeTax(gross, age, RegimeNew, claims)
	if err != nil {
		return RegimeComparison{}, err
	}

	recommended := RegimeNew
	if oldResult.TotalTax.LessThan(newResult.TotalTax) {
		recommended = RegimeOld
	}

	return RegimeComparison{
		Old:         oldResult,
		New:         newResult,
		Recommended: recommended,
		Savings:     oldResult.TotalTax.Sub(newResult.TotalTax).Abs(),
	}, nil
}
