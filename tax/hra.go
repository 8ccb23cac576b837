package tax

import "github.com/shopspring/decimal"

// HRABasis names the candidate that bound the exemption.
type HRABasis string

const (
	BasisActualHRA     HRABasis = "actual_hra"
	BasisRentExcess    HRABasis = "rent_excess"
	BasisSalaryPercent HRABasis = "salary_percent"
)

type HRAResult struct {
	ActualHRA       decimal.Decimal `json:"actualHra"`
	RentExcess      decimal.Decimal `json:"rentExcess"`
	SalaryPercent   decimal.Decimal `json:"salaryPercent"`
	ExemptionAmount decimal.Decimal `json:"exemptionAmount"`
	TaxableHRA      decimal.Decimal `json:"taxableHra"`
	Basis           HRABasis        `json:"basis"`
}

// HRAExemption applies the least-of-three rule. On ties the earlier
// candidate wins.
func (c *Calculator) HRAExemption(basic, hra, rent decimal.Decimal, isMetro bool) (HRAResult, error) {
	if err := checkAmounts(
		amountField{"basic_salary", basic},
		amountField{"hra_received", hra},
		amountField{"rent_paid", rent},
	); err != nil {
		return HRAResult{}, err
	}

	switch {
	case basic.IsNegative():
		return HRAResult{}, invalidf("basic_salary must be >= 0")
	case hra.IsNegative():
		return HRAResult{}, invalidf("hra_received must be >= 0")
	case rent.IsNegative():
		return HRAResult{}, invalidf("rent_paid must be >= 0")
	}

	share := c.rules.HRA.NonMetroShare
	if isMetro {
		share = c.rules.HRA.MetroShare
	}

	candidates := []struct {
		basis  HRABasis
		amount decimal.Decimal
	}{
		{BasisActualHRA, hra},
		{BasisRentExcess, atLeastZero(rent.Sub(basic.Mul(c.rules.HRA.RentOffset)))},
		{BasisSalaryPercent, basic.Mul(share)},
	}

	binding := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.amount.LessThan(binding.amount) {
			binding = cand
		}
	}

	exemption := money(binding.amount)

	return HRAResult{
		ActualHRA:       money(candidates[0].amount),
		RentExcess:      money(candidates[1].amount),
		SalaryPercent:   money(candidates[2].amount),
		ExemptionAmount: exemption,
		TaxableHRA:      money(atLeastZero(hra.Sub(exemption))),
		Basis:           binding.basis,
	}, nil
}
