package tax

import "github.com/shopspring/decimal"

// SlabTax is one line of a slab breakdown. Upper is Unbounded for the top
// slab. Every slab of the table is reported, including untouched ones.
type SlabTax struct {
	Label   string          `json:"label"`
	Lower   decimal.Decimal `json:"lower"`
	Upper   decimal.Decimal `json:"upper"`
	Rate    decimal.Decimal `json:"rate"`
	Taxable decimal.Decimal `json:"taxable"`
	Tax     decimal.Decimal `json:"tax"`
}

func slabLabel(lower decimal.Decimal, b Band) string {
	if b.unbounded() {
		return "above " + formatINR(lower)
	}

	if lower.IsZero() {
		return "0-" + formatINR(b.Max)
	}

	return formatINR(lower.Add(one)) + "-" + formatINR(b.Max)
}

// calculateTaxStatement walks the bands as a running total: each completed
// band contributes its full width, the band holding income contributes only
// the part above its lower bound.
func calculateTaxStatement(bands []Band, income decimal.Decimal) ([]SlabTax, decimal.Decimal) {
	statements := make([]SlabTax, 0, len(bands))
	total := decimal.Zero
	lower := decimal.Zero

	for _, b := range bands {
		portion := decimal.Zero

		if income.GreaterThan(lower) {
			top := income
			if !b.unbounded() && b.Max.LessThan(income) {
				top = b.Max
			}
			portion = top.Sub(lower)
		}

		tax := portion.Mul(b.Rate)
		total = total.Add(tax)

		statements = append(statements, SlabTax{
			Label:   slabLabel(lower, b),
			Lower:   lower,
			Upper:   b.Max,
			Rate:    b.Rate,
			Taxable: money(portion),
			Tax:     money(tax),
		})

		if b.unbounded() {
			break
		}
		lower = b.Max
	}

	return statements, money(total)
}

func (r OldRegimeRules) bandsFor(age AgeGroup) []Band {
	exemption := r.Exemption[age]

	var bands []Band
	if exemption.IsPositive() {
		bands = append(bands, Band{Rate: decimal.Zero, Max: exemption})
	}

	for _, b := range r.Bands {
		if b.unbounded() || b.Max.GreaterThan(exemption) {
			bands = append(bands, b)
		}
	}

	return bands
}
