package tax

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Unbounded marks the Max of the top band.
var Unbounded = decimal.NewFromInt(-1)

// Band is one slab of a table, expressed by its upper bound only. The lower
// bound is the Max of the previous band (or zero for the first one).
type Band struct {
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
}

func (b Band) unbounded() bool {
	return b.Max.IsNegative()
}

type RebateRule struct {
	IncomeLimit decimal.Decimal `yaml:"income_limit"`
	MaxRebate   decimal.Decimal `yaml:"max_rebate"`
}

type NewRegimeRules struct {
	Bands  []Band     `yaml:"bands"`
	Rebate RebateRule `yaml:"rebate"`
}

type OldRegimeRules struct {
	// Exemption is the zero-rate threshold per age group. Bands whose Max
	// falls at or below it are skipped.
	Exemption map[AgeGroup]decimal.Decimal `yaml:"exemption"`
	Bands     []Band                       `yaml:"bands"`
	Rebate    RebateRule                   `yaml:"rebate"`
}

type DeductionRules struct {
	Caps          map[DeductionCode]decimal.Decimal `yaml:"caps"`
	HealthCaps    map[AgeGroup]decimal.Decimal      `yaml:"health_caps"`
	DonationShare decimal.Decimal                   `yaml:"donation_share"`
}

type HRARules struct {
	MetroShare    decimal.Decimal `yaml:"metro_share"`
	NonMetroShare decimal.Decimal `yaml:"non_metro_share"`
	RentOffset    decimal.Decimal `yaml:"rent_offset"`
}

type CapitalGainsRules struct {
	LongTermMonths      map[AssetType]int             `yaml:"long_term_months"`
	LongTermRates       map[AssetType]decimal.Decimal `yaml:"long_term_rates"`
	ShortTermRates      map[AssetType]decimal.Decimal `yaml:"short_term_rates"`
	EquityLTCGExemption decimal.Decimal               `yaml:"equity_ltcg_exemption"`
}

type GratuityRules struct {
	MinYears         decimal.Decimal `yaml:"min_years"`
	DaysPerYear      decimal.Decimal `yaml:"days_per_year"`
	CoveredDivisor   decimal.Decimal `yaml:"covered_divisor"`
	UncoveredDivisor decimal.Decimal `yaml:"uncovered_divisor"`
	Cap              decimal.Decimal `yaml:"cap"`
}

// Rules carries every statutory constant the calculators read. A Rules value
// is treated as immutable once handed to NewCalculator; the With* methods
// return modified copies.
type Rules struct {
	NewRegime    NewRegimeRules                 `yaml:"new_regime"`
	OldRegime    OldRegimeRules                 `yaml:"old_regime"`
	CessRate     decimal.Decimal                `yaml:"cess_rate"`
	Deductions   DeductionRules                 `yaml:"deductions"`
	HRA          HRARules                       `yaml:"hra"`
	CapitalGains CapitalGainsRules              `yaml:"capital_gains"`
	TDSRates     map[TDSSection]decimal.Decimal `yaml:"tds_rates"`
	Gratuity     GratuityRules                  `yaml:"gratuity"`
}

func lakh(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 100_000)
}

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s).Div(decimal.NewFromInt(100))
}

func DefaultRules() Rules {
	return Rules{
		NewRegime: NewRegimeRules{
			Bands: []Band{
				{Rate: pct("0"), Max: lakh(3)},
				{Rate: pct("5"), Max: lakh(6)},
				{Rate: pct("10"), Max: lakh(9)},
				{Rate: pct("15"), Max: lakh(12)},
				{Rate: pct("20"), Max: lakh(15)},
				{Rate: pct("30"), Max: Unbounded},
			},
			Rebate: RebateRule{IncomeLimit: lakh(7), MaxRebate: decimal.NewFromInt(25_000)},
		},
		OldRegime: OldRegimeRules{
			Exemption: map[AgeGroup]decimal.Decimal{
				AgeUnder60:     decimal.NewFromInt(250_000),
				AgeSenior:      lakh(3),
				AgeSuperSenior: lakh(5),
			},
			Bands: []Band{
				{Rate: pct("5"), Max: lakh(5)},
				{Rate: pct("20"), Max: lakh(10)},
				{Rate: pct("30"), Max: Unbounded},
			},
			Rebate: RebateRule{IncomeLimit: lakh(5), MaxRebate: decimal.NewFromInt(12_500)},
		},
		CessRate: pct("4"),
		Deductions: DeductionRules{
			Caps: map[DeductionCode]decimal.Decimal{
				DeductionStandard: decimal.NewFromInt(50_000),
				Deduction80C:      decimal.NewFromInt(150_000),
				Deduction80CCD1B:  decimal.NewFromInt(50_000),
				Deduction80TTA:    decimal.NewFromInt(10_000),
				Deduction24B:      lakh(2),
			},
			HealthCaps: map[AgeGroup]decimal.Decimal{
				AgeUnder60:     decimal.NewFromInt(25_000),
				AgeSenior:      decimal.NewFromInt(50_000),
				AgeSuperSenior: decimal.NewFromInt(50_000),
			},
			DonationShare: pct("10"),
		},
		HRA: HRARules{
			MetroShare:    pct("50"),
			NonMetroShare: pct("40"),
			RentOffset:    pct("10"),
		},
		CapitalGains: CapitalGainsRules{
			LongTermMonths: map[AssetType]int{
				AssetEquity:   12,
				AssetProperty: 24,
				AssetDebt:     36,
			},
			LongTermRates: map[AssetType]decimal.Decimal{
				AssetEquity:   pct("10"),
				AssetProperty: pct("20"),
				AssetDebt:     pct("20"),
			},
			ShortTermRates: map[AssetType]decimal.Decimal{
				AssetEquity:   pct("15"),
				AssetProperty: pct("30"),
				AssetDebt:     pct("30"),
			},
			EquityLTCGExemption: lakh(1),
		},
		TDSRates: map[TDSSection]decimal.Decimal{
			Section194A: decimal.NewFromInt(10),
			Section194B: decimal.NewFromInt(30),
			Section194C: decimal.NewFromInt(1),
			Section194H: decimal.NewFromInt(5),
			Section194I: decimal.NewFromInt(10),
			Section194J: decimal.NewFromInt(10),
			Section194M: decimal.NewFromInt(5),
			Section194Q: decimal.RequireFromString("0.1"),
		},
		Gratuity: GratuityRules{
			MinYears:         decimal.NewFromInt(5),
			DaysPerYear:      decimal.NewFromInt(15),
			CoveredDivisor:   decimal.NewFromInt(26),
			UncoveredDivisor: decimal.NewFromInt(30),
			Cap:              lakh(20),
		},
	}
}

// Clone returns a deep copy so overlays never alias the receiver's maps.
func (r Rules) Clone() Rules {
	c := r
	c.NewRegime.Bands = slices.Clone(r.NewRegime.Bands)
	c.OldRegime.Bands = slices.Clone(r.OldRegime.Bands)
	c.OldRegime.Exemption = maps.Clone(r.OldRegime.Exemption)
	c.Deductions.Caps = maps.Clone(r.Deductions.Caps)
	c.Deductions.HealthCaps = maps.Clone(r.Deductions.HealthCaps)
	c.CapitalGains.LongTermMonths = maps.Clone(r.CapitalGains.LongTermMonths)
	c.CapitalGains.LongTermRates = maps.Clone(r.CapitalGains.LongTermRates)
	c.CapitalGains.ShortTermRates = maps.Clone(r.CapitalGains.ShortTermRates)
	c.TDSRates = maps.Clone(r.TDSRates)
	return c
}

func (r Rules) WithDeductionCaps(caps map[DeductionCode]decimal.Decimal) Rules {
	c := r.Clone()
	for code, amount := range caps {
		c.Deductions.Caps[code] = amount
	}
	return c
}

// WithTDSRates overlays section rates, expressed in percent.
func (r Rules) WithTDSRates(rates map[TDSSection]decimal.Decimal) Rules {
	c := r.Clone()
	for section, rate := range rates {
		c.TDSRates[section] = rate
	}
	return c
}

func validateBands(name string, bands []Band) error {
	if len(bands) == 0 {
		return invalidf("%s: no bands", name)
	}

	prevMax := decimal.Zero
	prevRate := decimal.Zero

	for i, b := range bands {
		last := i == len(bands)-1

		if err := checkAmounts(
			amountField{name + " rate", b.Rate},
			amountField{name + " max", b.Max},
		); err != nil {
			return err
		}

		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return invalidf("%s: band %d rate out of range", name, i)
		}

		if b.Rate.LessThan(prevRate) {
			return invalidf("%s: band %d rate decreases", name, i)
		}

		if b.unbounded() != last {
			return invalidf("%s: only the last band may be unbounded", name)
		}

		if !last && !b.Max.GreaterThan(prevMax) {
			return invalidf("%s: band %d max must exceed %s", name, i, prevMax)
		}

		prevMax = b.Max
		prevRate = b.Rate
	}

	return nil
}

func validateAmount(name string, v decimal.Decimal) error {
	if err := CheckAmount(name, v); err != nil {
		return err
	}

	if v.IsNegative() {
		return invalidf("%s must be >= 0", name)
	}

	return nil
}

func validateFraction(name string, v decimal.Decimal) error {
	if err := validateAmount(name, v); err != nil {
		return err
	}

	if v.GreaterThan(one) {
		return invalidf("%s must be <= 1", name)
	}

	return nil
}

func validatePositive(name string, v decimal.Decimal) error {
	if err := validateAmount(name, v); err != nil {
		return err
	}

	if v.IsZero() {
		return invalidf("%s must be > 0", name)
	}

	return nil
}

// Validate checks that every band table, including the per-age old regime
// tables, partitions [0, ∞), that every selector has an entry in the lookup
// tables and that scalar figures are within range.
func (r Rules) Validate() error {
	if err := validateBands("new_regime", r.NewRegime.Bands); err != nil {
		return err
	}

	if err := validateBands("old_regime", r.OldRegime.Bands); err != nil {
		return err
	}

	scalars := []struct {
		name  string
		value decimal.Decimal
		check func(string, decimal.Decimal) error
	}{
		{"cess_rate", r.CessRate, validateFraction},
		{"new_regime.rebate.income_limit", r.NewRegime.Rebate.IncomeLimit, validateAmount},
		{"new_regime.rebate.max_rebate", r.NewRegime.Rebate.MaxRebate, validateAmount},
		{"old_regime.rebate.income_limit", r.OldRegime.Rebate.IncomeLimit, validateAmount},
		{"old_regime.rebate.max_rebate", r.OldRegime.Rebate.MaxRebate, validateAmount},
		{"deductions.donation_share", r.Deductions.DonationShare, validateFraction},
		{"hra.metro_share", r.HRA.MetroShare, validateFraction},
		{"hra.non_metro_share", r.HRA.NonMetroShare, validateFraction},
		{"hra.rent_offset", r.HRA.RentOffset, validateFraction},
		{"capital_gains.equity_ltcg_exemption", r.CapitalGains.EquityLTCGExemption, validateAmount},
		{"gratuity.min_years", r.Gratuity.MinYears, validateAmount},
		{"gratuity.days_per_year", r.Gratuity.DaysPerYear, validatePositive},
		{"gratuity.covered_divisor", r.Gratuity.CoveredDivisor, validatePositive},
		{"gratuity.uncovered_divisor", r.Gratuity.UncoveredDivisor, validatePositive},
		{"gratuity.cap", r.Gratuity.Cap, validateAmount},
	}

	for _, sc := range scalars {
		if err := sc.check(sc.name, sc.value); err != nil {
			return err
		}
	}

	for _, g := range []AgeGroup{AgeUnder60, AgeSenior, AgeSuperSenior} {
		exemption, ok := r.OldRegime.Exemption[g]
		if !ok {
			return invalidf("old_regime: missing exemption for %s", g)
		}

		if err := validateAmount("old_regime.exemption."+string(g), exemption); err != nil {
			return err
		}

		if err := validateBands("old_regime "+string(g), r.OldRegime.bandsFor(g)); err != nil {
			return err
		}

		healthCap, ok := r.Deductions.HealthCaps[g]
		if !ok {
			return invalidf("deductions: missing 80D cap for %s", g)
		}

		if err := validateAmount("deductions.health_caps."+string(g), healthCap); err != nil {
			return err
		}
	}

	for _, a := range []AssetType{AssetEquity, AssetProperty, AssetDebt} {
		months, ok := r.CapitalGains.LongTermMonths[a]
		if !ok {
			return invalidf("capital_gains: missing holding threshold for %s", a)
		}

		if months < 0 {
			return invalidf("capital_gains: negative holding threshold for %s", a)
		}

		longRate, ok := r.CapitalGains.LongTermRates[a]
		if !ok {
			return invalidf("capital_gains: missing long-term rate for %s", a)
		}

		if err := validateFraction("capital_gains.long_term_rates."+string(a), longRate); err != nil {
			return err
		}

		shortRate, ok := r.CapitalGains.ShortTermRates[a]
		if !ok {
			return invalidf("capital_gains: missing short-term rate for %s", a)
		}

		if err := validateFraction("capital_gains.short_term_rates."+string(a), shortRate); err != nil {
			return err
		}
	}

	for _, code := range DeductionCodes {
		if code == Deduction80D || code == Deduction80G {
			continue
		}

		if _, ok := r.Deductions.Caps[code]; !ok {
			return invalidf("deductions: missing cap for %s", code)
		}
	}

	for code, amount := range r.Deductions.Caps {
		if _, err := ParseDeductionCode(string(code)); err != nil {
			return err
		}

		if err := validateAmount("deductions.caps."+string(code), amount); err != nil {
			return err
		}
	}

	for section, rate := range r.TDSRates {
		if _, err := ParseTDSSection(string(section)); err != nil {
			return err
		}

		if err := CheckAmount("tds_rates."+string(section), rate); err != nil {
			return err
		}

		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return invalidf("tds_rates: rate for %s out of range", section)
		}
	}

	return nil
}
