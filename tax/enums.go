package tax

type AgeGroup string

const (
	AgeUnder60     AgeGroup = "under_60"
	AgeSenior      AgeGroup = "senior_60_80"
	AgeSuperSenior AgeGroup = "super_80"
)

func ParseAgeGroup(s string) (AgeGroup, error) {
	switch g := AgeGroup(s); g {
	case AgeUnder60, AgeSenior, AgeSuperSenior:
		return g, nil
	}
	return "", invalidf("unsupported age_group %q", s)
}

type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

func ParseRegime(s string) (Regime, error) {
	switch r := Regime(s); r {
	case RegimeOld, RegimeNew:
		return r, nil
	}
	return "", invalidf("unsupported regime %q", s)
}

type DeductionCode string

const (
	DeductionStandard DeductionCode = "standard_deduction"
	Deduction80C      DeductionCode = "80C"
	Deduction80D      DeductionCode = "80D"
	Deduction80CCD1B  DeductionCode = "80CCD(1B)"
	Deduction80G      DeductionCode = "80G"
	Deduction80TTA    DeductionCode = "80TTA"
	Deduction24B      DeductionCode = "24B"
)

// DeductionCodes lists every code in the order deductions are reported.
var DeductionCodes = []DeductionCode{
	DeductionStandard,
	Deduction80C,
	Deduction80D,
	Deduction80CCD1B,
	Deduction80G,
	Deduction80TTA,
	Deduction24B,
}

func ParseDeductionCode(s string) (DeductionCode, error) {
	for _, c := range DeductionCodes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", invalidf("unsupported deduction code %q", s)
}

type AssetType string

const (
	AssetEquity   AssetType = "equity"
	AssetProperty AssetType = "property"
	AssetDebt     AssetType = "debt"
)

func ParseAssetType(s string) (AssetType, error) {
	switch a := AssetType(s); a {
	case AssetEquity, AssetProperty, AssetDebt:
		return a, nil
	}
	return "", invalidf("unsupported asset_type %q", s)
}

type Term string

const (
	ShortTerm Term = "short"
	LongTerm  Term = "long"
)

type GSTMode string

const (
	GSTExclusive GSTMode = "exclusive"
	GSTInclusive GSTMode = "inclusive"
)

func ParseGSTMode(s string) (GSTMode, error) {
	switch m := GSTMode(s); m {
	case GSTExclusive, GSTInclusive:
		return m, nil
	}
	return "", invalidf("unsupported gst mode %q", s)
}

type TDSSection string

const (
	Section194A TDSSection = "194A"
	Section194B TDSSection = "194B"
	Section194C TDSSection = "194C"
	Section194H TDSSection = "194H"
	Section194I TDSSection = "194I"
	Section194J TDSSection = "194J"
	Section194M TDSSection = "194M"
	Section194Q TDSSection = "194Q"
)

var TDSSections = []TDSSection{
	Section194A,
	Section194B,
	Section194C,
	Section194H,
	Section194I,
	Section194J,
	Section194M,
	Section194Q,
}

func ParseTDSSection(s string) (TDSSection, error) {
	for _, sec := range TDSSections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", invalidf("unsupported tds section %q", s)
}
