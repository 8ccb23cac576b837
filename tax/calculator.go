package tax

// Calculator evaluates the rule-driven calculators against one fixed Rules
// snapshot. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rules Rules
}

func NewCalculator(rules Rules) *Calculator {
	return &Calculator{rules: rules.Clone()}
}

func (c *Calculator) Rules() Rules {
	return c.rules.Clone()
}
