package validator

// RuleSet is an ordered, append-only collection of rules for one field.
type RuleSet struct {
	rules     []Rule
	normalize func(string) string
}

// NewRuleSet creates a rule set holding rules in the given order.
func NewRuleSet(rules ...Rule) *RuleSet {
	rs := &RuleSet{}
	rs.Add(rules...)
	return rs
}

// Add appends rules. Rules are never removed once added.
func (rs *RuleSet) Add(rules ...Rule) {
	rs.rules = append(rs.rules, rules...)
}

func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns a copy of the rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	return append([]Rule(nil), rs.rules...)
}

// Clone returns an independent copy, so a shared set can be extended for a
// single field without affecting other fields.
func (rs *RuleSet) Clone() *RuleSet {
	if rs == nil {
		return NewRuleSet()
	}
	return &RuleSet{
		rules:     rs.Rules(),
		normalize: rs.normalize,
	}
}

// WithNormalizer returns a clone that passes present values through fn
// before evaluating any rule.
func (rs *RuleSet) WithNormalizer(fn func(string) string) *RuleSet {
	clone := rs.Clone()
	clone.normalize = fn
	return clone
}

// Bind returns a clone whose errors report the given field id.
func (rs *RuleSet) Bind(field string) *RuleSet {
	clone := rs.Clone()
	for i := range clone.rules {
		clone.rules[i].Error = clone.rules[i].Error.WithField(field)
	}
	return clone
}

// Evaluate runs every rule against value in insertion order and collects all
// failures. A failing rule never suppresses the rules after it.
func (rs *RuleSet) Evaluate(value *string) Outcome {
	if rs == nil || len(rs.rules) == 0 {
		return Valid()
	}

	if value != nil && rs.normalize != nil {
		normalized := rs.normalize(*value)
		value = &normalized
	}

	var errs ValidationErrors
	for _, rule := range rs.rules {
		if !rule.Validate(value) {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return Valid()
	}
	return Outcome{Errors: errs}
}
