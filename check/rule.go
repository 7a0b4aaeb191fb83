package check

import "fmt"

// Severity grades how a failed rule should be treated.
type Severity string

const (
	// SeverityError marks rules whose failure means the theme is broken.
	SeverityError Severity = "error"

	// SeverityWarn marks rules that flag degraded but usable output.
	SeverityWarn Severity = "warn"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Rule is one invariant over the theme fact document.
type Rule struct {
	// Name identifies the rule in reports and logs.
	Name string `json:"name" yaml:"name"`

	// Expr is a CEL expression that must evaluate to a boolean.
	Expr string `json:"expr" yaml:"expr"`

	// Severity defaults to error when empty.
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// RuleSet is a named collection of rules, typically loaded from a file.
type RuleSet struct {
	// Name identifies this rule set.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Rules contains the individual invariants.
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Validate checks the rule set structure for correctness.
// It ensures all rules have required fields, known severities, and
// unique names.
func (s *RuleSet) Validate() error {
	seenNames := make(map[string]bool)

	for i, rule := range s.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule at index %d is missing required field 'name'", i)
		}
		if rule.Expr == "" {
			return fmt.Errorf("rule %s at index %d is missing required field 'expr'", rule.Name, i)
		}

		switch rule.Severity {
		case "", SeverityError, SeverityWarn:
		default:
			return fmt.Errorf("rule %s has unknown severity %q", rule.Name, rule.Severity)
		}

		if seenNames[rule.Name] {
			return fmt.Errorf("duplicate rule name found: %s", rule.Name)
		}
		seenNames[rule.Name] = true
	}

	return nil
}

// DefaultRules returns the invariants every generated theme holds.
//
// The accent-contrast rule is a warning rather than an error: the
// accent color is adjusted against its button text after the
// accent/background floor is checked, so that floor can end up
// violated for some identifiers.
func DefaultRules() *RuleSet {
	return &RuleSet{
		Name: "garden-defaults",
		Rules: []Rule{
			{
				Name:     "text-contrast",
				Expr:     "contrast.textBackground >= 4.5",
				Severity: SeverityError,
			},
			{
				Name:     "primary-contrast",
				Expr:     "contrast.primaryBackground >= 3.0",
				Severity: SeverityError,
			},
			{
				Name:     "accent-text-contrast",
				Expr:     "contrast.accentText >= 4.5",
				Severity: SeverityError,
			},
			{
				Name:     "muted-contrast",
				Expr:     "contrast.mutedBackground >= 4.5",
				Severity: SeverityError,
			},
			{
				Name:     "border-contrast",
				Expr:     "contrast.borderBackground >= 2.0",
				Severity: SeverityError,
			},
			{
				Name:     "accent-contrast",
				Expr:     "contrast.accentBackground >= 3.0",
				Severity: SeverityWarn,
			},
			{
				Name:     "petal-count",
				Expr:     "flower.petalCount >= 4 && flower.petalCount <= 10",
				Severity: SeverityError,
			},
			{
				Name:     "layer-count",
				Expr:     "flower.layerCount >= 1 && flower.layerCount <= 3",
				Severity: SeverityError,
			},
			{
				Name:     "contour-thresholds",
				Expr:     "isoline.thresholdMin < isoline.thresholdMax",
				Severity: SeverityError,
			},
			{
				Name:     "deterministic",
				Expr:     "stable",
				Severity: SeverityError,
			},
		},
	}
}
