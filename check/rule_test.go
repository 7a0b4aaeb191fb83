package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     RuleSet
		wantErr string
	}{
		{
			name: "valid set",
			set: RuleSet{Rules: []Rule{
				{Name: "a", Expr: "stable"},
				{Name: "b", Expr: "!stable", Severity: SeverityWarn},
			}},
		},
		{
			name: "empty set",
			set:  RuleSet{},
		},
		{
			name:    "missing name",
			set:     RuleSet{Rules: []Rule{{Expr: "stable"}}},
			wantErr: "missing required field 'name'",
		},
		{
			name:    "missing expr",
			set:     RuleSet{Rules: []Rule{{Name: "a"}}},
			wantErr: "missing required field 'expr'",
		},
		{
			name: "unknown severity",
			set: RuleSet{Rules: []Rule{
				{Name: "a", Expr: "stable", Severity: "fatal"},
			}},
			wantErr: `unknown severity "fatal"`,
		},
		{
			name: "duplicate name",
			set: RuleSet{Rules: []Rule{
				{Name: "a", Expr: "stable"},
				{Name: "a", Expr: "!stable"},
			}},
			wantErr: "duplicate rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultRules(t *testing.T) {
	set := DefaultRules()

	require.NoError(t, set.Validate())
	assert.NotEmpty(t, set.Rules)

	// Every shipped rule must compile.
	_, err := NewRunner(set)
	require.NoError(t, err)

	bySeverity := make(map[Severity]int)
	for _, rule := range set.Rules {
		bySeverity[rule.Severity]++
	}
	assert.Zero(t, bySeverity[""], "shipped rules carry explicit severities")

	var accentContrast *Rule
	for i := range set.Rules {
		if set.Rules[i].Name == "accent-contrast" {
			accentContrast = &set.Rules[i]
		}
	}
	require.NotNil(t, accentContrast)
	assert.Equal(t, SeverityWarn, accentContrast.Severity,
		"the accent floor is not re-checked after text adjustment, so it only warns")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warn", SeverityWarn.String())
}
