package check

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripledoublev/spores.garden-sub000/theme"
)

func TestNewRunner(t *testing.T) {
	t.Run("nil set uses the default rules", func(t *testing.T) {
		runner, err := NewRunner(nil)
		require.NoError(t, err)
		require.NotNil(t, runner)
		assert.Len(t, runner.rules, len(DefaultRules().Rules))
	})

	t.Run("compile error", func(t *testing.T) {
		_, err := NewRunner(&RuleSet{Rules: []Rule{
			{Name: "broken", Expr: "contrast.textBackground >="},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile rule broken")
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := NewRunner(&RuleSet{Rules: []Rule{
			{Name: "broken", Expr: "nonexistent > 1"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile rule broken")
	})

	t.Run("non-boolean expression", func(t *testing.T) {
		_, err := NewRunner(&RuleSet{Rules: []Rule{
			{Name: "arithmetic", Expr: "flower.petalCount + 1"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must evaluate to a boolean")
	})

	t.Run("invalid set", func(t *testing.T) {
		_, err := NewRunner(&RuleSet{Rules: []Rule{{Expr: "stable"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rule validation failed")
	})
}

func TestCheckDefaultRules(t *testing.T) {
	runner, err := NewRunner(nil)
	require.NoError(t, err)

	dids := []string{
		"did:plc:abc123",
		"did:web:example.com",
		"did:plc:z72i7hdynmk6r22z27h6tvur",
		"alice.bsky.social",
	}

	for _, did := range dids {
		t.Run(did, func(t *testing.T) {
			report := runner.Check(context.Background(), did)

			assert.Equal(t, did, report.DID)
			assert.Len(t, report.Results, len(DefaultRules().Rules))
			assert.True(t, report.Passed(), "failures: %v", report.Failures())

			for _, res := range report.Results {
				if res.Severity == SeverityError {
					assert.True(t, res.Passed, "rule %s failed: %s", res.Rule, res.Message)
				}
			}
		})
	}
}

func TestCheckReportsFailure(t *testing.T) {
	runner, err := NewRunner(&RuleSet{Rules: []Rule{
		{Name: "impossible", Expr: "contrast.textBackground >= 100.0"},
	}})
	require.NoError(t, err)

	report := runner.Check(context.Background(), "did:plc:abc123")

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.Equal(t, "impossible", res.Rule)
	assert.False(t, res.Passed)
	assert.Equal(t, "contrast.textBackground >= 100.0", res.Message)
	assert.Equal(t, SeverityError, res.Severity)

	assert.False(t, report.Passed())
	assert.Len(t, report.Failures(), 1)
}

func TestCheckWarningsDoNotFailReport(t *testing.T) {
	runner, err := NewRunner(&RuleSet{Rules: []Rule{
		{Name: "always-warns", Expr: "false", Severity: SeverityWarn},
		{Name: "always-holds", Expr: "true"},
	}})
	require.NoError(t, err)

	report := runner.Check(context.Background(), "did:plc:abc123")

	assert.True(t, report.Passed())
	require.Len(t, report.Failures(), 1)
	assert.Equal(t, "always-warns", report.Failures()[0].Rule)
}

func TestCheckEvaluationErrorIsAFailure(t *testing.T) {
	// Compiles against the dyn-typed flower map but has no value at
	// runtime, so evaluation errors instead of returning a boolean.
	runner, err := NewRunner(&RuleSet{Rules: []Rule{
		{Name: "missing-fact", Expr: "flower.nonexistent == 1"},
	}})
	require.NoError(t, err)

	report := runner.Check(context.Background(), "did:plc:abc123")

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, "evaluation failed")
	assert.False(t, report.Passed())
}

func TestCheckDefaultSeverity(t *testing.T) {
	runner, err := NewRunner(&RuleSet{Rules: []Rule{
		{Name: "unspecified", Expr: "false"},
	}})
	require.NoError(t, err)

	report := runner.Check(context.Background(), "did:plc:abc123")

	require.Len(t, report.Results, 1)
	assert.Equal(t, SeverityError, report.Results[0].Severity)
	assert.False(t, report.Passed())
}

func TestFacts(t *testing.T) {
	th := theme.New("did:plc:abc123")
	facts := Facts(th)

	assert.Equal(t, "did:plc:abc123", facts["did"])
	assert.Equal(t, true, facts["stable"])

	pal, ok := facts["palette"].(map[string]string)
	require.True(t, ok)
	assert.Len(t, pal, 9)
	assert.Equal(t, th.Palette.Background, pal["background"])
	assert.Equal(t, th.Palette.BorderMuted, pal["borderMuted"])

	contrast, ok := facts["contrast"].(map[string]float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, contrast["textBackground"], 4.5)
	assert.GreaterOrEqual(t, contrast["primaryBackground"], 3.0)

	fl, ok := facts["flower"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, th.Flower.PetalCount, fl["petalCount"])
	assert.Equal(t, string(th.Flower.Shape), fl["petalShape"])

	iso, ok := facts["isoline"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, th.Isoline.ContourCount, iso["contourCount"])
}

func ExampleRunner_Check() {
	runner, err := NewRunner(nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	report := runner.Check(context.Background(), "did:plc:abc123")
	fmt.Println(report.Passed())
	// Output: true
}
