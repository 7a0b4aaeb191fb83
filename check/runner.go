package check

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/tripledoublev/spores.garden-sub000/theme"
)

// Result reports one rule against one theme.
type Result struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Passed   bool     `json:"passed"`

	// Message is empty for passing rules. For a failed rule it holds
	// the expression that was false, or the evaluation error.
	Message string `json:"message,omitempty"`
}

// Report collects the results of every rule against one theme.
type Report struct {
	DID     string   `json:"did"`
	Results []Result `json:"results"`
}

// Passed reports whether no error-severity rule failed. Warnings do
// not fail a report.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed && res.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Failures returns the failed results of any severity.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

type compiledRule struct {
	name     string
	expr     string
	severity Severity
	prg      cel.Program
}

// Runner evaluates a compiled rule set against generated themes. Build
// one with NewRunner and reuse it; compilation happens once.
type Runner struct {
	rules  []compiledRule
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for rule failures. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// newEnv declares the fact document's variables. See Facts for the
// values behind them.
func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("did", cel.StringType),
		cel.Variable("stable", cel.BoolType),
		cel.Variable("palette", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("contrast", cel.MapType(cel.StringType, cel.DoubleType)),
		cel.Variable("flower", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("isoline", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// NewRunner compiles the rule set and returns a reusable runner. A nil
// set means DefaultRules(). Compile and type errors surface here, so a
// built runner never fails to evaluate for syntactic reasons.
func NewRunner(set *RuleSet, opts ...RunnerOption) (*Runner, error) {
	if set == nil {
		set = DefaultRules()
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("rule validation failed: %w", err)
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create rule environment: %w", err)
	}

	r := &Runner{
		rules:  make([]compiledRule, 0, len(set.Rules)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, rule := range set.Rules {
		ast, issues := env.Compile(rule.Expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", rule.Name, issues.Err())
		}
		if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
			return nil, fmt.Errorf("rule %s must evaluate to a boolean, got %v", rule.Name, ast.OutputType())
		}

		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("failed to build program for rule %s: %w", rule.Name, err)
		}

		severity := rule.Severity
		if severity == "" {
			severity = SeverityError
		}
		r.rules = append(r.rules, compiledRule{
			name:     rule.Name,
			expr:     rule.Expr,
			severity: severity,
			prg:      prg,
		})
	}

	return r, nil
}

// Check generates the theme for did and evaluates every rule against
// it. Evaluation is total: a rule that errors at runtime is reported
// as failed with the error as its message.
func (r *Runner) Check(ctx context.Context, did string) Report {
	facts := Facts(theme.New(did))

	report := Report{
		DID:     did,
		Results: make([]Result, 0, len(r.rules)),
	}

	for _, rule := range r.rules {
		res := Result{
			Rule:     rule.name,
			Severity: rule.severity,
		}

		out, _, err := rule.prg.ContextEval(ctx, facts)
		switch {
		case err != nil:
			res.Message = fmt.Sprintf("evaluation failed: %v", err)
			r.logger.Warn("rule evaluation failed",
				"rule", rule.name,
				"did", did,
				"error", err)
		case out.Value() == true:
			res.Passed = true
		default:
			res.Message = rule.expr
			r.logger.Warn("rule failed",
				"rule", rule.name,
				"severity", rule.severity,
				"did", did,
				"expr", rule.expr)
		}

		report.Results = append(report.Results, res)
	}

	r.logger.Debug("check complete",
		"did", did,
		"rules", len(report.Results),
		"failures", len(report.Failures()))

	return report
}
