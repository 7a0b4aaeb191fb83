// Package check evaluates invariant rules against generated themes.
//
// Rules are CEL expressions over a fact document derived from one
// theme: palette hex strings, numeric contrast ratios, flower
// parameters, and contour configuration. Rule sets load from YAML or
// JSON files, and DefaultRules ships the invariants every generated
// theme is expected to hold.
//
// Compilation happens once, when the runner is built, so malformed
// expressions surface before any theme is checked. Evaluation is
// total: a rule that fails to evaluate is reported as failed, never
// as a panic or an aborted report.
package check
