// Package validator checks workflow catalogs for structural problems:
// transitions into undeclared states, unreachable screens, dead ends and
// missing reset escapes.
package validator

import (
	"fmt"
	"strings"

	"github.com/amp-labs/arflow/statemachine"
)

// ValidationResult contains the results of validating a workflow.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError represents a validation error with a fix suggestion.
type ValidationError struct {
	Code     string   // Error code like "UNREACHABLE_STATE", "UNDECLARED_TARGET"
	Message  string   // Human-readable error message
	Location Location // Where the error occurred
	Fix      *Fix     // Optional fix suggestion
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidationWarning represents a non-critical issue.
type ValidationWarning struct {
	Code     string
	Message  string
	Location Location
}

// Location identifies where an issue occurred.
type Location struct {
	Workflow string
	State    string
	Event    string
}

// Fix describes how to resolve an issue.
type Fix struct {
	Description string
}

// Validate runs the default rules over a catalog.
func Validate[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	catalog statemachine.Catalog[S, E, C],
) ValidationResult {
	return ValidateWithRules(catalog, DefaultRules())
}

// ValidateWithRules runs custom rules over a catalog. A catalog that cannot
// be probed fails with CATALOG_INVALID and no rule runs.
func ValidateWithRules[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	catalog statemachine.Catalog[S, E, C], rules []Rule,
) ValidationResult {
	if err := catalog.Validate(); err != nil {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Code:     "CATALOG_INVALID",
				Message:  err.Error(),
				Location: Location{Workflow: catalog.Workflow},
			}},
		}
	}

	return ValidateGraph(catalog.Graph(), rules)
}

// ValidateGraph runs rules over an already probed graph.
func ValidateGraph(graph statemachine.Graph, rules []Rule) ValidationResult {
	var result ValidationResult

	for _, rule := range rules {
		ruleResult := rule.Check(graph)

		for _, e := range ruleResult.Errors {
			e.Location.Workflow = graph.Workflow
			result.Errors = append(result.Errors, e)
		}

		for _, w := range ruleResult.Warnings {
			w.Location.Workflow = graph.Workflow
			result.Warnings = append(result.Warnings, w)
		}
	}

	result.Valid = len(result.Errors) == 0

	return result
}

// Strict treats warnings as errors.
func (r ValidationResult) Strict() ValidationResult {
	for _, warning := range r.Warnings {
		r.Errors = append(r.Errors, ValidationError{
			Code:     warning.Code,
			Message:  warning.Message,
			Location: warning.Location,
		})
	}

	r.Warnings = nil
	r.Valid = len(r.Errors) == 0

	return r
}

// HasErrors returns true if the result has any errors.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if the result has any warnings.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Codes returns the codes of every error and warning, errors first.
func (r ValidationResult) Codes() []string {
	codes := make([]string, 0, len(r.Errors)+len(r.Warnings))

	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}

	for _, w := range r.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

// String returns a human-readable summary of validation results.
func (r ValidationResult) String() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString("✓ Workflow is valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("✗ Workflow has %d error(s)\n", len(r.Errors)))
	}

	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  [%s] %s", err.Code, err.Message))

		if err.Location.State != "" {
			sb.WriteString(fmt.Sprintf(" (state: %s)", err.Location.State))
		}

		sb.WriteString("\n")

		if err.Fix != nil {
			sb.WriteString(fmt.Sprintf("    Fix: %s\n", err.Fix.Description))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("⚠ %d warning(s):\n", len(r.Warnings)))

		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", warn.Code, warn.Message))
		}
	}

	return sb.String()
}
