package validator

import (
	"fmt"
	"slices"

	"github.com/amp-labs/arflow/statemachine"
)

// Severity defines the severity level of a validation issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// ResetEvent is the event name the reset rule looks for.
const ResetEvent = "reset"

// RuleResult contains both errors and warnings from a rule check.
type RuleResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Rule defines a validation rule over a probed workflow graph.
type Rule interface {
	Name() string
	Severity() Severity
	Check(graph statemachine.Graph) RuleResult
}

// DefaultRules returns the standard set of validation rules.
func DefaultRules() []Rule {
	return []Rule{
		&undeclaredTargetRule{},
		&unreachableStateRule{},
		ResetRule(ResetEvent),
		&deadEndRule{},
		&unusedEventRule{},
		&namingConventionRule{},
	}
}

// undeclaredTargetRule checks that every transition lands on a declared state.
type undeclaredTargetRule struct{}

func (r *undeclaredTargetRule) Name() string {
	return "UndeclaredTarget"
}

func (r *undeclaredTargetRule) Severity() Severity {
	return SeverityError
}

func (r *undeclaredTargetRule) Check(graph statemachine.Graph) RuleResult {
	var errors []ValidationError

	reported := make(map[string]bool)

	for _, edge := range graph.Edges {
		if graph.HasState(edge.To) || reported[edge.To] {
			continue
		}

		reported[edge.To] = true

		errors = append(errors, ValidationError{
			Code: "UNDECLARED_TARGET",
			Message: fmt.Sprintf("'%s' + '%s' leads to state '%s', which is not declared",
				edge.From, edge.Event, edge.To),
			Location: Location{State: edge.From, Event: edge.Event},
			Fix: &Fix{
				Description: fmt.Sprintf("Declare a representative '%s' value in the catalog", edge.To),
			},
		})
	}

	return RuleResult{Errors: errors}
}

// unreachableStateRule checks for states that cannot be reached from the
// initial state. Reachability is computed on variant names, so a payload
// variant counts as reached when any of its values is.
type unreachableStateRule struct{}

func (r *unreachableStateRule) Name() string {
	return "UnreachableState"
}

func (r *unreachableStateRule) Severity() Severity {
	return SeverityError
}

func (r *unreachableStateRule) Check(graph statemachine.Graph) RuleResult {
	var errors []ValidationError

	reachable := reachableStates(graph)

	for _, state := range graph.States {
		if !reachable[state] {
			errors = append(errors, ValidationError{
				Code:     "UNREACHABLE_STATE",
				Message:  fmt.Sprintf("State '%s' cannot be reached from initial state '%s'", state, graph.Initial),
				Location: Location{State: state},
				Fix: &Fix{
					Description: fmt.Sprintf("Add a transition to '%s' or remove the state", state),
				},
			})
		}
	}

	return RuleResult{Errors: errors}
}

func reachableStates(graph statemachine.Graph) map[string]bool {
	reachable := map[string]bool{graph.Initial: true}

	queue := []string{graph.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, edge := range graph.Outgoing(current) {
			if !reachable[edge.To] {
				reachable[edge.To] = true
				queue = append(queue, edge.To)
			}
		}
	}

	return reachable
}

// resetRule checks that every state except the initial one can be escaped
// with the reset event, and that reset emits exactly one command.
type resetRule struct {
	event string
}

// ResetRule builds the reset-escape rule for the given event name. Workflows
// without such an event are not checked.
func ResetRule(event string) Rule {
	return &resetRule{event: event}
}

func (r *resetRule) Name() string {
	return "ResetEscape"
}

func (r *resetRule) Severity() Severity {
	return SeverityError
}

func (r *resetRule) Check(graph statemachine.Graph) RuleResult {
	var errors []ValidationError

	if !slices.Contains(graph.Events, r.event) {
		return RuleResult{}
	}

	for _, state := range graph.States {
		var resets []statemachine.GraphEdge

		for _, edge := range graph.Outgoing(state) {
			if edge.Event == r.event {
				resets = append(resets, edge)
			}
		}

		if len(resets) == 0 {
			if state == graph.Initial {
				continue
			}

			errors = append(errors, ValidationError{
				Code:     "MISSING_RESET",
				Message:  fmt.Sprintf("State '%s' cannot be left with '%s'", state, r.event),
				Location: Location{State: state, Event: r.event},
				Fix: &Fix{
					Description: "Evaluate the reset event before any state-specific rule",
				},
			})

			continue
		}

		for _, edge := range resets {
			if len(edge.Commands) != 1 {
				errors = append(errors, ValidationError{
					Code: "RESET_COMMANDS",
					Message: fmt.Sprintf("'%s' + '%s' emits %d commands, expected exactly one",
						state, r.event, len(edge.Commands)),
					Location: Location{State: state, Event: r.event},
				})
			}
		}
	}

	return RuleResult{Errors: errors}
}

// deadEndRule warns about states whose every outgoing edge loops back to the
// same state.
type deadEndRule struct{}

func (r *deadEndRule) Name() string {
	return "DeadEnd"
}

func (r *deadEndRule) Severity() Severity {
	return SeverityWarning
}

func (r *deadEndRule) Check(graph statemachine.Graph) RuleResult {
	var warnings []ValidationWarning

	for _, state := range graph.States {
		leaves := false

		for _, edge := range graph.Outgoing(state) {
			if edge.To != state {
				leaves = true

				break
			}
		}

		if !leaves {
			warnings = append(warnings, ValidationWarning{
				Code:     "DEAD_END_STATE",
				Message:  fmt.Sprintf("State '%s' has no transition to another state", state),
				Location: Location{State: state},
			})
		}
	}

	return RuleResult{Warnings: warnings}
}

// unusedEventRule warns about declared events that no state reacts to.
type unusedEventRule struct{}

func (r *unusedEventRule) Name() string {
	return "UnusedEvent"
}

func (r *unusedEventRule) Severity() Severity {
	return SeverityWarning
}

func (r *unusedEventRule) Check(graph statemachine.Graph) RuleResult {
	var warnings []ValidationWarning

	used := make(map[string]bool)
	for _, edge := range graph.Edges {
		used[edge.Event] = true
	}

	for _, event := range graph.Events {
		if !used[event] {
			warnings = append(warnings, ValidationWarning{
				Code:     "UNUSED_EVENT",
				Message:  fmt.Sprintf("Event '%s' is ignored in every declared state", event),
				Location: Location{Event: event},
			})
		}
	}

	return RuleResult{Warnings: warnings}
}

// namingConventionRule warns about naming convention violations. Names end
// up in metric labels and span attributes, so they must be snake_case.
type namingConventionRule struct{}

func (r *namingConventionRule) Name() string {
	return "NamingConvention"
}

func (r *namingConventionRule) Severity() Severity {
	return SeverityWarning
}

func (r *namingConventionRule) Check(graph statemachine.Graph) RuleResult {
	var warnings []ValidationWarning

	check := func(kind, name string, loc Location) {
		if name != "" && isSnakeCase(name) {
			return
		}

		warnings = append(warnings, ValidationWarning{
			Code: "NAMING_CONVENTION",
			Message: fmt.Sprintf("%s '%s' should use snake_case naming (suggested: '%s')",
				kind, name, toSnakeCase(name)),
			Location: loc,
		})
	}

	for _, state := range graph.States {
		check("State", state, Location{State: state})
	}

	for _, event := range graph.Events {
		check("Event", event, Location{Event: event})
	}

	return RuleResult{Warnings: warnings}
}

// Helper functions

func isSnakeCase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return false
		}

		if r == '-' || r == ' ' {
			return false
		}
	}

	return true
}

func toSnakeCase(s string) string {
	var result []rune

	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				result = append(result, '_')
			}

			result = append(result, r+'a'-'A')
		case r == '-' || r == ' ':
			result = append(result, '_')
		default:
			result = append(result, r)
		}
	}

	return string(result)
}
