package validator

import (
	"testing"

	"github.com/amp-labs/arflow/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen string

func (s screen) Name() string { return string(s) }

type input string

func (i input) Name() string { return string(i) }

type effect string

func (e effect) Name() string { return string(e) }

type rule struct {
	from  screen
	input input
	to    screen
	emits []effect
}

func catalogOf(
	initial screen, states []screen, inputs []input, rules ...rule,
) statemachine.Catalog[screen, input, effect] {
	return statemachine.Catalog[screen, input, effect]{
		Workflow: "test",
		Initial:  initial,
		States:   states,
		Events:   inputs,
		Transition: func(state screen, in input) statemachine.Result[screen, effect] {
			for _, r := range rules {
				if r.from == state && r.input == in {
					return statemachine.ToStateAndEmit(r.to, r.emits...)
				}
			}

			return statemachine.NoUpdate[screen, effect]()
		},
	}
}

func healthyCatalog() statemachine.Catalog[screen, input, effect] {
	return catalogOf("intro",
		[]screen{"intro", "scanning", "done"},
		[]input{"start", "finish", "reset"},
		rule{"intro", "start", "scanning", []effect{"scan"}},
		rule{"scanning", "finish", "done", nil},
		rule{"scanning", "reset", "scanning", []effect{"scene_reset"}},
		rule{"done", "reset", "scanning", []effect{"scene_reset"}},
	)
}

func TestValidateHealthyCatalog(t *testing.T) {
	t.Parallel()

	result := Validate(healthyCatalog())

	assert.True(t, result.Valid, result.String())
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
	assert.Contains(t, result.String(), "Workflow is valid")
}

func TestValidateInvalidCatalog(t *testing.T) {
	t.Parallel()

	catalog := healthyCatalog()
	catalog.Initial = "missing"

	result := Validate(catalog)

	require.False(t, result.Valid)
	assert.Equal(t, []string{"CATALOG_INVALID"}, result.Codes())
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog statemachine.Catalog[screen, input, effect]
		codes   []string
	}{
		{
			name: "undeclared target",
			catalog: catalogOf("a",
				[]screen{"a"},
				[]input{"go"},
				rule{"a", "go", "b", nil},
			),
			codes: []string{"UNDECLARED_TARGET"},
		},
		{
			name: "unreachable state",
			catalog: catalogOf("a",
				[]screen{"a", "b", "island"},
				[]input{"go", "back"},
				rule{"a", "go", "b", nil},
				rule{"b", "back", "a", nil},
				rule{"island", "back", "a", nil},
			),
			codes: []string{"UNREACHABLE_STATE"},
		},
		{
			name: "missing reset",
			catalog: catalogOf("a",
				[]screen{"a", "b"},
				[]input{"go", "reset"},
				rule{"a", "go", "b", nil},
			),
			codes: []string{"MISSING_RESET", "DEAD_END_STATE", "UNUSED_EVENT"},
		},
		{
			name: "reset without command",
			catalog: catalogOf("a",
				[]screen{"a", "b"},
				[]input{"go", "reset"},
				rule{"a", "go", "b", nil},
				rule{"b", "reset", "a", nil},
			),
			codes: []string{"RESET_COMMANDS"},
		},
		{
			name: "unused event",
			catalog: catalogOf("a",
				[]screen{"a", "b"},
				[]input{"go", "back", "never"},
				rule{"a", "go", "b", nil},
				rule{"b", "back", "a", nil},
			),
			codes: []string{"UNUSED_EVENT"},
		},
		{
			name: "naming convention",
			catalog: catalogOf("a",
				[]screen{"a", "BadName"},
				[]input{"go", "back"},
				rule{"a", "go", "BadName", nil},
				rule{"BadName", "back", "a", nil},
			),
			codes: []string{"NAMING_CONVENTION"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(tt.catalog)

			assert.Equal(t, tt.codes, result.Codes(), result.String())
		})
	}
}

func TestStrict(t *testing.T) {
	t.Parallel()

	catalog := catalogOf("a",
		[]screen{"a", "b"},
		[]input{"go", "back", "never"},
		rule{"a", "go", "b", nil},
		rule{"b", "back", "a", nil},
	)

	result := Validate(catalog)
	require.True(t, result.Valid)
	require.True(t, result.HasWarnings())

	strict := result.Strict()
	assert.False(t, strict.Valid)
	assert.False(t, strict.HasWarnings())
	require.Len(t, strict.Errors, 1)
	assert.Equal(t, "test", strict.Errors[0].Location.Workflow)
	assert.Equal(t, "never", strict.Errors[0].Location.Event)
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := ValidationError{Code: "UNREACHABLE_STATE", Message: "State 'x' cannot be reached"}
	assert.Equal(t, "[UNREACHABLE_STATE] State 'x' cannot be reached", err.Error())

	result := ValidationResult{Errors: []ValidationError{{
		Code:     "MISSING_RESET",
		Message:  "State 'b' cannot be left with 'reset'",
		Location: Location{State: "b"},
		Fix:      &Fix{Description: "add it"},
	}}}

	out := result.String()
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "(state: b)")
	assert.Contains(t, out, "Fix: add it")
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	assert.True(t, isSnakeCase("placing_corners"))
	assert.False(t, isSnakeCase("PlacingCorners"))
	assert.False(t, isSnakeCase("placing-corners"))
	assert.Equal(t, "placing_corners", toSnakeCase("PlacingCorners"))
	assert.Equal(t, "full_ui", toSnakeCase("full-ui"))
}
