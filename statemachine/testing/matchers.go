package testing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/amp-labs/arflow/statemachine"
)

// Matcher errors.
var (
	ErrNoExecutionTrace   = errors.New("no execution trace available")
	ErrNoMatchersPassed   = errors.New("no matchers passed")
	ErrStateNotVisited    = errors.New("state was not visited")
	ErrTransitionNotTaken = errors.New("transition was not taken")
	ErrCommandNotEmitted  = errors.New("command was not emitted")
	ErrUnexpectedUpdate   = errors.New("dispatch was not a no-op")
	ErrEventNotIgnored    = errors.New("event was never ignored")
)

// Recording is anything that exposes recorded dispatch traces.
type Recording interface {
	Traces() []statemachine.Trace
}

// Matcher defines an assertion matcher interface.
type Matcher interface {
	Match(rec Recording) (bool, error)
	Description() string
}

// StateWasVisited creates a matcher that checks if a state was entered.
func StateWasVisited(name string) Matcher {
	return &stateVisitedMatcher{stateName: name}
}

type stateVisitedMatcher struct {
	stateName string
}

func (m *stateVisitedMatcher) Match(rec Recording) (bool, error) {
	traces := rec.Traces()
	if len(traces) == 0 {
		return false, ErrNoExecutionTrace
	}

	for _, entry := range traces {
		if entry.Changed && entry.To == m.stateName {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: '%s'", ErrStateNotVisited, m.stateName)
}

func (m *stateVisitedMatcher) Description() string {
	return fmt.Sprintf("state '%s' should be visited", m.stateName)
}

// TransitionWasTaken creates a matcher that checks if a transition occurred.
func TransitionWasTaken(from, to string) Matcher {
	return &transitionTakenMatcher{from: from, to: to}
}

type transitionTakenMatcher struct {
	from string
	to   string
}

func (m *transitionTakenMatcher) Match(rec Recording) (bool, error) {
	for _, entry := range rec.Traces() {
		if entry.Changed && entry.From == m.from && entry.To == m.to {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: '%s' -> '%s'", ErrTransitionNotTaken, m.from, m.to)
}

func (m *transitionTakenMatcher) Description() string {
	return fmt.Sprintf("transition '%s' -> '%s' should be taken", m.from, m.to)
}

// CommandWasEmitted creates a matcher that checks if a command was emitted.
func CommandWasEmitted(name string) Matcher {
	return &commandEmittedMatcher{command: name}
}

type commandEmittedMatcher struct {
	command string
}

func (m *commandEmittedMatcher) Match(rec Recording) (bool, error) {
	for _, entry := range rec.Traces() {
		if slices.Contains(entry.Commands, m.command) {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: '%s'", ErrCommandNotEmitted, m.command)
}

func (m *commandEmittedMatcher) Description() string {
	return fmt.Sprintf("command '%s' should be emitted", m.command)
}

// EventWasIgnored creates a matcher that checks that every dispatch of the
// named event in the named state resolved to NoUpdate.
func EventWasIgnored(state, event string) Matcher {
	return &eventIgnoredMatcher{state: state, event: event}
}

type eventIgnoredMatcher struct {
	state string
	event string
}

func (m *eventIgnoredMatcher) Match(rec Recording) (bool, error) {
	found := false

	for _, entry := range rec.Traces() {
		if entry.From != m.state || entry.Event != m.event {
			continue
		}

		found = true

		if entry.Kind != statemachine.KindNoUpdate {
			return false, fmt.Errorf("%w: '%s' + '%s' -> %s", ErrUnexpectedUpdate, m.state, m.event, entry.Kind)
		}
	}

	if !found {
		return false, ErrNoExecutionTrace
	}

	return true, nil
}

func (m *eventIgnoredMatcher) Description() string {
	return fmt.Sprintf("event '%s' should be ignored in state '%s'", m.event, m.state)
}

// EventWasIgnoredOnce creates a matcher that checks that at least one dispatch
// of the named event in the named state resolved to NoUpdate. Traces carry
// variant names only, so use it when the same pair is both guarded and taken.
func EventWasIgnoredOnce(state, event string) Matcher {
	return &eventIgnoredOnceMatcher{state: state, event: event}
}

type eventIgnoredOnceMatcher struct {
	state string
	event string
}

func (m *eventIgnoredOnceMatcher) Match(rec Recording) (bool, error) {
	traces := rec.Traces()
	if len(traces) == 0 {
		return false, ErrNoExecutionTrace
	}

	for _, entry := range traces {
		if entry.From == m.state && entry.Event == m.event && entry.Kind == statemachine.KindNoUpdate {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: '%s' + '%s'", ErrEventNotIgnored, m.state, m.event)
}

func (m *eventIgnoredOnceMatcher) Description() string {
	return fmt.Sprintf("event '%s' should be ignored at least once in state '%s'", m.event, m.state)
}

// All creates a matcher that passes only when every matcher passes.
func All(matchers ...Matcher) Matcher {
	return &allMatcher{matchers: matchers}
}

type allMatcher struct {
	matchers []Matcher
}

func (m *allMatcher) Match(rec Recording) (bool, error) {
	for _, matcher := range m.matchers {
		ok, err := matcher.Match(rec)
		if !ok {
			return false, err
		}
	}

	return true, nil
}

func (m *allMatcher) Description() string {
	return fmt.Sprintf("all of %d matchers should pass", len(m.matchers))
}

// Any creates a matcher that passes when at least one matcher passes.
func Any(matchers ...Matcher) Matcher {
	return &anyMatcher{matchers: matchers}
}

type anyMatcher struct {
	matchers []Matcher
}

func (m *anyMatcher) Match(rec Recording) (bool, error) {
	for _, matcher := range m.matchers {
		if ok, _ := matcher.Match(rec); ok {
			return true, nil
		}
	}

	return false, ErrNoMatchersPassed
}

func (m *anyMatcher) Description() string {
	return fmt.Sprintf("any of %d matchers should pass", len(m.matchers))
}
