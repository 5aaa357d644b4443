package navigation

import (
	"fmt"
	"strings"
)

const (
	// SurveyPrefix is the literal path prefix that is always allowed through.
	SurveyPrefix = "/survey"

	// DefaultSource names the survey document loaded by the redirect.
	DefaultSource = "/static/intro.json"

	// DefaultRedirect is where uninitialized navigations are sent.
	DefaultRedirect = SurveyPrefix + "?source=" + DefaultSource
)

// ActionKind distinguishes the two continuations of a navigation.
type ActionKind string

const (
	ActionProceed  ActionKind = "proceed"
	ActionRedirect ActionKind = "redirect"
)

// Target is the navigation requested by the router.
type Target struct {
	Path string
}

// Action is the guard's decision for a Target.
type Action struct {
	Kind ActionKind `json:"kind"`
	Path string     `json:"path,omitempty"`
}

// Proceed lets the navigation through unchanged.
func Proceed() Action {
	return Action{Kind: ActionProceed}
}

// Redirect replaces the navigation with one to path.
func Redirect(path string) Action {
	return Action{Kind: ActionRedirect, Path: path}
}

// IsRedirect reports whether the action replaces the navigation.
func (a Action) IsRedirect() bool {
	return a.Kind == ActionRedirect
}

func (a Action) String() string {
	if a.IsRedirect() {
		return fmt.Sprintf("redirect(%s)", a.Path)
	}
	return string(ActionProceed)
}

// Guard decides whether target may proceed given the current state.
func Guard(target Target, state *State) Action {
	if !state.Initialized() && !strings.HasPrefix(target.Path, SurveyPrefix) {
		return Redirect(DefaultRedirect)
	}
	return Proceed()
}

// Continuation is the pair of callbacks a router hands to the guard.
type Continuation interface {
	Proceed()
	Redirect(path string)
}

// Before runs the guard and invokes exactly one method of next.
func Before(target Target, state *State, next Continuation) Action {
	action := Guard(target, state)
	dispatch(action, next)
	return action
}

func dispatch(action Action, next Continuation) {
	if action.IsRedirect() {
		next.Redirect(action.Path)
		return
	}
	next.Proceed()
}
