package navigation

import (
	"sync"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/rs/zerolog/log"
)

// Result describes one executed navigation attempt.
type Result struct {
	From     Location
	Location Location // where the navigation ended up
	Decision Decision
}

// Redirected reports whether a guard replaced the requested navigation
func (r Result) Redirected() bool {
	return r.Decision.Kind == Redirect
}

// Navigator runs guards on every transition and executes their decisions.
// Attempts are serialised; one completes before the next begins.
type Navigator struct {
	mu      sync.Mutex
	table   *Table
	guards  []Guard
	current Location
}

// NewNavigator starts at StartLocation. Guards run in order and the first redirect wins.
func NewNavigator(table *Table, guards ...Guard) *Navigator {
	return &Navigator{
		table:   table,
		guards:  guards,
		current: StartLocation,
	}
}

// Current returns the location of the last completed navigation
func (n *Navigator) Current() Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Push navigates to fullPath. A redirect becomes the effective navigation and is
// not itself retried or re-guarded.
func (n *Navigator) Push(fullPath string) (Result, error) {
	to, err := n.table.Resolve(fullPath)
	if err != nil {
		return Result{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.current
	decision := n.decide(from, to)
	if decision.Allowed() {
		n.current = to
		return Result{From: from, Location: to, Decision: decision}, nil
	}

	target, err := n.table.URL(decision.Target.Name, decision.Target.Params, decision.Target.Query)
	if err != nil {
		return Result{}, errors.Wrapf(err, "navigation redirect from %q", to.FullPath)
	}
	redirected, err := n.table.Resolve(target)
	if err != nil {
		return Result{}, errors.Wrapf(err, "navigation redirect from %q", to.FullPath)
	}

	log.Debug().Str("requested", to.FullPath).Str("redirect", redirected.FullPath).Msg("navigation redirected")
	n.current = redirected
	return Result{From: from, Location: redirected, Decision: decision}, nil
}

func (n *Navigator) decide(from, to Location) Decision {
	for _, g := range n.guards {
		if d := g(from, to); !d.Allowed() {
			return d
		}
	}
	return AllowDecision()
}
