package navigation

import "net/url"

// Authenticator reports whether a signed-in session exists. *session.Holder implements it.
type Authenticator interface {
	IsAuthenticated() bool
}

// DecisionKind is the terminal state of one navigation attempt
type DecisionKind int

const (
	Allow DecisionKind = iota
	Redirect
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Target names the route a redirect navigates to
type Target struct {
	Name   string
	Params map[string]string
	Query  url.Values
}

// Decision is the outcome of a guard. Target is set only for Redirect.
type Decision struct {
	Kind   DecisionKind
	Target *Target
}

func (d Decision) Allowed() bool {
	return d.Kind == Allow
}

// AllowDecision lets the navigation proceed unchanged
func AllowDecision() Decision {
	return Decision{Kind: Allow}
}

// RedirectDecision replaces the navigation with one to the named route
func RedirectDecision(name string, query url.Values) Decision {
	return Decision{Kind: Redirect, Target: &Target{Name: name, Query: query}}
}

// Guard inspects a transition and decides its outcome. Guards must not have side effects.
type Guard func(from, to Location) Decision

// Authorizer sends signed-out users away from routes marked RequiresAuth.
type Authorizer struct {
	auth       Authenticator
	loginRoute string
}

// NewAuthorizer returns an authorizer that redirects to RouteLogin
func NewAuthorizer(auth Authenticator) *Authorizer {
	return &Authorizer{
		auth:       auth,
		loginRoute: RouteLogin,
	}
}

// Authorize allows public routes, and protected routes while signed in. Otherwise
// it redirects to the login route with the requested full path in the redirect query parameter.
func (a *Authorizer) Authorize(_, to Location) Decision {
	if !to.Route.RequiresAuth {
		return AllowDecision()
	}
	if a.auth.IsAuthenticated() {
		return AllowDecision()
	}
	return RedirectDecision(a.loginRoute, url.Values{RedirectQueryParam: {to.FullPath}})
}

// Guard returns Authorize as a Guard
func (a *Authorizer) Guard() Guard {
	return a.Authorize
}
