package navigation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jrsteele09/studyshell/internal/errors"
)

// Location is a resolved navigation target
type Location struct {
	Route    Route
	Path     string
	FullPath string // Path plus the encoded query, as requested
	Params   map[string]string
	Query    url.Values
}

// Matched reports whether the location resolved to a route
func (l Location) Matched() bool {
	return l.Route.Name != ""
}

// StartLocation is the location before the first navigation
var StartLocation = Location{Path: "/", FullPath: "/"}

// Table resolves paths to routes and builds URLs from route names.
type Table struct {
	router *mux.Router
	routes []Route
	byName map[string]Route
	byMux  map[*mux.Route]Route
	bare   map[string]*mux.Route // OptionalTail routes without their final segment
}

// NewTable builds a table. Route names must be unique and non-empty.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		router: mux.NewRouter(),
		byName: make(map[string]Route),
		byMux:  make(map[*mux.Route]Route),
		bare:   make(map[string]*mux.Route),
	}
	for _, r := range routes {
		if err := t.add(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DefaultTable returns a table over DefaultRoutes
func DefaultTable() *Table {
	t, err := NewTable(DefaultRoutes()...)
	if err != nil {
		panic("navigation: invalid default routes: " + err.Error())
	}
	return t
}

func (t *Table) add(r Route) error {
	if r.Name == "" {
		return fmt.Errorf("route %q: name is required", r.Path)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("route %q: path must start with /", r.Name)
	}
	if _, ok := t.byName[r.Name]; ok {
		return errors.Wrapf(errors.ErrDuplicateRoute, "route %q", r.Name)
	}

	full := t.router.NewRoute().Name(r.Name).Path(r.Path)
	if err := full.GetError(); err != nil {
		return fmt.Errorf("route %q: %w", r.Name, err)
	}
	t.byMux[full] = r

	if r.OptionalTail {
		parent := r.Path[:strings.LastIndex(r.Path, "/")]
		if parent == "" {
			parent = "/"
		}
		bare := t.router.NewRoute().Path(parent)
		if err := bare.GetError(); err != nil {
			return fmt.Errorf("route %q: %w", r.Name, err)
		}
		t.byMux[bare] = r
		t.bare[r.Name] = bare
	}

	t.byName[r.Name] = r
	t.routes = append(t.routes, r)
	return nil
}

// Routes returns the routes in declaration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the route with the given name
func (t *Table) Lookup(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Resolve matches a path with optional query ("/summary/42?tab=notes").
func (t *Table) Resolve(fullPath string) (Location, error) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return Location{}, errors.Wrapf(errors.ErrInvalidRequest, "navigation parse %q: %v", fullPath, err)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	// match "/stats/" like "/stats"
	matchURL := *u
	if len(matchURL.Path) > 1 {
		matchURL.Path = strings.TrimRight(matchURL.Path, "/")
		if matchURL.Path == "" {
			matchURL.Path = "/"
		}
	}

	var match mux.RouteMatch
	req := &http.Request{Method: http.MethodGet, URL: &matchURL, Host: u.Host}
	if !t.router.Match(req, &match) || match.Route == nil {
		return Location{}, errors.Wrapf(errors.ErrRouteNotFound, "navigation %q", u.Path)
	}
	route, ok := t.byMux[match.Route]
	if !ok {
		return Location{}, errors.Wrapf(errors.ErrRouteNotFound, "navigation %q", u.Path)
	}

	params := match.Vars
	if params == nil {
		params = map[string]string{}
	}
	return Location{
		Route:    route,
		Path:     u.Path,
		FullPath: fullPathOf(u),
		Params:   params,
		Query:    u.Query(),
	}, nil
}

// URL builds the full path of a named route.
func (t *Table) URL(name string, params map[string]string, query url.Values) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", errors.Wrapf(errors.ErrRouteNotFound, "navigation url %q", name)
	}

	target := t.router.Get(name)
	if bare, ok := t.bare[name]; ok && !hasTailParam(r.Path, params) {
		target = bare
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, v)
	}
	u, err := target.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("navigation url %q: %w", name, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func fullPathOf(u *url.URL) string {
	fp := u.RequestURI()
	if u.Fragment != "" {
		fp += "#" + u.EscapedFragment()
	}
	return fp
}

func hasTailParam(path string, params map[string]string) bool {
	tail := path[strings.LastIndex(path, "/")+1:]
	name := strings.TrimSuffix(strings.TrimPrefix(tail, "{"), "}")
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	return params[name] != ""
}
