package navigation_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/navigation"
	"github.com/stretchr/testify/require"
)

func TestTable_Resolve(t *testing.T) {
	table := navigation.DefaultTable()

	tests := []struct {
		path     string
		name     string
		params   map[string]string
		fullPath string
	}{
		{path: "/", name: navigation.RouteHome, params: map[string]string{}, fullPath: "/"},
		{path: "", name: navigation.RouteHome, params: map[string]string{}, fullPath: "/"},
		{path: "/stats/", name: navigation.RouteStats, params: map[string]string{}, fullPath: "/stats/"},
		{path: "/summary", name: navigation.RouteSummary, params: map[string]string{}, fullPath: "/summary"},
		{path: "/summary/42", name: navigation.RouteSummary, params: map[string]string{"id": "42"}, fullPath: "/summary/42"},
		{path: "/study-cards/abc?side=back", name: navigation.RouteStudyCards, params: map[string]string{"id": "abc"}, fullPath: "/study-cards/abc?side=back"},
		{path: "/contact#form", name: navigation.RouteContact, params: map[string]string{}, fullPath: "/contact#form"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			loc, err := table.Resolve(tt.path)
			require.NoError(t, err)
			require.True(t, loc.Matched())
			require.Equal(t, tt.name, loc.Route.Name)
			require.Equal(t, tt.params, loc.Params)
			require.Equal(t, tt.fullPath, loc.FullPath)
		})
	}

	t.Run("query is parsed", func(t *testing.T) {
		loc, err := table.Resolve("/login?redirect=%2Fresources")
		require.NoError(t, err)
		require.Equal(t, "/resources", loc.Query.Get("redirect"))
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := table.Resolve("/nowhere")
		require.ErrorIs(t, err, errors.ErrRouteNotFound)
	})

	t.Run("too many segments", func(t *testing.T) {
		_, err := table.Resolve("/summary/42/extra")
		require.ErrorIs(t, err, errors.ErrRouteNotFound)
	})
}

func TestTable_URL(t *testing.T) {
	table := navigation.DefaultTable()

	t.Run("login with redirect", func(t *testing.T) {
		u, err := table.URL(navigation.RouteLogin, nil, url.Values{"redirect": {"/resources"}})
		require.NoError(t, err)
		require.Equal(t, "/login?redirect=%2Fresources", u)
	})

	t.Run("optional tail given", func(t *testing.T) {
		u, err := table.URL(navigation.RouteSummary, map[string]string{"id": "42"}, nil)
		require.NoError(t, err)
		require.Equal(t, "/summary/42", u)
	})

	t.Run("optional tail omitted", func(t *testing.T) {
		u, err := table.URL(navigation.RouteStudyCards, nil, nil)
		require.NoError(t, err)
		require.Equal(t, "/study-cards", u)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := table.URL("missing", nil, nil)
		require.ErrorIs(t, err, errors.ErrRouteNotFound)
	})
}

func TestNewTable_Validation(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		_, err := navigation.NewTable(
			navigation.Route{Name: "a", Path: "/a"},
			navigation.Route{Name: "a", Path: "/b"},
		)
		require.ErrorIs(t, err, errors.ErrDuplicateRoute)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := navigation.NewTable(navigation.Route{Path: "/a"})
		require.Error(t, err)
	})

	t.Run("relative path", func(t *testing.T) {
		_, err := navigation.NewTable(navigation.Route{Name: "a", Path: "a"})
		require.Error(t, err)
	})

	t.Run("routes keep declaration order", func(t *testing.T) {
		routes := navigation.DefaultTable().Routes()
		require.Len(t, routes, 10)
		require.Equal(t, navigation.RouteHome, routes[0].Name)
		require.Equal(t, navigation.RouteContact, routes[9].Name)

		r, ok := navigation.DefaultTable().Lookup(navigation.RouteResources)
		require.True(t, ok)
		require.True(t, r.RequiresAuth)
	})
}
