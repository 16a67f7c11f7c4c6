package navigation_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/studyshell/navigation"
	"github.com/jrsteele09/studyshell/session"
	"github.com/jrsteele09/studyshell/storage/memstore"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, table *navigation.Table, fullPath string) navigation.Location {
	t.Helper()
	loc, err := table.Resolve(fullPath)
	require.NoError(t, err)
	return loc
}

func TestAuthorizer_Authorize(t *testing.T) {
	table := navigation.DefaultTable()
	holder := session.New(memstore.New())
	authorizer := navigation.NewAuthorizer(holder)
	from := navigation.StartLocation

	t.Run("protected route while signed out redirects to login", func(t *testing.T) {
		to := resolve(t, table, "/resources")
		require.Equal(t, navigation.RouteResources, to.Route.Name)
		require.True(t, to.Route.RequiresAuth)

		d := authorizer.Authorize(from, to)
		require.Equal(t, navigation.Redirect, d.Kind)
		require.NotNil(t, d.Target)
		require.Equal(t, navigation.RouteLogin, d.Target.Name)
		require.Equal(t, url.Values{"redirect": {"/resources"}}, d.Target.Query)
	})

	t.Run("redirect keeps the query of the original destination", func(t *testing.T) {
		d := authorizer.Authorize(from, resolve(t, table, "/resources?sort=recent"))
		require.Equal(t, "/resources?sort=recent", d.Target.Query.Get(navigation.RedirectQueryParam))
	})

	t.Run("public route while signed out is allowed", func(t *testing.T) {
		for _, path := range []string{"/contact", "/", "/summary/42", "/study-cards", "/login"} {
			d := authorizer.Authorize(from, resolve(t, table, path))
			require.True(t, d.Allowed(), path)
			require.Nil(t, d.Target)
		}
	})

	t.Run("protected route while signed in is allowed", func(t *testing.T) {
		holder.SetAuth("tok", nil)
		defer holder.ClearAuth()

		d := authorizer.Authorize(from, resolve(t, table, "/resources"))
		require.Equal(t, navigation.Allow, d.Kind)
	})

	t.Run("route without the flag behaves like a public route", func(t *testing.T) {
		custom, err := navigation.NewTable(
			navigation.Route{Name: "login", Path: "/login"},
			navigation.Route{Name: "implicit", Path: "/implicit"},
			navigation.Route{Name: "explicit", Path: "/explicit", RequiresAuth: false},
		)
		require.NoError(t, err)

		require.Equal(t,
			authorizer.Authorize(from, resolve(t, custom, "/explicit")),
			authorizer.Authorize(from, resolve(t, custom, "/implicit")))
	})
}

func TestDecisionKind_String(t *testing.T) {
	require.Equal(t, "allow", navigation.Allow.String())
	require.Equal(t, "redirect", navigation.Redirect.String())
	require.Equal(t, "unknown", navigation.DecisionKind(7).String())
}
