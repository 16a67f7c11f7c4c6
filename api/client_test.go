package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/studyshell/api"
	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/session"
	"github.com/jrsteele09/studyshell/storage/memstore"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

type recorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.calls...)
}

// fakeAPI records every request and answers from handlers keyed by "METHOD path"
func fakeAPI(t *testing.T, handlers map[string]http.HandlerFunc) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Header: r.Header.Clone(), Body: string(body)})
		rec.mu.Unlock()
		if h, ok := handlers[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(t *testing.T, handlers map[string]http.HandlerFunc) (*api.Client, *session.Holder, *recorder) {
	t.Helper()
	srv, calls := fakeAPI(t, handlers)
	holder := session.New(memstore.New())
	return api.NewClient(srv.URL+"/", holder), holder, calls
}

func TestClient_Login(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"POST " + api.EndpointLogin: func(w http.ResponseWriter, r *http.Request) {
			var creds api.Credentials
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != "password123" {
				http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"token":"abc123","user":{"id":"user-1"}}`))
		},
	}

	t.Run("success stores the session", func(t *testing.T) {
		client, holder, calls := newClient(t, handlers)

		resp, err := client.Login(t.Context(), api.Credentials{Email: "john.doe@example.com", Password: "password123"})
		require.NoError(t, err)
		require.Equal(t, "abc123", resp.Token)
		require.True(t, holder.IsAuthenticated())
		require.JSONEq(t, `{"id":"user-1"}`, string(holder.Profile()))

		require.Len(t, calls.all(), 1)
		call := calls.all()[0]
		require.Equal(t, "application/json", call.Header.Get("Content-Type"))
		require.Empty(t, call.Header.Get("Authorization"))
		require.JSONEq(t, `{"email":"john.doe@example.com","password":"password123"}`, call.Body)
	})

	t.Run("rejected credentials leave the session signed out", func(t *testing.T) {
		client, holder, _ := newClient(t, handlers)

		_, err := client.Login(t.Context(), api.Credentials{Email: "john.doe@example.com", Password: "wrong"})
		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.Unauthorized())
		require.Contains(t, apiErr.Error(), "invalid credentials")
		require.False(t, holder.IsAuthenticated())
	})

	t.Run("missing fields are not sent", func(t *testing.T) {
		client, _, calls := newClient(t, handlers)

		_, err := client.Login(t.Context(), api.Credentials{Email: " "})
		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		require.Empty(t, calls.all())
	})

	t.Run("response without token", func(t *testing.T) {
		client, holder, _ := newClient(t, map[string]http.HandlerFunc{
			"POST " + api.EndpointLogin: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"user":{}}`))
			},
		})

		_, err := client.Login(t.Context(), api.Credentials{Email: "a@b.c", Password: "x"})
		require.ErrorIs(t, err, errors.ErrInvalidResponse)
		require.False(t, holder.IsAuthenticated())
	})
}

func TestClient_Signup(t *testing.T) {
	t.Run("token in response signs in", func(t *testing.T) {
		client, holder, _ := newClient(t, map[string]http.HandlerFunc{
			"POST " + api.EndpointSignup: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"token":"new-token","user":{"id":"user-2"}}`))
			},
		})

		_, err := client.Signup(t.Context(), api.SignupRequest{Email: "jane@example.com", Password: "password123"})
		require.NoError(t, err)
		require.Equal(t, "new-token", holder.AccessToken())
	})

	t.Run("no token keeps the session", func(t *testing.T) {
		client, holder, _ := newClient(t, map[string]http.HandlerFunc{
			"POST " + api.EndpointSignup: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"user":{"id":"user-2"}}`))
			},
		})

		_, err := client.Signup(t.Context(), api.SignupRequest{Email: "jane@example.com", Password: "password123"})
		require.NoError(t, err)
		require.False(t, holder.IsAuthenticated())
	})
}

func TestClient_AuthorizationHeader(t *testing.T) {
	client, holder, calls := newClient(t, nil)

	_, err := client.Stats(t.Context())
	require.NoError(t, err)
	require.Empty(t, calls.all()[0].Header.Get("Authorization"))

	holder.SetAuth("tok", nil)
	_, err = client.Resources(t.Context(), url.Values{"page": {"2"}})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", calls.all()[1].Header.Get("Authorization"))
	require.Equal(t, "page=2", calls.all()[1].Query)

	client.Logout()
	_, err = client.Stats(t.Context())
	require.NoError(t, err)
	require.Empty(t, calls.all()[2].Header.Get("Authorization"))

	t.Run("every request has a request id", func(t *testing.T) {
		for _, c := range calls.all() {
			_, err := uuid.Parse(c.Header.Get("X-Request-ID"))
			require.NoError(t, err)
		}
	})
}

func TestClient_Operations(t *testing.T) {
	client, _, calls := newClient(t, map[string]http.HandlerFunc{
		"DELETE " + api.ResourceByID("r-1"): func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
		"POST " + api.EndpointContact: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		},
	})
	ctx := t.Context()

	out, err := client.Search(ctx, api.SearchRequest{Query: "mars rover", Limit: 5})
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(out))

	_, err = client.Summarize(ctx, api.SummarizeRequest{ResourceID: "r-1"})
	require.NoError(t, err)
	_, err = client.Summary(ctx, "r-1")
	require.NoError(t, err)
	_, err = client.Chat(ctx, api.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	_, err = client.Cards(ctx, "r-1")
	require.NoError(t, err)
	_, err = client.Resource(ctx, "r-1")
	require.NoError(t, err)
	_, err = client.SaveResource(ctx, json.RawMessage(`{"title":"Apollo"}`))
	require.NoError(t, err)
	require.NoError(t, client.DeleteResource(ctx, "r-1"))
	require.NoError(t, client.Contact(ctx, api.ContactRequest{Name: "J", Email: "j@example.com", Message: "hi"}))

	var got []string
	for _, c := range calls.all() {
		got = append(got, c.Method+" "+c.Path)
	}
	require.Equal(t, []string{
		"POST /api/v1/search",
		"POST /api/v1/summarize",
		"GET /api/v1/summarize/r-1",
		"POST /api/v1/chat",
		"GET /api/v1/cards/r-1",
		"GET /api/v1/users/resources/r-1",
		"POST /api/v1/users/resources",
		"DELETE /api/v1/users/resources/r-1",
		"POST /api/v1/contact",
	}, got)
}

func TestClient_InvalidJSON(t *testing.T) {
	client, _, _ := newClient(t, map[string]http.HandlerFunc{
		"GET " + api.EndpointStats: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		},
	})

	_, err := client.Stats(t.Context())
	require.ErrorIs(t, err, errors.ErrInvalidResponse)
}

func TestEndpoints(t *testing.T) {
	require.Equal(t, "/api/v1/summarize/a%2Fb", api.SummarizeByID("a/b"))
	require.Equal(t, "/api/v1/cards/42", api.Cards("42"))

	names := map[string]bool{}
	for _, e := range api.Endpoints() {
		require.False(t, names[e.Name], e.Name)
		names[e.Name] = true
	}
	require.Len(t, names, 11)
}
