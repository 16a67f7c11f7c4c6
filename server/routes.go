package server

import "net/http"

// Route path constants
const (
	RouteHealth = "/healthz"
	RouteAssets = "/assets/"
	RouteIndex  = "/"
)

const (
	indexFile       = "index.html"
	contentTypeHTML = "text/html; charset=utf-8"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	s.RegisterRouteHandler("GET "+RouteAssets, ChainMiddleware(s.AssetHandler(), s.StaticMiddleware()...))

	// Everything else is either a root level file (favicon.ico, robots.txt) or a client side route
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.PageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("OPTIONS "+RouteIndex, ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, s.StaticMiddleware()...))
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
