// Package server is the preview server for the built shell: it serves the
// static bundle, falls back to index.html for client side routes and applies
// the navigation guard before a protected page is served.
package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/jrsteele09/studyshell/internal/config"
	"github.com/jrsteele09/studyshell/navigation"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	assets     fs.FS
	table      *navigation.Table
	authorizer *navigation.Authorizer
}

// New builds a preview server over assets (normally os.DirFS of the build output).
func New(config config.Config, assets fs.FS, table *navigation.Table, auth navigation.Authenticator) *Server {
	s := &Server{
		env:        config.GetEnv(),
		mux:        http.NewServeMux(),
		config:     config,
		assets:     assets,
		table:      table,
		authorizer: navigation.NewAuthorizer(auth),
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1], 0)
		} else {
			logRoute("", parts[0], 0)
		}
	}
}

func logRoute(method, path string, status int) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	if status == 0 {
		log.Info().Msgf("[%-19s] %s", displayMethod, path)
		return
	}
	color, ok := statusColors[status/100]
	if !ok {
		color = Gray
	}
	log.Info().Msgf("[%-19s] %s %s%d%s", displayMethod, path, color, status, ResetColor)
}
