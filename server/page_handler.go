package server

import (
	"net/http"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/navigation"
	"github.com/rs/zerolog/log"
)

// PageHandler serves root level files from the build output, and index.html for
// every path the route table knows. Protected pages are redirected to the login
// page while the shell's session is signed out.
func (s *Server) PageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name, ok := s.fileName(r.URL.Path); ok && name != indexFile {
			http.ServeFileFS(w, r, s.assets, name)
			return
		}

		to, err := s.table.Resolve(r.URL.RequestURI())
		if err != nil {
			if !errors.Is(err, errors.ErrRouteNotFound) {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("preview: failed to resolve page")
			}
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}

		decision := s.authorizer.Authorize(navigation.StartLocation, to)
		if !decision.Allowed() {
			target, err := s.table.URL(decision.Target.Name, decision.Target.Params, decision.Target.Query)
			if err != nil {
				log.Err(err).Str("path", to.FullPath).Msg("preview: failed to build redirect")
				http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		s.serveIndex(w, r)
	}
}
