package server

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static/*
var staticFiles embed.FS

// StaticFilesFS holds the placeholder page served when the build output has no index.html
func StaticFilesFS() fs.FS {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}

	return subFS
}

// AssetHandler serves files under /assets/ from the build output. Directories are not listed.
func (s *Server) AssetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := s.fileName(r.URL.Path)
		if !ok {
			http.Error(w, "404 - Not Found", http.StatusNotFound)
			return
		}
		http.ServeFileFS(w, r, s.assets, name)
	}
}

// fileName maps a URL path to a regular file in the build output
func (s *Server) fileName(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}
	info, err := fs.Stat(s.assets, name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(s.assets, indexFile)
	if err != nil {
		data, err = fs.ReadFile(StaticFilesFS(), indexFile)
		if err != nil {
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_, _ = w.Write(data)
}
