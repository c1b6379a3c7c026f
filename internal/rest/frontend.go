package rest

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FrontendHandler serves the static site from a directory. Paths that do not match a file
// fall back to the index page.
type FrontendHandler struct {
	staticPath string
	indexPath  string
	fileServer http.Handler
}

func NewFrontendHandler(staticPath, indexPath string) *FrontendHandler {
	return &FrontendHandler{
		staticPath: staticPath,
		indexPath:  indexPath,
		fileServer: http.FileServer(http.Dir(staticPath)),
	}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	p := filepath.Join(h.staticPath, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	info, err := os.Stat(p)
	if os.IsNotExist(err) {
		log.Debugf("static file %s not found, serving index", r.URL.Path)
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if info.IsDir() {
		if _, err := os.Stat(filepath.Join(p, h.indexPath)); err != nil {
			http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
			return
		}
	}
	h.fileServer.ServeHTTP(w, r)
}
