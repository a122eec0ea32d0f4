package report

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"goeda/internal"
)

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Transaction Data Analysis Report</title>
<style>
body { font-family: sans-serif; max-width: 1100px; margin: 2rem auto; padding: 0 1rem; color: #1f2933; }
pre { background: #f5f7fa; padding: 1rem; overflow-x: auto; }
img { max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>`

// Server serves a generated report directory over HTTP: the markdown report
// rendered as HTML at /, figures under /figures/.
type Server struct {
	router chi.Router
	dir    string
	log    *internal.Logger
}

// NewServer creates a server for the given report run directory
func NewServer(dir string) *Server {
	s := &Server{
		dir: dir,
		log: internal.DefaultLogger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Handle("/figures/*", http.StripPrefix("/figures/",
		http.FileServer(http.Dir(filepath.Join(dir, "figures")))))
	s.router = r

	return s
}

// Handler returns the HTTP handler for the report
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the report on the given address
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("serving report from %s on %s", s.dir, addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	md, err := os.ReadFile(filepath.Join(s.dir, "report.md"))
	if err != nil {
		s.log.Error("report not found: %v", err)
		http.Error(w, "report not generated yet", http.StatusNotFound)
		return
	}

	body := markdown.ToHTML(md, nil, nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, body)
}
