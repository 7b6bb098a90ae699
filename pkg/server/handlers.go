package server

import (
	"net/http"
	"strconv"
	"time"
)

// handleIndex serves the HTML shell that boots the renderer
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.write(w, "text/html; charset=utf-8", s.indexHTML)
}

// handleLayout serves the display tree. The body is the same for every request.
func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	s.write(w, "application/json", s.layout)
}

// handleDependencies reports the page callbacks; the page has none
func (s *Server) handleDependencies(w http.ResponseWriter, _ *http.Request) {
	s.write(w, "application/json", []byte("[]"))
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	s.write(w, "application/javascript", s.scriptCode)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.write(w, "text/plain; charset=utf-8", []byte("ok"))
}

func (s *Server) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if s.debug {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.WithError(err).Error("Failed writing response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs every request at debug level once it has been served
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.WithFields(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("Request served")
	})
}
