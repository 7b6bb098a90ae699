package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/uberdash/pkg/component"
	"github.com/raykavin/uberdash/pkg/logger"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

// Routes served by the page
const (
	LayoutPath       = "/_dash-layout"
	DependenciesPath = "/_dash-dependencies"
	ScriptPath       = "/_dash-component-suites/renderer.js"
	HealthPath       = "/health"
)

// Server serves a display tree that is serialized once, at construction.
type Server struct {
	host            string
	port            int
	debug           bool
	title           string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	layout     []byte
	indexHTML  []byte
	scriptCode []byte
	log        logger.Logger
}

// Option defines a function type for configuring a Server instance
type Option func(*Server)

// WithHost sets the interface the listener binds to
func WithHost(host string) Option {
	return func(s *Server) {
		s.host = host
	}
}

// WithPort sets the HTTP server port
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithDebug disables minification and caching of the served assets
func WithDebug(debug bool) Option {
	return func(s *Server) {
		s.debug = debug
	}
}

// WithTitle sets the document title of the HTML shell
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = d
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = d
	}
}

// WithShutdownTimeout bounds how long in-flight requests may take once Start's
// context is cancelled
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer renders every response body up front: the layout JSON, the HTML
// shell and the transpiled renderer script.
func NewServer(log logger.Logger, layout component.Node, options ...Option) (*Server, error) {
	s := &Server{
		host:            "127.0.0.1",
		port:            8050,
		title:           "Dash",
		readTimeout:     15 * time.Second,
		writeTimeout:    15 * time.Second,
		shutdownTimeout: 10 * time.Second,
		log:             log,
	}

	for _, option := range options {
		option(s)
	}

	var err error
	if s.layout, err = s.encodeLayout(layout); err != nil {
		return nil, err
	}

	if s.indexHTML, err = s.renderIndex(layout); err != nil {
		return nil, err
	}

	if s.scriptCode, err = s.transpileScript(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) encodeLayout(layout component.Node) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if s.debug {
		raw, err = json.MarshalIndent(layout, "", "  ")
	} else {
		raw, err = json.Marshal(layout)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	return raw, nil
}

func (s *Server) renderIndex(layout component.Node) ([]byte, error) {
	index, err := template.ParseFS(staticFiles, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var heading string
	if children := layout.ChildNodes(); len(children) > 0 {
		heading = children[0].Text()
	}

	var buf bytes.Buffer
	err = index.Execute(&buf, map[string]any{
		"Title":      s.title,
		"Heading":    heading,
		"LayoutPath": LayoutPath,
		"ScriptPath": ScriptPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Server) transpileScript() ([]byte, error) {
	script, err := staticFiles.ReadFile("assets/renderer.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read renderer.js: %w", err)
	}

	result := api.Transform(string(script), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !s.debug,
		MinifyIdentifiers: !s.debug,
		MinifyWhitespace:  !s.debug,
	})

	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("renderer script failed with: %v", result.Errors)
	}

	return result.Code, nil
}

// Addr is the host:port the server listens on
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Layout returns the serialized display tree.
func (s *Server) Layout() []byte {
	return bytes.Clone(s.layout)
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET "+LayoutPath, s.handleLayout)
	mux.HandleFunc("GET "+DependenciesPath, s.handleDependencies)
	mux.HandleFunc("GET "+ScriptPath, s.handleScript)
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)

	return s.logRequests(mux)
}

// Start listens on Addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil on a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.log.WithFields(map[string]any{
		"addr":  ln.Addr().String(),
		"debug": s.debug,
	}).Infof("Page available at http://%s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
