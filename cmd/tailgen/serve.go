package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/yacobolo/tailgen/internal/accel"
	"github.com/yacobolo/tailgen/internal/generator"
	"github.com/yacobolo/tailgen/internal/optimizer"
	"github.com/yacobolo/tailgen/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP endpoint that compiles classes on demand",
	Long: `Start an HTTP server with three endpoints:

  POST /compile   {"classes": [...]} or {"elements": [[...], ...]} -> text/css
  POST /optimize  raw CSS -> optimized text/css
  GET  /healthz   liveness check

Compiled class lists are cached in memory or Redis.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", ":8080", "Listen address")
	f.Int("workers", 0, "Workers per multi-element request (0 = number of CPUs)")
	f.String("cache-backend", "memory", "Compile cache: memory|file|redis|none")
	f.String("cache-dir", ".tailgen-cache", "Directory for the file cache")
	f.Int("cache-size", 4096, "Entries kept by the memory cache")
	f.Duration("cache-ttl", 0, "Cache entry lifetime (0 = forever)")
	f.String("redis-addr", "", "Redis address for the redis cache")
	f.Int64("max-body", 1<<20, "Maximum request body in bytes")
}

// server holds the handler dependencies
type server struct {
	compiler  *accel.Compiler
	pool      *accel.Pool
	optimizer *optimizer.Optimizer
	theme     *theme.Theme
	maxBody   int64
	log       *charmlog.Logger
}

type compileRequest struct {
	Classes  []string   `json:"classes"`
	Elements [][]string `json:"elements"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Token   string   `json:"token,omitempty"`
	Details []string `json:"details,omitempty"`
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())
	verbose := getBoolWithFallback("verbose", "verbose", false)
	zl := newZapLogger(verbose)
	defer func() { _ = zl.Sync() }()

	th := theme.Default()
	if path := getStringWithFallback("theme", "theme", ""); path != "" {
		loaded, err := theme.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		th = loaded
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	settings, err := buildCacheSettings()
	if err != nil {
		return err
	}
	cache, err := openCache(ctx, settings)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cache.Close()

	optCfg, err := buildOptimizerConfig()
	if err != nil {
		return err
	}

	compiler := accel.NewCompiler(cache,
		accel.WithTTL(settings.TTL),
		accel.WithCompilerTheme(th),
		accel.WithCompilerLogger(zl))
	s := &server{
		compiler:  compiler,
		pool:      accel.NewPool(compiler, getIntWithFallback("workers", "serve.workers", 0)),
		optimizer: optimizer.New(optCfg, zl),
		theme:     th,
		maxBody:   int64(getIntWithFallback("max-body", "serve.max-body", 1<<20)),
		log:       logger,
	}

	addr := getStringWithFallback("addr", "serve.addr", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr, "cache", settings.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/compile", s.handleCompile)
	r.Post("/optimize", s.handleOptimize)
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	hits, misses := s.compiler.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"version":      version,
		"cache_hits":   hits,
		"cache_misses": misses,
	})
}

func (s *server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if len(req.Classes) == 0 && len(req.Elements) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "classes or elements required"})
		return
	}

	if len(req.Elements) == 0 {
		out, err := s.compiler.CompileCSS(r.Context(), req.Classes)
		if err != nil {
			writeCompileError(w, err)
			return
		}
		writeCSS(w, out)
		return
	}

	results, err := s.pool.CompileElements(r.Context(), req.Elements)
	if err != nil {
		resp := errorResponse{Error: "one or more elements failed"}
		for _, res := range results {
			if res.Err != nil {
				resp.Details = append(resp.Details, fmt.Sprintf("element %d: %v", res.Index, res.Err))
			}
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	g := generator.New(generator.WithTheme(s.theme))
	if n := accel.MergeResults(g, results, nil); n > 0 {
		s.log.Debug("elements disagree on shared tokens", "tokens", n)
	}
	writeCSS(w, g.GenerateMinifiedCSS())
}

func (s *server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorResponse{Error: "reading body: " + err.Error()})
		return
	}

	out, err := s.optimizer.OptimizeCSS(string(raw))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeCSS(w, out)
}

func writeCompileError(w http.ResponseWriter, err error) {
	var cge *generator.ClassGenerationError
	if errors.As(err, &cge) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Token: cge.Token})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, css)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
