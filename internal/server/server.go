// Package server exposes the graph operations as a local JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/history"
	"github.com/masmgr/commitgraph-go/internal/output"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server serves the graph API over HTTP.
type Server struct {
	svc    *history.Service
	logger *slog.Logger
	router chi.Router
}

// New builds a Server around svc. A nil logger discards output.
func New(svc *history.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/commits", s.handleCommits)
		r.Get("/commits/{id}/changes", s.handleCommitChanges)
		r.Get("/compare", s.handleCompare)
		r.Post("/checkout", s.handleCheckout)
		r.Post("/clone", s.handleClone)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

type checkoutRequest struct {
	Path string `json:"path"`
	Ref  string `json:"ref"`
}

type cloneRequest struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type cloneResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) handleCommits(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing path"))
		return
	}

	commits, err := s.svc.GetCommits(r.Context(), path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewCommitJSON(commits))
}

func (s *Server) handleCommitChanges(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	id := chi.URLParam(r, "id")
	if path == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing path"))
		return
	}

	changes, err := s.svc.GetCommitChanges(r.Context(), path, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewFileChangeJSON(changes))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path, from, to := q.Get("path"), q.Get("from"), q.Get("to")
	if path == "" || from == "" || to == "" {
		writeError(w, http.StatusBadRequest, errors.New("path, from and to are required"))
		return
	}

	changes, err := s.svc.CompareCommits(r.Context(), path, from, to)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewFileChangeJSON(changes))
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" || req.Ref == "" {
		writeError(w, http.StatusBadRequest, errors.New("path and ref are required"))
		return
	}

	if err := s.svc.CheckoutRef(r.Context(), req.Path, req.Ref); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) handleClone(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.URL == "" || req.Path == "" {
		writeError(w, http.StatusBadRequest, errors.New("url and path are required"))
		return
	}

	msg, err := s.svc.CloneRepo(r.Context(), req.URL, req.Path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cloneResponse{Message: msg})
}

// fail maps an operation error to a status code and logs it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var notFound *git.ReferenceNotFoundError
	if errors.As(err, &notFound) {
		code = http.StatusNotFound
	}
	s.logger.Warn("operation failed", "path", r.URL.Path, "status", code, "error", err)
	writeError(w, code, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
