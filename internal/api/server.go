package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/store"
)

// errMissingKey is returned when a member route has no key parameter.
var errMissingKey = errors.New("missing key query parameter")

// Server represents the HTTP API server
type Server struct {
	store  *store.SetStore
	server *http.Server
	logger zerolog.Logger
}

// NewServer creates a new API server
func NewServer(addr string, st *store.SetStore, logger zerolog.Logger) *Server {
	s := &Server{
		store:  st,
		logger: logger,
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	// Set operations
	r.HandleFunc("/members", s.listMembers).Methods(http.MethodGet)
	r.HandleFunc("/members", s.clearMembers).Methods(http.MethodDelete)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)
	r.HandleFunc("/debug/dump", s.dump).Methods(http.MethodGet)

	// Single member operations
	r.HandleFunc("/member", s.putMember).Methods(http.MethodPut)
	r.HandleFunc("/member", s.getMember).Methods(http.MethodGet)
	r.HandleFunc("/member", s.deleteMember).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("No route matched")
		s.respondError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens on the configured address and serves until Shutdown is
// called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(listener)
}

// Serve serves requests on listener until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Handled request")
	})
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Store operation failed")
	s.respondError(w, http.StatusInternalServerError, err)
}

// keyParam returns the key query parameter. A present but empty parameter
// denotes the empty string.
func keyParam(r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("key") {
		return "", false
	}
	return q.Get("key"), true
}

// HTTP Handlers
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listMembers handles GET /members?prefix=
func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	keys, err := s.store.List(r.Context(), prefix)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"members": keys,
		"count":   len(keys),
	})
}

// clearMembers handles DELETE /members
func (s *Server) clearMembers(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Len(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"size":  n,
		"empty": n == 0,
	})
}

func (s *Server) dump(w http.ResponseWriter, r *http.Request) {
	out, err := s.store.Dump(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, out)
}

// putMember handles PUT /member?key=
func (s *Server) putMember(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}
	existed, err := s.store.Add(r.Context(), key)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	s.respond(w, status, map[string]interface{}{
		"key":     key,
		"existed": existed,
	})
}

// getMember handles GET /member?key=
func (s *Server) getMember(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}
	found, err := s.store.Contains(r.Context(), key)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	if !found {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("key %q not found", key))
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"key": key})
}

// deleteMember handles DELETE /member?key=
func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}
	removed, err := s.store.Remove(r.Context(), key)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	if !removed {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("key %q not found", key))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
