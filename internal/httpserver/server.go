package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-offline-agent/internal/auth"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/utils"
)

// ControlPrefix is the path prefix of the agent's own endpoints
const ControlPrefix = "/_agent"

const unixPrefix = "unix:"

// NotificationLister exposes displayed notifications
type NotificationLister interface {
	Active() []models.Notification
}

// StateReporter exposes the lifecycle state of the agent
type StateReporter interface {
	State() (installed, active bool)
}

// Deps wires the server to the agent
type Deps struct {
	Lifecycle     interfaces.Lifecycle
	State         StateReporter
	Queue         interfaces.SubmissionQueue
	Notifications NotificationLister
	PushSecret    string
	// AdminSecret signs tokens for every control endpoint except health and
	// page-side submission capture
	AdminSecret string
}

// Server is the HTTP front-end of the agent
type Server struct {
	deps   *Deps
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a new agent HTTP server
func NewServer(deps *Deps, logger *zap.Logger) *Server {
	return &Server{
		deps:   deps,
		logger: logger,
	}
}

// Start serves on listenAddr, either host:port or unix:/path/to.sock
func (s *Server) Start(listenAddr string) error {
	listener, err := s.listen(listenAddr)
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting agent HTTP server", zap.String("listen_addr", listenAddr))
	return s.server.Serve(listener)
}

func (s *Server) listen(listenAddr string) (net.Listener, error) {
	if !strings.HasPrefix(listenAddr, unixPrefix) {
		return net.Listen("tcp", listenAddr)
	}

	socketPath := strings.TrimPrefix(listenAddr, unixPrefix)
	if err := os.RemoveAll(socketPath); err != nil {
		s.logger.Warn("Failed to remove existing socket file", zap.String("path", socketPath), zap.Error(err))
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(socketPath, 0660); err != nil {
		s.logger.Warn("Failed to set socket permissions", zap.String("path", socketPath), zap.Error(err))
	}
	return listener, nil
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping agent HTTP server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler creates and configures the HTTP router
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().SkipClean(true)

	control := router.PathPrefix(ControlPrefix).Subrouter()
	control.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	// pages capture submissions without credentials
	control.HandleFunc("/submissions/{queue}", s.handleEnqueue).Methods(http.MethodPost)
	control.Handle("/push", s.requireToken(s.deps.PushSecret, auth.PushAudience, http.HandlerFunc(s.handlePush))).Methods(http.MethodPost)

	admin := func(h http.Handler) http.Handler {
		return s.requireToken(s.deps.AdminSecret, auth.AdminAudience, h)
	}
	control.Handle("/metrics", admin(promhttp.Handler())).Methods(http.MethodGet)
	control.Handle("/install", admin(http.HandlerFunc(s.handleInstall))).Methods(http.MethodPost)
	control.Handle("/activate", admin(http.HandlerFunc(s.handleActivate))).Methods(http.MethodPost)
	control.Handle("/sync/{tag}", admin(http.HandlerFunc(s.handleSync))).Methods(http.MethodPost)
	control.Handle("/notifications", admin(http.HandlerFunc(s.handleNotifications))).Methods(http.MethodGet)
	control.Handle("/notifications/{tag}/click", admin(http.HandlerFunc(s.handleClick))).Methods(http.MethodPost)
	control.Handle("/submissions/{queue}", admin(http.HandlerFunc(s.handlePending))).Methods(http.MethodGet)

	// everything else is intercepted
	router.PathPrefix("/").HandlerFunc(s.handleIntercept)

	return router
}

// handleIntercept hands the request to the agent and copies its response back
func (s *Server) handleIntercept(w http.ResponseWriter, r *http.Request) {
	resp := s.deps.Lifecycle.OnIntercept(r.Context(), r)
	if err := utils.WriteResponse(w, resp); err != nil {
		s.logger.Debug("Failed to write intercepted response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	installed, active := s.deps.State.State()
	s.writeResponse(w, http.StatusOK, &HealthResponse{
		Status:    "healthy",
		Time:      time.Now().UTC(),
		Installed: installed,
		Active:    active,
	})
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	s.writeResponse(w, statusCode, &ControlResponse{
		Success: false,
		Error:   message,
	})
}

func statusFor(err error, known map[error]int, fallback int) int {
	for target, code := range known {
		if errors.Is(err, target) {
			return code
		}
	}
	return fallback
}
