package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-offline-agent/internal/agent"
	"go-offline-agent/internal/auth"
	"go-offline-agent/internal/push"
	"go-offline-agent/internal/queue"
)

const (
	maxPushPayload       = 4 << 10
	maxSubmissionPayload = 64 << 10
)

// handleInstall runs the install event
func (s *Server) handleInstall(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Lifecycle.OnInstall(r.Context()); err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	s.writeResponse(w, http.StatusOK, &ControlResponse{Success: true})
}

// handleActivate runs the activate event
func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Lifecycle.OnActivate(r.Context()); err != nil {
		code := statusFor(err, map[error]int{agent.ErrNotInstalled: http.StatusConflict}, http.StatusInternalServerError)
		s.writeErrorResponse(w, err.Error(), code)
		return
	}
	s.writeResponse(w, http.StatusOK, &ControlResponse{Success: true})
}

// handleSync raises a sync event for a queue tag
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	if err := s.deps.Lifecycle.OnSync(r.Context(), tag); err != nil {
		code := statusFor(err, map[error]int{
			agent.ErrUnknownSyncTag:   http.StatusNotFound,
			agent.ErrReplayIncomplete: http.StatusAccepted,
		}, http.StatusInternalServerError)
		s.writeErrorResponse(w, err.Error(), code)
		return
	}
	s.writeResponse(w, http.StatusOK, &ControlResponse{Success: true})
}

// requireToken only lets requests carrying a valid token for audience through
func (s *Server) requireToken(secret, audience string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeErrorResponse(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		claims, err := auth.VerifyFor(secret, audience, token)
		if err != nil {
			s.logger.Warn("Rejected control request",
				zap.String("path", r.URL.Path),
				zap.String("audience", audience),
				zap.Error(err))
			s.writeErrorResponse(w, "invalid token", http.StatusUnauthorized)
			return
		}
		s.logger.Debug("Control request authorized",
			zap.String("path", r.URL.Path),
			zap.String("subject", claims.Subject))
		next.ServeHTTP(w, r)
	})
}

// handlePush delivers a push payload; the body is the notification text
func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPushPayload))
	if err != nil {
		s.writeErrorResponse(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}
	if err := s.deps.Lifecycle.OnPush(r.Context(), payload); err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeResponse(w, http.StatusCreated, &ControlResponse{Success: true})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, &NotificationsResponse{Notifications: s.deps.Notifications.Active()})
}

// handleClick raises a notification click event
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPushPayload)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	tag := mux.Vars(r)["tag"]
	if err := s.deps.Lifecycle.OnNotificationClick(r.Context(), tag, req.Action); err != nil {
		code := statusFor(err, map[error]int{push.ErrEmptyTag: http.StatusBadRequest}, http.StatusInternalServerError)
		s.writeErrorResponse(w, err.Error(), code)
		return
	}
	s.writeResponse(w, http.StatusOK, &ControlResponse{Success: true})
}

// handleEnqueue stores a form submission for deferred delivery
func (s *Server) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmissionPayload))
	if err != nil {
		s.writeErrorResponse(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	sub, err := s.deps.Queue.Enqueue(r.Context(), mux.Vars(r)["queue"], payload)
	if err != nil {
		code := statusFor(err, map[error]int{
			queue.ErrUnknownQueue:   http.StatusNotFound,
			queue.ErrInvalidPayload: http.StatusBadRequest,
		}, http.StatusInsufficientStorage)
		s.writeErrorResponse(w, err.Error(), code)
		return
	}
	s.writeResponse(w, http.StatusAccepted, &SubmissionResponse{Success: true, Submission: sub})
}

// handlePending lists stored submissions of a queue
func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["queue"]
	subs, err := s.deps.Queue.Pending(name)
	if err != nil {
		code := statusFor(err, map[error]int{queue.ErrUnknownQueue: http.StatusNotFound}, http.StatusInternalServerError)
		s.writeErrorResponse(w, err.Error(), code)
		return
	}
	s.writeResponse(w, http.StatusOK, &PendingResponse{Queue: name, Submissions: subs})
}
