package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"go-offline-agent/internal/agent"
	"go-offline-agent/internal/auth"
	"go-offline-agent/internal/interfaces/mock"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/queue"
)

const (
	pushSecret  = "test-push-secret"
	adminSecret = "test-admin-secret"
)

type fakeState struct{ installed, active bool }

func (f fakeState) State() (bool, bool) { return f.installed, f.active }

type fakeNotifications []models.Notification

func (f fakeNotifications) Active() []models.Notification { return f }

type testServer struct {
	handler   http.Handler
	lifecycle *mock.MockLifecycle
	queue     *mock.MockSubmissionQueue

	adminToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	lifecycle := mock.NewMockLifecycle(ctrl)
	q := mock.NewMockSubmissionQueue(ctrl)

	server := NewServer(&Deps{
		Lifecycle:     lifecycle,
		State:         fakeState{installed: true, active: true},
		Queue:         q,
		Notifications: fakeNotifications{{Tag: "n1", Body: "X"}},
		PushSecret:    pushSecret,
		AdminSecret:   adminSecret,
	}, zaptest.NewLogger(t))

	token, _, err := auth.GenerateFor(adminSecret, auth.AdminAudience, "operator", "", time.Minute)
	require.NoError(t, err)

	return &testServer{handler: server.Handler(), lifecycle: lifecycle, queue: q, adminToken: token}
}

// admin issues a request carrying a valid control token
func (ts *testServer) admin(method, target, body string) *httptest.ResponseRecorder {
	return ts.do(method, target, body, "Authorization", "Bearer "+ts.adminToken)
}

func (ts *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/_agent/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decode(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Installed)
	assert.True(t, resp.Active)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.admin(http.MethodGet, "/_agent/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIntercept(t *testing.T) {
	ts := newTestServer(t)

	ts.lifecycle.EXPECT().OnIntercept(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *http.Request) *http.Response {
			assert.Equal(t, "/rooms//suite", req.URL.Path)
			return &http.Response{
				StatusCode: http.StatusOK,
				Header: http.Header{
					"Content-Type":           []string{"text/html"},
					models.CacheStatusHeader: []string{"HIT"},
					"Connection":             []string{"close"},
				},
				Body: io.NopCloser(strings.NewReader("<h1>suite</h1>")),
			}
		})

	rec := ts.do(http.MethodGet, "/rooms//suite", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>suite</h1>", rec.Body.String())
	assert.Equal(t, "HIT", rec.Header().Get(models.CacheStatusHeader))
	assert.Empty(t, rec.Header().Get("Connection"))
}

func TestInstallAndActivate(t *testing.T) {
	ts := newTestServer(t)

	ts.lifecycle.EXPECT().OnInstall(gomock.Any()).Return(nil)
	assert.Equal(t, http.StatusOK, ts.admin(http.MethodPost, "/_agent/install", "").Code)

	ts.lifecycle.EXPECT().OnInstall(gomock.Any()).Return(errors.New("failed to prefetch shell asset /"))
	assert.Equal(t, http.StatusServiceUnavailable, ts.admin(http.MethodPost, "/_agent/install", "").Code)

	ts.lifecycle.EXPECT().OnActivate(gomock.Any()).Return(agent.ErrNotInstalled)
	assert.Equal(t, http.StatusConflict, ts.admin(http.MethodPost, "/_agent/activate", "").Code)

	ts.lifecycle.EXPECT().OnActivate(gomock.Any()).Return(nil)
	assert.Equal(t, http.StatusOK, ts.admin(http.MethodPost, "/_agent/activate", "").Code)
}

func TestSync(t *testing.T) {
	ts := newTestServer(t)

	ts.lifecycle.EXPECT().OnSync(gomock.Any(), models.QueueBooking).Return(nil)
	assert.Equal(t, http.StatusOK, ts.admin(http.MethodPost, "/_agent/sync/booking-forms", "").Code)

	ts.lifecycle.EXPECT().OnSync(gomock.Any(), "newsletter").Return(fmt.Errorf("%w: newsletter", agent.ErrUnknownSyncTag))
	assert.Equal(t, http.StatusNotFound, ts.admin(http.MethodPost, "/_agent/sync/newsletter", "").Code)

	ts.lifecycle.EXPECT().OnSync(gomock.Any(), models.QueueContact).Return(agent.ErrReplayIncomplete)
	assert.Equal(t, http.StatusAccepted, ts.admin(http.MethodPost, "/_agent/sync/contact-forms", "").Code)
}

func TestPush_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, "/_agent/push", "X").Code)
	assert.Equal(t, http.StatusUnauthorized,
		ts.do(http.MethodPost, "/_agent/push", "X", "Authorization", "Bearer garbage").Code)

	wrong, _, err := auth.Generate("other-secret", "push-service", "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized,
		ts.do(http.MethodPost, "/_agent/push", "X", "Authorization", "Bearer "+wrong).Code)
}

func TestPush_Delivers(t *testing.T) {
	ts := newTestServer(t)
	token, _, err := auth.Generate(pushSecret, "push-service", "offers", time.Minute)
	require.NoError(t, err)

	ts.lifecycle.EXPECT().OnPush(gomock.Any(), []byte("Spa weekend -20%")).Return(nil)
	rec := ts.do(http.MethodPost, "/_agent/push", "Spa weekend -20%", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	ts.lifecycle.EXPECT().OnPush(gomock.Any(), []byte{}).Return(nil)
	rec = ts.do(http.MethodPost, "/_agent/push", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPush_PayloadTooLarge(t *testing.T) {
	ts := newTestServer(t)
	token, _, err := auth.Generate(pushSecret, "push-service", "", time.Minute)
	require.NoError(t, err)

	rec := ts.do(http.MethodPost, "/_agent/push", strings.Repeat("a", maxPushPayload+1), "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNotifications(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.admin(http.MethodGet, "/_agent/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp NotificationsResponse
	decode(t, rec, &resp)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "n1", resp.Notifications[0].Tag)
}

func TestNotificationClick(t *testing.T) {
	ts := newTestServer(t)

	ts.lifecycle.EXPECT().OnNotificationClick(gomock.Any(), "n1", models.ActionExplore).Return(nil)
	assert.Equal(t, http.StatusOK, ts.admin(http.MethodPost, "/_agent/notifications/n1/click", `{"action":"explore"}`).Code)

	ts.lifecycle.EXPECT().OnNotificationClick(gomock.Any(), "n1", "").Return(nil)
	assert.Equal(t, http.StatusOK, ts.admin(http.MethodPost, "/_agent/notifications/n1/click", "").Code)

	assert.Equal(t, http.StatusBadRequest, ts.admin(http.MethodPost, "/_agent/notifications/n1/click", `{"action":`).Code)
}

func TestSubmissions(t *testing.T) {
	ts := newTestServer(t)

	sub := &models.Submission{ID: "id-1", Queue: models.QueueBooking, Payload: json.RawMessage(`{"room":1}`)}
	ts.queue.EXPECT().Enqueue(gomock.Any(), models.QueueBooking, []byte(`{"room":1}`)).Return(sub, nil)

	rec := ts.do(http.MethodPost, "/_agent/submissions/booking-forms", `{"room":1}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var created SubmissionResponse
	decode(t, rec, &created)
	assert.Equal(t, "id-1", created.Submission.ID)

	ts.queue.EXPECT().Enqueue(gomock.Any(), models.QueueContact, []byte("name=a")).Return(nil, queue.ErrInvalidPayload)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/_agent/submissions/contact-forms", "name=a").Code)

	ts.queue.EXPECT().Enqueue(gomock.Any(), "newsletter", gomock.Any()).Return(nil, fmt.Errorf("%w: newsletter", queue.ErrUnknownQueue))
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPost, "/_agent/submissions/newsletter", "{}").Code)

	ts.queue.EXPECT().Pending(models.QueueBooking).Return([]models.Submission{*sub}, nil)
	rec = ts.admin(http.MethodGet, "/_agent/submissions/booking-forms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pending PendingResponse
	decode(t, rec, &pending)
	assert.Equal(t, models.QueueBooking, pending.Queue)
	assert.Len(t, pending.Submissions, 1)
}

func TestControlEndpoints_RequireAdminToken(t *testing.T) {
	ts := newTestServer(t)
	pushToken, _, err := auth.Generate(pushSecret, "push-service", "", time.Minute)
	require.NoError(t, err)
	foreign, _, err := auth.GenerateFor("other-secret", auth.AdminAudience, "operator", "", time.Minute)
	require.NoError(t, err)

	routes := []struct{ method, target string }{
		{http.MethodGet, "/_agent/submissions/booking-forms"},
		{http.MethodGet, "/_agent/metrics"},
		{http.MethodPost, "/_agent/install"},
		{http.MethodPost, "/_agent/activate"},
		{http.MethodPost, "/_agent/sync/booking-forms"},
		{http.MethodGet, "/_agent/notifications"},
		{http.MethodPost, "/_agent/notifications/n1/click"},
	}
	for _, route := range routes {
		name := route.method + " " + route.target
		assert.Equal(t, http.StatusUnauthorized, ts.do(route.method, route.target, "").Code, name)
		assert.Equal(t, http.StatusUnauthorized,
			ts.do(route.method, route.target, "", "Authorization", "Bearer "+pushToken).Code, name)
		assert.Equal(t, http.StatusUnauthorized,
			ts.do(route.method, route.target, "", "Authorization", "Bearer "+foreign).Code, name)
	}
}

func TestControlEndpoints_AdminDisabledWithoutSecret(t *testing.T) {
	server := NewServer(&Deps{State: fakeState{}}, zaptest.NewLogger(t))
	token, _, err := auth.GenerateFor(adminSecret, auth.AdminAudience, "operator", "", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/_agent/install", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_agent/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStopWithoutStart(t *testing.T) {
	server := NewServer(&Deps{}, zaptest.NewLogger(t))
	assert.NoError(t, server.Stop(context.Background()))
}
