package queue

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-offline-agent/internal/models"
)

func TestTrigger_OfflineDoesNotSync(t *testing.T) {
	f := newFixture(t)
	_, err := f.queue.Enqueue(context.Background(), models.QueueBooking, []byte(`{}`))
	require.NoError(t, err)

	var synced []string
	probe, _ := url.Parse("https://hotel.example.com/")
	trigger := NewTrigger(f.queue, f.fetcher, probe, time.Second, func(_ context.Context, tag string) error {
		synced = append(synced, tag)
		return nil
	}, zap.NewNop())

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("network is unreachable"))

	trigger.Tick()
	assert.False(t, trigger.Online())
	assert.Empty(t, synced)
}

func TestTrigger_OnlineSyncsPendingQueues(t *testing.T) {
	f := newFixture(t)
	_, err := f.queue.Enqueue(context.Background(), models.QueueContact, []byte(`{}`))
	require.NoError(t, err)

	var synced []string
	probe, _ := url.Parse("https://hotel.example.com/")
	trigger := NewTrigger(f.queue, f.fetcher, probe, time.Second, func(_ context.Context, tag string) error {
		synced = append(synced, tag)
		return errors.New("endpoint down")
	}, zap.NewNop())

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodHead, req.Method)
			assert.Equal(t, "https://hotel.example.com/", req.URL.String())
			return status(http.StatusOK), nil
		})

	trigger.Tick()
	assert.True(t, trigger.Online())
	assert.Equal(t, []string{models.QueueContact}, synced)
}

func TestTrigger_DisabledInterval(t *testing.T) {
	f := newFixture(t)
	probe, _ := url.Parse("https://hotel.example.com/")
	trigger := NewTrigger(f.queue, f.fetcher, probe, 0, func(context.Context, string) error { return nil }, zap.NewNop())

	trigger.Start()
	defer trigger.Stop()
	assert.False(t, trigger.scheduler.IsRunning())
}
