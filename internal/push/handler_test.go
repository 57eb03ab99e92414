package push

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces/mock"
	"go-offline-agent/internal/models"
)

func testPushConfig() *config.PushConfig {
	return &config.PushConfig{
		Title:       "Hotel",
		DefaultBody: "New offers are waiting for you!",
		Icon:        "/icons/icon-192x192.png",
		Badge:       "/icons/icon-72x72.png",
		OpenURL:     "/",
		Vibrate:     []int{100, 50, 100},
	}
}

func TestBuild_Body(t *testing.T) {
	h := NewHandler(testPushConfig(), NewCenter(zap.NewNop()), NewCenter(zap.NewNop()), zap.NewNop())

	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{name: "text", payload: []byte("X"), want: "X"},
		{name: "nil", payload: nil, want: "New offers are waiting for you!"},
		{name: "empty", payload: []byte{}, want: "New offers are waiting for you!"},
		{name: "whitespace", payload: []byte(" \n\t"), want: "New offers are waiting for you!"},
		{name: "invalid utf-8", payload: []byte{0xff, 0xfe}, want: "New offers are waiting for you!"},
		{name: "unicode", payload: []byte("Sconto 20% ☀"), want: "Sconto 20% ☀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Build(tt.payload).Body)
		})
	}
}

func TestBuild_Fields(t *testing.T) {
	h := NewHandler(testPushConfig(), NewCenter(zap.NewNop()), NewCenter(zap.NewNop()), zap.NewNop())
	h.now = func() time.Time { return time.UnixMilli(1700000000123) }

	n := h.Build([]byte("Spa weekend"))

	assert.Equal(t, "Hotel", n.Title)
	assert.Equal(t, "/icons/icon-192x192.png", n.Icon)
	assert.Equal(t, "/icons/icon-72x72.png", n.Badge)
	assert.Equal(t, []int{100, 50, 100}, n.Vibrate)
	assert.Equal(t, int64(1700000000123), n.Data.DateOfArrival)
	assert.Equal(t, n.Tag, n.Data.PrimaryKey)
	require.Len(t, n.Actions, 2)
	assert.Equal(t, models.ActionExplore, n.Actions[0].Action)
	assert.Equal(t, "View details", n.Actions[0].Title)
	assert.Equal(t, models.ActionClose, n.Actions[1].Action)
	assert.Equal(t, "Dismiss", n.Actions[1].Title)

	assert.NotEqual(t, n.Tag, h.Build(nil).Tag)
}

func TestHandlePush_ShowsNotification(t *testing.T) {
	center := NewCenter(zap.NewNop())
	h := NewHandler(testPushConfig(), center, center, zap.NewNop())

	n, err := h.HandlePush(context.Background(), nil)
	require.NoError(t, err)

	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, n, active[0])
	assert.Equal(t, "New offers are waiting for you!", active[0].Body)
}

func TestHandlePush_PresenterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mock.NewMockNotificationPresenter(ctrl)
	h := NewHandler(testPushConfig(), presenter, mock.NewMockWindowOpener(ctrl), zap.NewNop())

	presenter.EXPECT().Show(gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))

	_, err := h.HandlePush(context.Background(), []byte("X"))
	assert.Error(t, err)
}

func TestHandleClick_ExploreOpensRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mock.NewMockNotificationPresenter(ctrl)
	opener := mock.NewMockWindowOpener(ctrl)
	h := NewHandler(testPushConfig(), presenter, opener, zap.NewNop())

	gomock.InOrder(
		presenter.EXPECT().Close(gomock.Any(), "tag-1").Return(nil),
		opener.EXPECT().OpenWindow(gomock.Any(), "/").Return(nil),
	)

	require.NoError(t, h.HandleClick(context.Background(), "tag-1", models.ActionExplore))
}

func TestHandleClick_OtherActionsOnlyClose(t *testing.T) {
	for _, action := range []string{models.ActionClose, "", "snooze"} {
		t.Run(action, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			presenter := mock.NewMockNotificationPresenter(ctrl)
			opener := mock.NewMockWindowOpener(ctrl)
			h := NewHandler(testPushConfig(), presenter, opener, zap.NewNop())

			presenter.EXPECT().Close(gomock.Any(), "tag-1").Return(nil)

			require.NoError(t, h.HandleClick(context.Background(), "tag-1", action))
		})
	}
}

func TestHandleClick_CloseFailureStillOpens(t *testing.T) {
	center := NewCenter(zap.NewNop())
	h := NewHandler(testPushConfig(), center, center, zap.NewNop())

	require.NoError(t, h.HandleClick(context.Background(), "unknown", models.ActionExplore))
	assert.Equal(t, []string{"/"}, center.Opened())
}

func TestHandleClick_EmptyTag(t *testing.T) {
	h := NewHandler(testPushConfig(), NewCenter(zap.NewNop()), NewCenter(zap.NewNop()), zap.NewNop())
	assert.ErrorIs(t, h.HandleClick(context.Background(), "", models.ActionExplore), ErrEmptyTag)
}
