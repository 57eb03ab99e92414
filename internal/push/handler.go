package push

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
)

var ErrEmptyTag = errors.New("notification tag is empty")

// Handler turns push payloads into notifications and handles clicks on them
type Handler struct {
	cfg       *config.PushConfig
	presenter interfaces.NotificationPresenter
	opener    interfaces.WindowOpener
	logger    *zap.Logger
	now       func() time.Time
}

func NewHandler(cfg *config.PushConfig, presenter interfaces.NotificationPresenter, opener interfaces.WindowOpener, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		presenter: presenter,
		opener:    opener,
		logger:    logger,
		now:       time.Now,
	}
}

// Build renders payload into a notification. Missing, blank or non UTF-8
// payloads get the default body.
func (h *Handler) Build(payload []byte) models.Notification {
	body := string(payload)
	if strings.TrimSpace(body) == "" || !utf8.Valid(payload) {
		body = h.cfg.DefaultBody
	}

	tag := uuid.NewString()
	return models.Notification{
		Tag:     tag,
		Title:   h.cfg.Title,
		Body:    body,
		Icon:    h.cfg.Icon,
		Badge:   h.cfg.Badge,
		Vibrate: append([]int(nil), h.cfg.Vibrate...),
		Data: models.NotificationData{
			DateOfArrival: h.now().UnixMilli(),
			PrimaryKey:    tag,
		},
		Actions: []models.NotificationAction{
			{Action: models.ActionExplore, Title: "View details", Icon: h.cfg.Icon},
			{Action: models.ActionClose, Title: "Dismiss", Icon: h.cfg.Icon},
		},
	}
}

// HandlePush shows the notification rendered from payload
func (h *Handler) HandlePush(ctx context.Context, payload []byte) (models.Notification, error) {
	n := h.Build(payload)

	kind := "payload"
	if n.Body == h.cfg.DefaultBody {
		kind = "default"
	}
	metrics.RecordNotification(kind)

	if err := h.presenter.Show(ctx, n); err != nil {
		return n, err
	}
	h.logger.Info("notification shown", zap.String("tag", n.Tag), zap.String("body_kind", kind))
	return n, nil
}

// HandleClick closes the notification and opens the site for the explore action
func (h *Handler) HandleClick(ctx context.Context, tag, action string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	metrics.RecordNotificationClick(clickLabel(action))

	if err := h.presenter.Close(ctx, tag); err != nil {
		h.logger.Warn("failed to close notification", zap.String("tag", tag), zap.Error(err))
	}
	if action != models.ActionExplore {
		return nil
	}
	return h.opener.OpenWindow(ctx, h.cfg.OpenURL)
}

func clickLabel(action string) string {
	switch action {
	case models.ActionExplore, models.ActionClose:
		return action
	case "":
		return "body"
	default:
		return "other"
	}
}
