package httpserver

import (
	"time"

	"go-offline-agent/internal/models"
)

// HealthResponse reports the lifecycle state of the agent
type HealthResponse struct {
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
	Installed bool      `json:"installed"`
	Active    bool      `json:"active"`
}

// ControlResponse is returned by lifecycle control endpoints
type ControlResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ClickRequest describes a notification click
type ClickRequest struct {
	Action string `json:"action"`
}

// SubmissionResponse is returned when a submission was queued
type SubmissionResponse struct {
	Success    bool               `json:"success"`
	Submission *models.Submission `json:"submission,omitempty"`
}

// PendingResponse lists the stored submissions of a queue
type PendingResponse struct {
	Queue       string              `json:"queue"`
	Submissions []models.Submission `json:"submissions"`
}

// NotificationsResponse lists displayed notifications
type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}
