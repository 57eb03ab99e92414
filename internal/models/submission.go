package models

import (
	"encoding/json"
	"time"
)

// Queue names for deferred form submissions. They double as sync tags.
const (
	QueueBooking = "booking-forms"
	QueueContact = "contact-forms"
)

// QueueNames lists every known deferred submission queue
func QueueNames() []string {
	return []string{QueueBooking, QueueContact}
}

// Submission is a form payload captured while offline
type Submission struct {
	ID         string          `json:"id"`
	Queue      string          `json:"queue"`
	Payload    json.RawMessage `json:"payload"`
	CapturedAt time.Time       `json:"captured_at"`
}

// ReplayResult summarizes one replay cycle of a queue
type ReplayResult struct {
	Queue     string `json:"queue"`
	Attempted int    `json:"attempted"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}
