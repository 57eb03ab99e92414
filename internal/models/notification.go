package models

// Notification action identifiers carried in push notifications
const (
	ActionExplore = "explore"
	ActionClose   = "close"
)

// NotificationAction is a button rendered on a system notification
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// Notification is the rendered form of a push payload
type Notification struct {
	Tag     string               `json:"tag"`
	Title   string               `json:"title"`
	Body    string               `json:"body"`
	Icon    string               `json:"icon"`
	Badge   string               `json:"badge"`
	Vibrate []int                `json:"vibrate,omitempty"`
	Data    NotificationData     `json:"data"`
	Actions []NotificationAction `json:"actions"`
}

// NotificationData is attached to a notification and echoed back on click
type NotificationData struct {
	DateOfArrival int64  `json:"date_of_arrival"`
	PrimaryKey    string `json:"primary_key"`
}
