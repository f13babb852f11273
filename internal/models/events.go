package models

import "time"

type ActivityKind string

const (
	ActivitySuccess ActivityKind = "success"
	ActivityError   ActivityKind = "error"
	ActivityInfo    ActivityKind = "info"
)

// Activity is one line of the in-memory activity feed.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityKind `json:"type"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// Notification is the transient toast shown for an action outcome.
type Notification struct {
	Level       ActivityKind `json:"level"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
}

type StreamEventType string

const (
	StreamActivity     StreamEventType = "activity"
	StreamNotification StreamEventType = "notification"
	StreamProcessing   StreamEventType = "processing"
	StreamState        StreamEventType = "state"
)

// StreamEvent is pushed to websocket subscribers.
type StreamEvent struct {
	Type      StreamEventType `json:"type"`
	Payload   interface{}     `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}
