package logic

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/battlepoint/arena/internal/models"
)

// ActivityDisplayLimit is how many entries the activity feed shows.
const ActivityDisplayLimit = 5

// activityRetention bounds memory for long-running sessions; only the tail is ever shown.
const activityRetention = 200

// ActivityLog is the append-only, in-memory activity feed.
type ActivityLog struct {
	mu      sync.Mutex
	entries []models.Activity
	now     func() time.Time
}

func NewActivityLog(now func() time.Time) *ActivityLog {
	if now == nil {
		now = time.Now
	}
	return &ActivityLog{now: now}
}

// Add appends an entry and returns it.
func (l *ActivityLog) Add(kind models.ActivityKind, message string) models.Activity {
	entry := models.Activity{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		Timestamp: l.now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > activityRetention {
		l.entries = append([]models.Activity(nil), l.entries[len(l.entries)-activityRetention:]...)
	}
	return entry
}

// Recent returns the last ActivityDisplayLimit entries, newest first.
func (l *ActivityLog) Recent() []models.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if n > ActivityDisplayLimit {
		n = ActivityDisplayLimit
	}
	out := make([]models.Activity, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset drops every entry.
func (l *ActivityLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
