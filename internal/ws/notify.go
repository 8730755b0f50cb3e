package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyJobsUpdated(reason string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}

// Notifier adapts the package-level broadcast to the usecase interface.
type Notifier struct{}

func (Notifier) JobsUpdated(reason string) {
	NotifyJobsUpdated(reason)
}
