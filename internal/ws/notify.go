package ws

import (
	"encoding/json"
	"time"
)

const EventCatalogUpdated = "catalog_updated"

type CatalogUpdatedEvent struct {
	Type        string `json:"type"`
	Skills      int    `json:"skills"`
	Jobs        int    `json:"jobs"`
	Credentials int    `json:"credentials"`
	Timestamp   string `json:"timestamp"`
}

// NotifyCatalogUpdated broadcasts the sizes of a freshly loaded catalog.
func (h *Hub) NotifyCatalogUpdated(skills, jobs, credentials int) {
	if h == nil {
		return
	}

	evt := CatalogUpdatedEvent{
		Type:        EventCatalogUpdated,
		Skills:      skills,
		Jobs:        jobs,
		Credentials: credentials,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
