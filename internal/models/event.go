package models

import (
	"bytes"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// Event - запись журнала действий мобильного приложения.
type Event struct {
	ID        ID             `json:"id"`
	Type      string         `json:"type"`
	ActorID   ID             `json:"actor_id"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

// HasMetadata - metadata присутствует и не равна null.
func (e Event) HasMetadata() bool {
	m := bytes.TrimSpace(e.Metadata)
	return len(m) > 0 && !bytes.Equal(m, jsonNull)
}

// MetadataCompact - metadata одной строкой, "-" если её нет.
func (e Event) MetadataCompact() string {
	if !e.HasMetadata() {
		return "-"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, e.Metadata); err != nil {
		return string(e.Metadata)
	}
	return buf.String()
}

// EventList - ответ /admin/events.
type EventList struct {
	Items               []Event `json:"items"`
	EventsSetupRequired bool    `json:"eventsSetupRequired"`
	Hint                string  `json:"hint"`
}
