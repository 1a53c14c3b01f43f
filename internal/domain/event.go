package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event describes a mutation handed to the workflow-automation webhook.
type Event struct {
	EntityType EntityType     `json:"entityType"`
	EntityID   *uuid.UUID     `json:"entityId,omitempty"`
	Action     EventAction    `json:"action"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
