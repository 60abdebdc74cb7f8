package dto

import "github.com/google/uuid"

// DemoPlacedPayload is the asynq task payload enqueued after a successful
// placement.
type DemoPlacedPayload struct {
	RequestID  uuid.UUID `json:"request_id"`
	ClientName string    `json:"client_name"`
	TeamID     int       `json:"team_id"`
	TeamName   string    `json:"team_name"`
	Slot       string    `json:"slot"`
	Members    []string  `json:"members"`
	PlacedBy   string    `json:"placed_by"`
}

// DemoCancelledPayload is enqueued when a demo request is cancelled.
type DemoCancelledPayload struct {
	RequestID  uuid.UUID `json:"request_id"`
	ClientName string    `json:"client_name"`
}
