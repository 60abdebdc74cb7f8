package dto

import (
	demoEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"

	"github.com/google/uuid"
)

type PlaceRequest struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	TeamID    int       `json:"team_id" validate:"required"`
	Slot      string    `json:"slot" validate:"required"`
}

// GridCell is one team/slot cell of the schedule board.
type GridCell struct {
	Slot string `json:"slot"`
	// Request is the occupying demo, if any.
	Request *demoEntity.DemoRequest `json:"request,omitempty"`
	// Cancelled marks an occupied cell whose demo was cancelled after
	// placement. The cell stays blocked, but the UI renders it distinctly.
	Cancelled bool `json:"cancelled,omitempty"`
}

type GridTeam struct {
	TeamID   int        `json:"team_id"`
	TeamName string     `json:"team_name"`
	Members  []string   `json:"members"`
	Cells    []GridCell `json:"cells"`
}

type GridResponse struct {
	Slots []string   `json:"slots"`
	Teams []GridTeam `json:"teams"`
}
