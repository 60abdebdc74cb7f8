package service

import (
	"fmt"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	demoEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"
)

// Occupant returns the demo request currently holding the (team, slot) cell,
// or nil when the cell is free.
//
// The grid is a partial injective function from (team, slot) to request;
// finding more than one occupant is a data-integrity violation and is
// surfaced as an ErrGridConflict rather than silently picked among. Cancelled
// and given demos still count as occupants here: a cancelled demo keeps
// blocking its cell until the upstream workflow reschedules it.
func Occupant(requests []demoEntity.DemoRequest, teamID int, slot string) (*demoEntity.DemoRequest, *errors.AppError) {
	var occupant *demoEntity.DemoRequest
	for i := range requests {
		if !requests[i].OccupiesCell(teamID, slot) {
			continue
		}
		if occupant != nil {
			return nil, errors.New(errors.ErrGridConflict,
				fmt.Sprintf("grid invariant violated: requests %s and %s both occupy team %d slot %q",
					occupant.ID, requests[i].ID, teamID, slot))
		}
		occupant = &requests[i]
	}
	return occupant, nil
}
