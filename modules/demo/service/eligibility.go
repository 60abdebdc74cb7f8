package service

import (
	"sort"
	"strings"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"
)

// UnassignedPool computes the requests the given user may act on next, sorted
// ascending by demo date. Rules are evaluated per request, first match wins:
//
//  1. rescheduled: included while no team is assigned.
//  2. cancelled: included while no team is assigned (an assigned cancelled
//     demo keeps its grid cell and is not listed here).
//  3. planned and unassigned: presales see their own pending work matched by
//     assignee name regardless of recipes; every other role only sees demos
//     that already have at least one recipe attached.
//  4. given, or already assigned: excluded.
//
// Role is the only thing that affects the result set, and only through rule 3.
func UnassignedPool(requests []entity.DemoRequest, role, userName string) []entity.DemoRequest {
	pool := make([]entity.DemoRequest, 0, len(requests))
	for _, req := range requests {
		if eligible(&req, role, userName) {
			pool = append(pool, req)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].DemoDate.Before(pool[j].DemoDate)
	})
	return pool
}

func eligible(req *entity.DemoRequest, role, userName string) bool {
	switch req.Status {
	case entity.StatusRescheduled:
		return !req.Assigned()
	case entity.StatusCancelled:
		return !req.Assigned()
	case entity.StatusPlanned:
		if req.Assigned() {
			return false
		}
		if strings.EqualFold(role, constants.RolePresales) {
			// "my pending work", recipes or not
			return strings.EqualFold(req.Assignee, userName)
		}
		return len(req.Recipes) > 0
	default:
		// given, or an unrecognized status: never schedulable from here
		return false
	}
}
