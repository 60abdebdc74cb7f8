package entity

import (
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"

	"github.com/lib/pq"
)

// DemoRequest is the schedulable unit: one client's product demonstration,
// created by sales intake and placed onto the kitchen grid by the head chef.
type DemoRequest struct {
	ClientName   string `db:"client_name" json:"client_name"`
	ClientMobile string `db:"client_mobile" json:"client_mobile"`
	// DemoDate is the requested calendar date. Only the date part is
	// meaningful.
	DemoDate time.Time `db:"demo_date" json:"demo_date"`
	// DemoTime is the requested local clock time as entered by sales, e.g.
	// "10:00 AM". May be empty or free-form; unparseable values never block
	// placement.
	DemoTime string         `db:"demo_time" json:"demo_time"`
	Status   DemoStatus     `db:"status" json:"status"`
	Assignee string         `db:"assignee" json:"assignee"`
	Recipes  pq.StringArray `db:"recipes" json:"recipes"`
	Notes    string         `db:"notes" json:"notes"`
	// MediaLink is a shareable link to uploaded demo media, if any.
	MediaLink string `db:"media_link" json:"media_link"`

	// Assignment fields. AssignedTeam and AssignedSlot are set and cleared
	// together; use SetAssignment / ClearAssignment.
	AssignedTeam    *int           `db:"assigned_team" json:"assigned_team"`
	AssignedSlot    *string        `db:"assigned_slot" json:"assigned_slot"`
	AssignedMembers pq.StringArray `db:"assigned_members" json:"assigned_members"`

	// Version is the optimistic-concurrency token checked on upsert.
	Version int `db:"version" json:"version"`

	entity.BaseEntity
}

// Assigned reports whether the request occupies a grid cell.
func (r *DemoRequest) Assigned() bool {
	return r.AssignedTeam != nil && r.AssignedSlot != nil
}

// SetAssignment binds the request to a team/slot cell atomically.
func (r *DemoRequest) SetAssignment(teamID int, slot string, members []string) {
	r.AssignedTeam = &teamID
	r.AssignedSlot = &slot
	r.AssignedMembers = append(pq.StringArray{}, members...)
}

// ClearAssignment vacates the request's grid cell.
func (r *DemoRequest) ClearAssignment() {
	r.AssignedTeam = nil
	r.AssignedSlot = nil
	r.AssignedMembers = nil
}

// OccupiesCell reports whether the request currently holds the given cell.
func (r *DemoRequest) OccupiesCell(teamID int, slot string) bool {
	return r.AssignedTeam != nil && *r.AssignedTeam == teamID &&
		r.AssignedSlot != nil && *r.AssignedSlot == slot
}

// SameDate reports whether the requested date falls on the given day.
func (r *DemoRequest) SameDate(day time.Time) bool {
	y1, m1, d1 := r.DemoDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type PaginatedDemoRequestEntity = entity.Pagination[DemoRequest]
