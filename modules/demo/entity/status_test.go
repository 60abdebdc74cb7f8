package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoStatusKnown(t *testing.T) {
	for _, s := range []DemoStatus{StatusPlanned, StatusRescheduled, StatusCancelled, StatusGiven} {
		assert.True(t, s.Known(), "%s", s)
	}
	assert.False(t, DemoStatus("archived").Known())
	assert.False(t, DemoStatus("").Known())
}

func TestDemoStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to DemoStatus
		ok       bool
	}{
		{StatusPlanned, StatusRescheduled, true},
		{StatusPlanned, StatusCancelled, true},
		{StatusPlanned, StatusGiven, true},
		{StatusRescheduled, StatusPlanned, true},
		{StatusRescheduled, StatusCancelled, true},
		{StatusRescheduled, StatusGiven, true},
		{StatusCancelled, StatusGiven, true},
		{StatusGiven, StatusGiven, true},

		{StatusCancelled, StatusPlanned, false},
		{StatusCancelled, StatusRescheduled, false},
		{StatusGiven, StatusPlanned, false},
		{StatusGiven, StatusRescheduled, false},
		{StatusGiven, StatusCancelled, false},
		{StatusPlanned, DemoStatus("archived"), false},
		{DemoStatus("archived"), StatusGiven, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestDemoRequestAssignment(t *testing.T) {
	var req DemoRequest
	assert.False(t, req.Assigned())
	assert.False(t, req.OccupiesCell(1, "09:00 AM - 11:00 AM"))

	req.SetAssignment(1, "09:00 AM - 11:00 AM", []string{"Manish"})
	assert.True(t, req.Assigned())
	assert.True(t, req.OccupiesCell(1, "09:00 AM - 11:00 AM"))
	assert.False(t, req.OccupiesCell(2, "09:00 AM - 11:00 AM"))
	assert.False(t, req.OccupiesCell(1, "01:00 PM - 03:00 PM"))

	req.ClearAssignment()
	assert.False(t, req.Assigned())
	assert.Nil(t, req.AssignedTeam)
	assert.Nil(t, req.AssignedSlot)
	assert.Nil(t, req.AssignedMembers)
}

func TestSetAssignmentCopiesMembers(t *testing.T) {
	members := []string{"Manish", "Rahul"}
	var req DemoRequest
	req.SetAssignment(1, "09:00 AM - 11:00 AM", members)

	members[0] = "changed"
	assert.Equal(t, "Manish", req.AssignedMembers[0])
}
