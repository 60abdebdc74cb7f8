package service

import (
	"testing"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	teamEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestRoundRobinAssignerCycles(t *testing.T) {
	assigner := NewRoundRobinAssigner()
	team := &teamEntity.Team{ID: 1, Name: "Team 1", Members: pq.StringArray{"Manish", "Rahul", "Pooja"}}

	assert.Equal(t, []string{"Manish"}, assigner.Assign(team))
	assert.Equal(t, []string{"Rahul"}, assigner.Assign(team))
	assert.Equal(t, []string{"Pooja"}, assigner.Assign(team))
	// wraps around
	assert.Equal(t, []string{"Manish"}, assigner.Assign(team))
}

func TestRoundRobinAssignerPerTeamCounters(t *testing.T) {
	assigner := NewRoundRobinAssigner()
	team1 := &teamEntity.Team{ID: 1, Members: pq.StringArray{"Manish", "Rahul"}}
	team2 := &teamEntity.Team{ID: 2, Members: pq.StringArray{"Amit", "Kiran"}}

	assert.Equal(t, []string{"Manish"}, assigner.Assign(team1))
	// team 2 has its own counter
	assert.Equal(t, []string{"Amit"}, assigner.Assign(team2))
	assert.Equal(t, []string{"Rahul"}, assigner.Assign(team1))
	assert.Equal(t, []string{"Kiran"}, assigner.Assign(team2))
}

func TestRoundRobinAssignerReset(t *testing.T) {
	assigner := NewRoundRobinAssigner()
	team := &teamEntity.Team{ID: 1, Members: pq.StringArray{"Manish", "Rahul"}}

	assigner.Assign(team)
	assigner.Reset()
	assert.Equal(t, []string{"Manish"}, assigner.Assign(team))
}

func TestRoundRobinAssignerEmptyRoster(t *testing.T) {
	assigner := NewRoundRobinAssigner()
	assert.Nil(t, assigner.Assign(&teamEntity.Team{ID: 9}))
}

func TestFullRosterAssignerCopies(t *testing.T) {
	assigner := &FullRosterAssigner{}
	team := &teamEntity.Team{ID: 1, Members: pq.StringArray{"Manish", "Rahul"}}

	got := assigner.Assign(team)
	assert.Equal(t, []string{"Manish", "Rahul"}, got)

	// later roster edits must not alter what was assigned
	got[0] = "Someone Else"
	assert.Equal(t, "Manish", team.Members[0])
}

func TestNewMemberAssignerSelection(t *testing.T) {
	assert.IsType(t, &FullRosterAssigner{}, NewMemberAssigner(constants.MemberAssignFullRoster))
	assert.IsType(t, &RoundRobinAssigner{}, NewMemberAssigner(constants.MemberAssignRoundRobin))
	// unknown modes fall back to round-robin
	assert.IsType(t, &RoundRobinAssigner{}, NewMemberAssigner("something-else"))
}
