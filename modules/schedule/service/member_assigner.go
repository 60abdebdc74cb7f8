package service

import (
	"sync"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	teamEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/entity"
)

// MemberAssigner resolves which team members are attached to a demo at the
// moment of placement. The result is stored verbatim on the request, so later
// roster edits never rewrite who actually cooked.
type MemberAssigner interface {
	Assign(team *teamEntity.Team) []string
	// Reset clears any rotation state. Called on operational boundaries
	// (start of day); never automatic.
	Reset()
}

// NewMemberAssigner selects a policy by its config name. Unknown modes fall
// back to round-robin.
func NewMemberAssigner(mode string) MemberAssigner {
	if mode == constants.MemberAssignFullRoster {
		return &FullRosterAssigner{}
	}
	return NewRoundRobinAssigner()
}

// RoundRobinAssigner cycles through each team's roster, one member per
// placement. Counters are keyed by team ID and survive across placements
// until Reset.
type RoundRobinAssigner struct {
	mu       sync.Mutex
	counters map[int]int
}

func NewRoundRobinAssigner() *RoundRobinAssigner {
	return &RoundRobinAssigner{counters: make(map[int]int)}
}

func (a *RoundRobinAssigner) Assign(team *teamEntity.Team) []string {
	if len(team.Members) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	idx := a.counters[team.ID] % len(team.Members)
	a.counters[team.ID]++
	return []string{team.Members[idx]}
}

func (a *RoundRobinAssigner) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counters = make(map[int]int)
}

// FullRosterAssigner attaches a copy of the entire live roster. Stateless.
type FullRosterAssigner struct{}

func (a *FullRosterAssigner) Assign(team *teamEntity.Team) []string {
	members := make([]string, len(team.Members))
	copy(members, team.Members)
	return members
}

func (a *FullRosterAssigner) Reset() {}
