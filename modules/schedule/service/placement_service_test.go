package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	demoEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/dto"
	teamEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDemoRepo struct {
	requests  []demoEntity.DemoRequest
	upserted  *demoEntity.DemoRequest
	upsertErr error
}

func (f *fakeDemoRepo) GetAll(ctx context.Context) ([]demoEntity.DemoRequest, error) {
	out := make([]demoEntity.DemoRequest, len(f.requests))
	copy(out, f.requests)
	return out, nil
}

func (f *fakeDemoRepo) List(ctx context.Context, p params.QueryParams) (*demoEntity.PaginatedDemoRequestEntity, error) {
	return nil, nil
}

func (f *fakeDemoRepo) GetByID(ctx context.Context, id uuid.UUID) (*demoEntity.DemoRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			return &f.requests[i], nil
		}
	}
	return nil, errors.New(errors.ErrNotFound, "demo request not found")
}

func (f *fakeDemoRepo) Create(ctx context.Context, req *demoEntity.DemoRequest) error {
	f.requests = append(f.requests, *req)
	return nil
}

func (f *fakeDemoRepo) Upsert(ctx context.Context, req *demoEntity.DemoRequest) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = req
	for i := range f.requests {
		if f.requests[i].ID == req.ID {
			f.requests[i] = *req
		}
	}
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*teamEntity.Team
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]teamEntity.Team, error) {
	var out []teamEntity.Team
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*teamEntity.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, errors.New(errors.ErrNotFound, "team not found")
	}
	return team, nil
}

func (f *fakeTeamRepo) UpdateMembers(ctx context.Context, id int, members []string) (*teamEntity.Team, error) {
	return f.teams[id], nil
}

type fakeQueue struct {
	enqueued []string
}

func (f *fakeQueue) Enqueue(taskType string, payload any) error {
	f.enqueued = append(f.enqueued, taskType)
	return nil
}

func (f *fakeQueue) Close() error { return nil }

func headChef() *utils.TokenClaims {
	return &utils.TokenClaims{UserID: uuid.New(), Name: "Chef Ramesh", Role: constants.RoleHeadChef}
}

func demoRequest(client string, status demoEntity.DemoStatus, date time.Time, demoTime string) demoEntity.DemoRequest {
	return demoEntity.DemoRequest{
		ClientName: client,
		DemoDate:   date,
		DemoTime:   demoTime,
		Status:     status,
		Recipes:    pq.StringArray{"Paella"},
		BaseEntity: coreEntity.BaseEntity{ID: uuid.New()},
	}
}

func newTestService(demos ...demoEntity.DemoRequest) (*scheduleService, *fakeDemoRepo, *fakeQueue) {
	demoRepo := &fakeDemoRepo{requests: demos}
	teamRepo := &fakeTeamRepo{teams: map[int]*teamEntity.Team{
		1: {ID: 1, Name: "Team 1", Members: pq.StringArray{"Manish", "Rahul"}},
		2: {ID: 2, Name: "Team 2", Members: pq.StringArray{"Amit"}},
	}}
	q := &fakeQueue{}
	svc := NewScheduleService(demoRepo, teamRepo, NewRoundRobinAssigner(), q).(*scheduleService)
	return svc, demoRepo, q
}

const slotMorning = "09:00 AM - 11:00 AM"

func TestPlaceRequiresHeadChef(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, repo, _ := newTestService(demo)

	for _, role := range []string{constants.RoleSales, constants.RolePresales, constants.RoleCulinaryTeam} {
		actor := &utils.TokenClaims{Name: "someone", Role: role}
		_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
			RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
		}, actor)
		require.NotNil(t, appErr, "role %s", role)
		assert.Equal(t, errors.ErrForbidden, appErr.Code, "role %s", role)
	}
	assert.Nil(t, repo.upserted)
}

func TestPlaceRoleComparisonIsCaseInsensitive(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, _, _ := newTestService(demo)

	actor := &utils.TokenClaims{Name: "Chef", Role: "Head_Chef"}
	placed, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, actor)
	require.Nil(t, appErr)
	assert.True(t, placed.Assigned())
}

func TestPlaceUnknownSlot(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, _, _ := newTestService(demo)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: "08:00 AM - 09:00 AM",
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestPlaceTerminalStatusesNeverDraggable(t *testing.T) {
	// neither date nor team makes a cancelled or given demo placeable
	for _, status := range []demoEntity.DemoStatus{demoEntity.StatusCancelled, demoEntity.StatusGiven} {
		demo := demoRequest("Acme Co.", status, time.Now(), "")
		svc, repo, _ := newTestService(demo)

		_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
			RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
		}, headChef())
		require.NotNil(t, appErr, "status %s", status)
		assert.Equal(t, errors.ErrNotDraggable, appErr.Code, "status %s", status)
		assert.Nil(t, repo.upserted)
	}
}

func TestPlacePlannedOnlyOnDemoDate(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, tomorrow, "")
	svc, _, _ := newTestService(demo)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotDraggable, appErr.Code)
}

func TestPlaceRescheduledAnyDate(t *testing.T) {
	nextWeek := time.Now().Add(7 * 24 * time.Hour)
	demo := demoRequest("Acme Co.", demoEntity.StatusRescheduled, nextWeek, "")
	svc, _, _ := newTestService(demo)

	placed, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.Nil(t, appErr)
	// placing a rescheduled demo resets it to planned
	assert.Equal(t, demoEntity.StatusPlanned, placed.Status)
	assert.True(t, placed.Assigned())
}

func TestPlacePlannedKeepsStatus(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, _, _ := newTestService(demo)

	placed, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.Nil(t, appErr)
	assert.Equal(t, demoEntity.StatusPlanned, placed.Status)
}

func TestPlaceOccupiedCellRejected(t *testing.T) {
	occupantDemo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	occupantDemo.SetAssignment(1, slotMorning, []string{"Manish"})
	newcomer := demoRequest("Beta LLC", demoEntity.StatusPlanned, time.Now(), "")
	svc, repo, _ := newTestService(occupantDemo, newcomer)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: newcomer.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrSlotOccupied, appErr.Code)

	// the occupant's assignment is untouched and nothing was persisted
	assert.Nil(t, repo.upserted)
	still, _ := repo.GetByID(context.Background(), occupantDemo.ID)
	assert.True(t, still.OccupiesCell(1, slotMorning))
}

func TestPlaceTimeConflict(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "05:00 PM")
	svc, repo, _ := newTestService(demo)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrTimeConflict, appErr.Code)
	// the message carries both sides so a human can reconcile them
	assert.Contains(t, appErr.Message, "05:00 PM")
	assert.Contains(t, appErr.Message, slotMorning)
	assert.Nil(t, repo.upserted)
}

func TestPlaceSuccessAssignsMembersAndPersists(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "09:45 AM")
	svc, repo, q := newTestService(demo)

	placed, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.Nil(t, appErr)

	require.NotNil(t, repo.upserted)
	assert.True(t, placed.OccupiesCell(1, slotMorning))
	assert.Equal(t, pq.StringArray{"Manish"}, placed.AssignedMembers)
	assert.Equal(t, []string{constants.TaskTypeDemoPlaced}, q.enqueued)
}

func TestPlaceGridInjectivityAcrossPlacements(t *testing.T) {
	first := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	second := demoRequest("Beta LLC", demoEntity.StatusPlanned, time.Now(), "")
	svc, repo, _ := newTestService(first, second)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: first.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.Nil(t, appErr)

	// same cell now rejects; a different cell works
	_, appErr = svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: second.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrSlotOccupied, appErr.Code)

	_, appErr = svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: second.ID, TeamID: 2, Slot: slotMorning,
	}, headChef())
	require.Nil(t, appErr)

	// no two live requests share a cell
	seen := map[string]bool{}
	for _, req := range repo.requests {
		if !req.Assigned() || req.Status == demoEntity.StatusCancelled || req.Status == demoEntity.StatusGiven {
			continue
		}
		key := fmt.Sprintf("%d|%s", *req.AssignedTeam, *req.AssignedSlot)
		assert.False(t, seen[key], "cell occupied twice")
		seen[key] = true
	}
}

func TestPlacePersistFailureKeepsMutation(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, repo, q := newTestService(demo)
	repo.upsertErr = errors.New(errors.ErrInternalServer, "store unreachable")

	placed, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())

	// rejected-by-rule and accepted-but-not-persisted are distinct outcomes:
	// the mutated request comes back with the persistence error
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPersistFailed, appErr.Code)
	require.NotNil(t, placed)
	assert.True(t, placed.OccupiesCell(1, slotMorning))
	assert.Empty(t, q.enqueued)
}

func TestPlaceVersionConflictSurfaced(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.StatusPlanned, time.Now(), "")
	svc, repo, _ := newTestService(demo)
	repo.upsertErr = errors.New(errors.ErrVersionConflict, "stale")

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrVersionConflict, appErr.Code)
}

func TestPlaceUnknownStatusIsReadOnly(t *testing.T) {
	demo := demoRequest("Acme Co.", demoEntity.DemoStatus("archived"), time.Now(), "")
	svc, repo, _ := newTestService(demo)

	_, appErr := svc.Place(context.Background(), &dto.PlaceRequest{
		RequestID: demo.ID, TeamID: 1, Slot: slotMorning,
	}, headChef())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotDraggable, appErr.Code)
	assert.Nil(t, repo.upserted)
}

func TestGridMarksCancelledCells(t *testing.T) {
	cancelled := demoRequest("Acme Co.", demoEntity.StatusCancelled, time.Now(), "")
	cancelled.SetAssignment(1, slotMorning, []string{"Manish"})
	svc, _, _ := newTestService(cancelled)

	grid, appErr := svc.Grid(context.Background())
	require.Nil(t, appErr)

	for _, gt := range grid.Teams {
		if gt.TeamID != 1 {
			continue
		}
		for _, cell := range gt.Cells {
			if cell.Slot == slotMorning {
				require.NotNil(t, cell.Request)
				assert.True(t, cell.Cancelled)
			}
		}
	}
}
