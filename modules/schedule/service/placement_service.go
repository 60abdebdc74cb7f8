package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/queue"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	demoEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"
	demoRepository "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/repository"
	notifDto "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/entity"
	teamRepository "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/repository"
)

// ScheduleService is the placement engine: it validates and executes a
// drag-drop of a demo request onto a team/slot cell, and builds the grid view.
type ScheduleService interface {
	Place(ctx context.Context, req *dto.PlaceRequest, actor *utils.TokenClaims) (*demoEntity.DemoRequest, *errors.AppError)
	Grid(ctx context.Context) (*dto.GridResponse, *errors.AppError)
	ResetRotation()
}

type scheduleService struct {
	demoRepo demoRepository.DemoRepository
	teamRepo teamRepository.TeamRepository
	assigner MemberAssigner
	queue    queue.Client
}

func NewScheduleService(
	demoRepo demoRepository.DemoRepository,
	teamRepo teamRepository.TeamRepository,
	assigner MemberAssigner,
	q queue.Client,
) ScheduleService {
	return &scheduleService{
		demoRepo: demoRepo,
		teamRepo: teamRepo,
		assigner: assigner,
		queue:    q,
	}
}

// Place validates and executes a candidate placement. Checks run in a fixed
// order and the first failure wins, with no partial mutation:
//
//	role -> draggability -> occupancy -> time compatibility
//
// On success the request's assignment fields are set, a rescheduled demo
// flips back to planned, members are resolved, and the mutated request is
// handed to the persistence collaborator. A persist failure is returned with
// the mutated request: the placement was accepted by the business rules, and
// the caller retries the persist without re-validating.
func (s *scheduleService) Place(ctx context.Context, req *dto.PlaceRequest, actor *utils.TokenClaims) (*demoEntity.DemoRequest, *errors.AppError) {
	logger.Info("ScheduleService:Place:Start",
		"request_id", req.RequestID, "team_id", req.TeamID, "slot", req.Slot, "actor", actor.Name)

	// 1. Only the head chef places demos.
	if !strings.EqualFold(actor.Role, constants.RoleHeadChef) {
		return nil, errors.New(errors.ErrForbidden, "only the head chef can place demo requests")
	}

	if !entity.ValidSlot(req.Slot) {
		return nil, errors.New(errors.ErrInvalidInput, "unknown time slot "+req.Slot)
	}

	team, err := s.teamRepo.GetByID(ctx, req.TeamID)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.New(errors.ErrNotFound, "team not found")
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load team", err)
	}

	requests, err := s.demoRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch demo requests", err)
	}

	var demo *demoEntity.DemoRequest
	for i := range requests {
		if requests[i].ID == req.RequestID {
			demo = &requests[i]
			break
		}
	}
	if demo == nil {
		return nil, errors.New(errors.ErrNotFound, "demo request not found")
	}

	// 2. Draggability: rescheduled demos any day, planned demos only on their
	// demo date. Cancelled, given and unrecognized statuses never move.
	if appErr := draggable(demo); appErr != nil {
		return nil, appErr
	}

	// 3. Occupancy: no displacement, no queueing.
	occupant, appErr := Occupant(requests, req.TeamID, req.Slot)
	if appErr != nil {
		logger.Error("ScheduleService:Place:GridConflict", "error", appErr)
		return nil, appErr
	}
	if occupant != nil {
		return nil, errors.New(errors.ErrSlotOccupied,
			fmt.Sprintf("slot %q of team %q already holds %q", req.Slot, team.Name, occupant.ClientName))
	}

	// 4. Time compatibility, with the requested time and window in the
	// message so a human can reconcile them.
	if !IsTimeCompatible(demo.DemoTime, req.Slot) {
		return nil, errors.New(errors.ErrTimeConflict,
			fmt.Sprintf("requested time %q does not fit slot %q", demo.DemoTime, req.Slot))
	}

	members := s.assigner.Assign(team)
	demo.SetAssignment(req.TeamID, req.Slot, members)
	if demo.Status == demoEntity.StatusRescheduled {
		demo.Status = demoEntity.StatusPlanned
	}
	demo.UpdatedAt = time.Now()

	if err := s.demoRepo.Upsert(ctx, demo); err != nil {
		if errors.IsCode(err, errors.ErrVersionConflict) {
			return demo, errors.New(errors.ErrVersionConflict, "demo request was placed or modified concurrently")
		}
		logger.Error("ScheduleService:Place:Upsert:Error", "error", err, "request_id", demo.ID)
		return demo, errors.NewAppError(errors.ErrPersistFailed, "placement accepted but not persisted", err)
	}

	if err := s.queue.Enqueue(constants.TaskTypeDemoPlaced, notifDto.DemoPlacedPayload{
		RequestID:  demo.ID,
		ClientName: demo.ClientName,
		TeamID:     team.ID,
		TeamName:   team.Name,
		Slot:       req.Slot,
		Members:    members,
		PlacedBy:   actor.Name,
	}); err != nil {
		logger.Warn("ScheduleService:Place:Enqueue:Error", "error", err, "request_id", demo.ID)
	}

	logger.Info("ScheduleService:Place:Success",
		"request_id", demo.ID, "team_id", team.ID, "slot", req.Slot, "members", members)
	return demo, nil
}

func draggable(demo *demoEntity.DemoRequest) *errors.AppError {
	switch demo.Status {
	case demoEntity.StatusRescheduled:
		return nil
	case demoEntity.StatusPlanned:
		if demo.SameDate(time.Now()) {
			return nil
		}
		return errors.New(errors.ErrNotDraggable, "planned demos can only be placed on their demo date")
	case demoEntity.StatusCancelled, demoEntity.StatusGiven:
		return errors.New(errors.ErrNotDraggable, "a "+string(demo.Status)+" demo cannot be placed")
	default:
		return errors.New(errors.ErrNotDraggable, "demo has unrecognized status "+string(demo.Status))
	}
}

// Grid materializes the team/slot board from the current request collection.
// The grid is derived on every query; there is no separate assignment record
// to keep consistent.
func (s *scheduleService) Grid(ctx context.Context) (*dto.GridResponse, *errors.AppError) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load teams", err)
	}
	requests, err := s.demoRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch demo requests", err)
	}

	resp := &dto.GridResponse{
		Slots: entity.TimeSlots,
		Teams: make([]dto.GridTeam, 0, len(teams)),
	}
	for _, team := range teams {
		gt := dto.GridTeam{
			TeamID:   team.ID,
			TeamName: team.Name,
			Members:  team.Members,
			Cells:    make([]dto.GridCell, 0, len(entity.TimeSlots)),
		}
		for _, slot := range entity.TimeSlots {
			occupant, appErr := Occupant(requests, team.ID, slot)
			if appErr != nil {
				logger.Error("ScheduleService:Grid:GridConflict", "error", appErr)
				return nil, appErr
			}
			cell := dto.GridCell{Slot: slot, Request: occupant}
			if occupant != nil && occupant.Status == demoEntity.StatusCancelled {
				cell.Cancelled = true
			}
			gt.Cells = append(gt.Cells, cell)
		}
		resp.Teams = append(resp.Teams, gt)
	}
	return resp, nil
}

// ResetRotation clears the round-robin counters. Exposed for the start-of-day
// operational reset.
func (s *scheduleService) ResetRotation() {
	s.assigner.Reset()
	logger.Info("ScheduleService:ResetRotation:Done")
}
