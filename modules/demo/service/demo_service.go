package service

import (
	"context"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/queue"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/repository"
	notifDto "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/dto"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DemoService interface {
	Create(ctx context.Context, req *dto.CreateDemoRequest) (*entity.DemoRequest, *errors.AppError)
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedDemoRequestEntity, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDemoRequest) (*entity.DemoRequest, *errors.AppError)
	GetUnassignedPool(ctx context.Context, role, userName string) ([]entity.DemoRequest, *errors.AppError)
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleDemoRequest) (*entity.DemoRequest, *errors.AppError)
	Cancel(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError)
	Complete(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError)
}

type demoService struct {
	repo  repository.DemoRepository
	queue queue.Client
}

func NewDemoService(repo repository.DemoRepository, q queue.Client) DemoService {
	return &demoService{repo: repo, queue: q}
}

// Create registers a sales-intake demo request: status planned, no assignment.
func (s *demoService) Create(ctx context.Context, req *dto.CreateDemoRequest) (*entity.DemoRequest, *errors.AppError) {
	logger.Info("DemoService:Create:Start", "client", req.ClientName, "date", req.DemoDate)

	demoDate, err := time.Parse("2006-01-02", req.DemoDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "demo_date must be YYYY-MM-DD", err)
	}

	now := time.Now()
	demo := &entity.DemoRequest{
		ClientName:   req.ClientName,
		ClientMobile: req.ClientMobile,
		DemoDate:     demoDate,
		DemoTime:     req.DemoTime,
		Status:       entity.StatusPlanned,
		Assignee:     req.Assignee,
		Recipes:      pq.StringArray(req.Recipes),
		Notes:        req.Notes,
		BaseEntity: coreEntity.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Create(ctx, demo); err != nil {
		logger.Error("DemoService:Create:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create demo request", err)
	}
	return demo, nil
}

func (s *demoService) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedDemoRequestEntity, *errors.AppError) {
	page, err := s.repo.List(ctx, p)
	if err != nil {
		logger.Error("DemoService:List:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list demo requests", err)
	}
	return page, nil
}

func (s *demoService) GetByID(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError) {
	demo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.New(errors.ErrNotFound, "demo request not found")
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get demo request", err)
	}
	return demo, nil
}

func (s *demoService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDemoRequest) (*entity.DemoRequest, *errors.AppError) {
	demo, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.ClientName != nil {
		demo.ClientName = *req.ClientName
	}
	if req.ClientMobile != nil {
		demo.ClientMobile = *req.ClientMobile
	}
	if req.DemoTime != nil {
		demo.DemoTime = *req.DemoTime
	}
	if req.Recipes != nil {
		demo.Recipes = pq.StringArray(*req.Recipes)
	}
	if req.Notes != nil {
		demo.Notes = *req.Notes
	}
	if req.MediaLink != nil {
		demo.MediaLink = *req.MediaLink
	}
	demo.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, demo); err != nil {
		if errors.IsCode(err, errors.ErrVersionConflict) {
			return nil, errors.New(errors.ErrVersionConflict, "demo request was modified concurrently")
		}
		logger.Error("DemoService:Update:Upsert:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update demo request", err)
	}
	return demo, nil
}

// GetUnassignedPool fetches the authoritative collection and applies the
// role-filtered eligibility rules for the calling user.
func (s *demoService) GetUnassignedPool(ctx context.Context, role, userName string) ([]entity.DemoRequest, *errors.AppError) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("DemoService:GetUnassignedPool:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch demo requests", err)
	}
	return UnassignedPool(requests, role, userName), nil
}

// Reschedule is the external lifecycle driver for planned -> rescheduled. It
// clears the old grid cell before flipping the status, so a rescheduled demo
// always re-enters the unassigned pool.
func (s *demoService) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleDemoRequest) (*entity.DemoRequest, *errors.AppError) {
	logger.Info("DemoService:Reschedule:Start", "id", id, "date", req.DemoDate)

	demo, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	newDate, err := time.Parse("2006-01-02", req.DemoDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "demo_date must be YYYY-MM-DD", err)
	}

	if !demo.Status.CanTransition(entity.StatusRescheduled) {
		return nil, errors.New(errors.ErrInvalidInput,
			"demo request cannot be rescheduled from status "+string(demo.Status))
	}

	demo.ClearAssignment()
	demo.Status = entity.StatusRescheduled
	demo.DemoDate = newDate
	if req.DemoTime != "" {
		demo.DemoTime = req.DemoTime
	}
	demo.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, demo); err != nil {
		return nil, s.upsertError("Reschedule", id, err)
	}
	return demo, nil
}

// Cancel marks the demo cancelled. Assignment fields are left untouched: an
// assigned cancelled demo keeps blocking its cell until it is rescheduled.
func (s *demoService) Cancel(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError) {
	logger.Info("DemoService:Cancel:Start", "id", id)

	demo, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if !demo.Status.CanTransition(entity.StatusCancelled) {
		return nil, errors.New(errors.ErrInvalidInput,
			"demo request cannot be cancelled from status "+string(demo.Status))
	}

	demo.Status = entity.StatusCancelled
	demo.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, demo); err != nil {
		return nil, s.upsertError("Cancel", id, err)
	}

	if err := s.queue.Enqueue(constants.TaskTypeDemoCancelled, notifDto.DemoCancelledPayload{
		RequestID:  demo.ID,
		ClientName: demo.ClientName,
	}); err != nil {
		logger.Warn("DemoService:Cancel:Enqueue:Error", "error", err, "id", id)
	}
	return demo, nil
}

// Complete marks the demo as given. Legal from any known status; assignment
// fields are retained for reporting.
func (s *demoService) Complete(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, *errors.AppError) {
	logger.Info("DemoService:Complete:Start", "id", id)

	demo, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if !demo.Status.CanTransition(entity.StatusGiven) {
		return nil, errors.New(errors.ErrInvalidInput,
			"demo request cannot be completed from status "+string(demo.Status))
	}

	demo.Status = entity.StatusGiven
	demo.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, demo); err != nil {
		return nil, s.upsertError("Complete", id, err)
	}
	return demo, nil
}

func (s *demoService) upsertError(op string, id uuid.UUID, err error) *errors.AppError {
	if errors.IsCode(err, errors.ErrVersionConflict) {
		return errors.New(errors.ErrVersionConflict, "demo request was modified concurrently")
	}
	logger.Error("DemoService:"+op+":Upsert:Error", "error", err, "id", id)
	return errors.NewAppError(errors.ErrUpdateFailed, "failed to update demo request", err)
}
