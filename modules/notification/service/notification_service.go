package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) GetByRole(ctx context.Context, role string, p params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError) {
	page, err := s.repo.GetByRole(ctx, role, p)
	if err != nil {
		logger.Error("NotificationService:GetByRole:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list notifications", err)
	}
	return page, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, role string) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, role); err != nil {
		logger.Error("NotificationService:MarkAllAsRead:Repo:Error", "error", err)
		return errors.NewAppError(errors.ErrUpdateFailed, "failed to mark notifications as read", err)
	}
	return nil
}

// HandleDemoPlaced is the asynq worker for placement notifications: it fans
// the event out to the culinary team and the presales owner role.
func (s *NotificationService) HandleDemoPlaced(ctx context.Context, task *asynq.Task) error {
	var payload dto.DemoPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", constants.TaskTypeDemoPlaced, err)
	}

	message := fmt.Sprintf("Demo for %s placed with %s at %s (crew: %s), by %s",
		payload.ClientName, payload.TeamName, payload.Slot,
		strings.Join(payload.Members, ", "), payload.PlacedBy)

	for _, role := range []string{constants.RoleCulinaryTeam, constants.RolePresales} {
		if err := s.create(ctx, role, "Demo scheduled", message, constants.TaskTypeDemoPlaced); err != nil {
			return err
		}
	}
	logger.Info("NotificationService:HandleDemoPlaced:Done", "request_id", payload.RequestID)
	return nil
}

// HandleDemoCancelled notifies the kitchen that a scheduled demo was
// withdrawn.
func (s *NotificationService) HandleDemoCancelled(ctx context.Context, task *asynq.Task) error {
	var payload dto.DemoCancelledPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", constants.TaskTypeDemoCancelled, err)
	}

	message := fmt.Sprintf("Demo for %s was cancelled", payload.ClientName)
	if err := s.create(ctx, constants.RoleCulinaryTeam, "Demo cancelled", message, constants.TaskTypeDemoCancelled); err != nil {
		return err
	}
	logger.Info("NotificationService:HandleDemoCancelled:Done", "request_id", payload.RequestID)
	return nil
}

func (s *NotificationService) create(ctx context.Context, role, title, message, typ string) error {
	now := time.Now()
	return s.repo.Create(ctx, &entity.Notification{
		Role:    role,
		Title:   title,
		Message: message,
		Type:    typ,
		BaseEntity: coreEntity.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
}

// BuildMux registers the notification task handlers for the asynq worker.
func (s *NotificationService) BuildMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskTypeDemoPlaced, s.HandleDemoPlaced)
	mux.HandleFunc(constants.TaskTypeDemoCancelled, s.HandleDemoCancelled)
	return mux
}
