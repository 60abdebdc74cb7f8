package service

import (
	"context"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/repository"
)

type TeamService interface {
	GetAll(ctx context.Context) ([]entity.Team, *errors.AppError)
	GetByID(ctx context.Context, id int) (*entity.Team, *errors.AppError)
	UpdateMembers(ctx context.Context, id int, members []string) (*entity.Team, *errors.AppError)
}

type teamService struct {
	repo repository.TeamRepository
}

func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) GetAll(ctx context.Context) ([]entity.Team, *errors.AppError) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("TeamService:GetAll:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list teams", err)
	}
	return teams, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*entity.Team, *errors.AppError) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.New(errors.ErrNotFound, "team not found")
		}
		logger.Error("TeamService:GetByID:Repo:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get team", err)
	}
	return team, nil
}

// UpdateMembers replaces a team's roster. Demos already placed keep the member
// list they were assigned with; roster edits never rewrite history.
func (s *teamService) UpdateMembers(ctx context.Context, id int, members []string) (*entity.Team, *errors.AppError) {
	logger.Info("TeamService:UpdateMembers:Start", "id", id, "members", len(members))

	if len(members) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "a team needs at least one member")
	}

	team, err := s.repo.UpdateMembers(ctx, id, members)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.New(errors.ErrNotFound, "team not found")
		}
		logger.Error("TeamService:UpdateMembers:Repo:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update team roster", err)
	}
	return team, nil
}
