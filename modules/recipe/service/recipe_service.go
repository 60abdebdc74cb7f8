package service

import (
	"context"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/repository"
)

type RecipeService interface {
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedRecipeEntity, *errors.AppError)
}

type recipeService struct {
	repo repository.RecipeRepository
}

func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

func (s *recipeService) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedRecipeEntity, *errors.AppError) {
	page, err := s.repo.List(ctx, p)
	if err != nil {
		logger.Error("RecipeService:List:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list recipes", err)
	}
	return page, nil
}
