package repository

import (
	"context"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/entity"
)

type RecipeRepository interface {
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedRecipeEntity, error)
}

type recipeRepository struct {
	db database.IDatabase
}

func NewRecipeRepository(db database.IDatabase) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedRecipeEntity, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM recipes`
	countArgs := []any{}
	if p.Search != "" {
		countQuery += ` WHERE name ILIKE $1 OR category ILIKE $1`
		countArgs = append(countArgs, "%"+p.Search+"%")
	}
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, err
	}

	query := `SELECT id, name, category, media_link, created_at, updated_at FROM recipes`
	args := []any{}
	if p.Search != "" {
		query += ` WHERE name ILIKE $3 OR category ILIKE $3`
		args = append(args, "%"+p.Search+"%")
	}
	query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`

	var recipes []entity.Recipe
	queryArgs := append([]any{p.PageSize, p.Offset()}, args...)
	if err := r.db.SelectContext(ctx, &recipes, query, queryArgs...); err != nil {
		return nil, err
	}

	return coreEntity.NewPagination(recipes, total, p.PageNumber, p.PageSize), nil
}
