package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	apperrors "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/entity"

	"github.com/lib/pq"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]entity.Team, error)
	GetByID(ctx context.Context, id int) (*entity.Team, error)
	UpdateMembers(ctx context.Context, id int, members []string) (*entity.Team, error)
}

type teamRepository struct {
	db database.IDatabase
}

func NewTeamRepository(db database.IDatabase) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetAll(ctx context.Context) ([]entity.Team, error) {
	query := `SELECT id, name, members, created_at, updated_at FROM teams ORDER BY id ASC`
	var teams []entity.Team
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*entity.Team, error) {
	query := `SELECT id, name, members, created_at, updated_at FROM teams WHERE id = $1`
	var team entity.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.New(apperrors.ErrNotFound, "team not found")
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) UpdateMembers(ctx context.Context, id int, members []string) (*entity.Team, error) {
	query := `UPDATE teams SET members = $2, updated_at = $3 WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id, pq.StringArray(members), time.Now()); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
