package repository

import (
	"context"
	"database/sql"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	apperrors "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"

	"github.com/google/uuid"
)

// DemoRepository is the persistence collaborator for demo requests. GetAll and
// Upsert are the two calls the scheduling engine depends on; both are
// best-effort remote calls with last-write-wins semantics beyond the version
// check.
type DemoRepository interface {
	GetAll(ctx context.Context) ([]entity.DemoRequest, error)
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedDemoRequestEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, error)
	Create(ctx context.Context, req *entity.DemoRequest) error
	Upsert(ctx context.Context, req *entity.DemoRequest) error
}

type demoRepository struct {
	db database.IDatabase
}

func NewDemoRepository(db database.IDatabase) DemoRepository {
	return &demoRepository{db: db}
}

const demoColumns = `
	id, client_name, client_mobile, demo_date, demo_time, status, assignee,
	recipes, notes, media_link, assigned_team, assigned_slot, assigned_members,
	version, created_at, updated_at
`

// GetAll returns the full request collection. The scheduling engine works
// against this snapshot; eligibility and grid lookups are computed in memory.
func (r *demoRepository) GetAll(ctx context.Context) ([]entity.DemoRequest, error) {
	query := `SELECT ` + demoColumns + ` FROM demo_requests ORDER BY demo_date ASC, created_at ASC`
	var requests []entity.DemoRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *demoRepository) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedDemoRequestEntity, error) {
	where := ``
	args := []any{}
	if p.Search != "" {
		where = `WHERE client_name ILIKE $3 OR assignee ILIKE $3`
		args = append(args, "%"+p.Search+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM demo_requests ` + where
	countArgs := args
	if where != "" {
		// count query has no limit/offset, search is $1 there
		countQuery = `SELECT COUNT(*) FROM demo_requests WHERE client_name ILIKE $1 OR assignee ILIKE $1`
	}
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, err
	}

	query := `SELECT ` + demoColumns + ` FROM demo_requests ` + where + `
		ORDER BY demo_date ASC, created_at ASC
		LIMIT $1 OFFSET $2`
	queryArgs := append([]any{p.PageSize, p.Offset()}, args...)

	var requests []entity.DemoRequest
	if err := r.db.SelectContext(ctx, &requests, query, queryArgs...); err != nil {
		return nil, err
	}

	return coreEntity.NewPagination(requests, total, p.PageNumber, p.PageSize), nil
}

func (r *demoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DemoRequest, error) {
	query := `SELECT ` + demoColumns + ` FROM demo_requests WHERE id = $1`
	var req entity.DemoRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.New(apperrors.ErrNotFound, "demo request not found")
		}
		return nil, err
	}
	return &req, nil
}

func (r *demoRepository) Create(ctx context.Context, req *entity.DemoRequest) error {
	query := `
		INSERT INTO demo_requests (
			id, client_name, client_mobile, demo_date, demo_time, status,
			assignee, recipes, notes, media_link, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12)
	`
	return r.db.ExecContext(ctx, query,
		req.ID, req.ClientName, req.ClientMobile, req.DemoDate, req.DemoTime,
		req.Status, req.Assignee, req.Recipes, req.Notes, req.MediaLink,
		req.CreatedAt, req.UpdatedAt,
	)
}

// Upsert writes the full mutated request back, guarded by the version token.
// A stale version returns ErrVersionConflict so the caller can re-fetch the
// authoritative collection instead of clobbering a concurrent placement.
func (r *demoRepository) Upsert(ctx context.Context, req *entity.DemoRequest) error {
	query := `
		UPDATE demo_requests SET
			client_name = :client_name,
			client_mobile = :client_mobile,
			demo_date = :demo_date,
			demo_time = :demo_time,
			status = :status,
			assignee = :assignee,
			recipes = :recipes,
			notes = :notes,
			media_link = :media_link,
			assigned_team = :assigned_team,
			assigned_slot = :assigned_slot,
			assigned_members = :assigned_members,
			version = version + 1,
			updated_at = :updated_at
		WHERE id = :id AND version = :version
	`
	res, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM demo_requests WHERE id = $1)`, req.ID); err != nil {
			return err
		}
		if exists {
			return apperrors.New(apperrors.ErrVersionConflict, "demo request was modified concurrently")
		}
		return apperrors.New(apperrors.ErrNotFound, "demo request not found")
	}
	req.Version++
	return nil
}
