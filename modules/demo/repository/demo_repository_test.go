package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	apperrors "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDatabase adapts a sqlmock-backed sqlx.DB to the database.IDatabase
// surface the repository depends on.
type mockDatabase struct {
	x *sqlx.DB
}

func (m *mockDatabase) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := m.x.ExecContext(ctx, query, args...)
	return err
}

func (m *mockDatabase) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return m.x.GetContext(ctx, dest, query, args...)
}

func (m *mockDatabase) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return m.x.SelectContext(ctx, dest, query, args...)
}

func (m *mockDatabase) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return m.x.QueryRowContext(ctx, query, args...)
}

func (m *mockDatabase) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return m.x.QueryContext(ctx, query, args...)
}

func (m *mockDatabase) NamedQueryContext(ctx context.Context, query string, arg any) (*sqlx.Rows, error) {
	return m.x.NamedQueryContext(ctx, query, arg)
}

func (m *mockDatabase) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return m.x.NamedExecContext(ctx, query, arg)
}

func (m *mockDatabase) SQLx() *sqlx.DB {
	return m.x
}

func newMockRepo(t *testing.T) (DemoRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDemoRepository(&mockDatabase{x: sqlx.NewDb(db, "sqlmock")}), mock
}

var demoRows = []string{
	"id", "client_name", "client_mobile", "demo_date", "demo_time", "status",
	"assignee", "recipes", "notes", "media_link", "assigned_team",
	"assigned_slot", "assigned_members", "version", "created_at", "updated_at",
}

func TestGetAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM demo_requests ORDER BY demo_date ASC").
		WillReturnRows(sqlmock.NewRows(demoRows).AddRow(
			id, "Acme Co.", "9876543210", now, "10:00 AM", "planned",
			"Priya", []byte(`{Paella}`), "", "", nil, nil, nil, 0, now, now,
		))

	requests, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, id, requests[0].ID)
	assert.Equal(t, entity.StatusPlanned, requests[0].Status)
	assert.Equal(t, []string{"Paella"}, []string(requests[0].Recipes))
	assert.False(t, requests[0].Assigned())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM demo_requests WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestUpsertBumpsVersion(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &entity.DemoRequest{Status: entity.StatusPlanned, Version: 3}
	req.ID = uuid.New()
	mock.ExpectExec("UPDATE demo_requests SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, req.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVersionConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &entity.DemoRequest{Status: entity.StatusPlanned, Version: 3}
	req.ID = uuid.New()
	mock.ExpectExec("UPDATE demo_requests SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(req.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.Upsert(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrVersionConflict))
	// version stays untouched so the caller re-fetches before retrying
	assert.Equal(t, 3, req.Version)
}

func TestUpsertMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &entity.DemoRequest{Status: entity.StatusPlanned}
	req.ID = uuid.New()
	mock.ExpectExec("UPDATE demo_requests SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(req.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.Upsert(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
