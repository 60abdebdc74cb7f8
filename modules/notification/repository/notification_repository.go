package repository

import (
	"context"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *entity.Notification) error
	GetByRole(ctx context.Context, role string, p params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAllAsRead(ctx context.Context, role string) error
}

type notificationRepository struct {
	db database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, role, title, message, type, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, $7)
	`
	return r.db.ExecContext(ctx, query,
		notif.ID, notif.Role, notif.Title, notif.Message, notif.Type,
		notif.CreatedAt, notif.UpdatedAt,
	)
}

func (r *notificationRepository) GetByRole(ctx context.Context, role string, p params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM notifications WHERE LOWER(role) = LOWER($1)`, role); err != nil {
		return nil, err
	}

	query := `
		SELECT id, role, title, message, type, is_read, created_at, updated_at
		FROM notifications
		WHERE LOWER(role) = LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var notifs []entity.Notification
	if err := r.db.SelectContext(ctx, &notifs, query, role, p.PageSize, p.Offset()); err != nil {
		return nil, err
	}
	return coreEntity.NewPagination(notifs, total, p.PageNumber, p.PageSize), nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, role string) error {
	return r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE LOWER(role) = LOWER($1)`, role)
}
