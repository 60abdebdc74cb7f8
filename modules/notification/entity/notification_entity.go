package entity

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
)

type Notification struct {
	// Role targets a whole role group, e.g. every culinary_team member.
	Role    string `db:"role" json:"role"`
	Title   string `db:"title" json:"title"`
	Message string `db:"message" json:"message"`
	Type    string `db:"type" json:"type"`
	IsRead  bool   `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
