package entity

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
)

// User is a platform account. Name doubles as the identity the scheduling
// layer compares against demo assignees, case-insensitively.
type User struct {
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	entity.BaseEntity
}
