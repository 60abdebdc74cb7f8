package entity

import (
	"time"

	"github.com/lib/pq"
)

// Team is a fixed kitchen crew capable of fulfilling demo requests. Teams are
// configured by operations; the scheduling engine treats them as immutable
// apart from roster edits.
type Team struct {
	ID        int            `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Members   pq.StringArray `db:"members" json:"members"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
