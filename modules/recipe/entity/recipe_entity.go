package entity

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
)

// Recipe is a catalog entry. The catalog is read-only from the scheduler's
// perspective; presales attach recipe names to demo requests from it.
type Recipe struct {
	Name      string `db:"name" json:"name"`
	Category  string `db:"category" json:"category"`
	MediaLink string `db:"media_link" json:"media_link"`
	entity.BaseEntity
}

type PaginatedRecipeEntity = entity.Pagination[Recipe]
