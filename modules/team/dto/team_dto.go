package dto

type UpdateMembersRequest struct {
	Members []string `json:"members" validate:"required,min=1"`
}
