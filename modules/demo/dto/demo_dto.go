package dto

type CreateDemoRequest struct {
	ClientName   string   `json:"client_name" validate:"required"`
	ClientMobile string   `json:"client_mobile"`
	DemoDate     string   `json:"demo_date" validate:"required"` // YYYY-MM-DD
	DemoTime     string   `json:"demo_time"`                     // e.g. "10:00 AM", optional
	Assignee     string   `json:"assignee"`
	Recipes      []string `json:"recipes"`
	Notes        string   `json:"notes"`
}

type UpdateDemoRequest struct {
	ClientName   *string   `json:"client_name"`
	ClientMobile *string   `json:"client_mobile"`
	DemoTime     *string   `json:"demo_time"`
	Recipes      *[]string `json:"recipes"`
	Notes        *string   `json:"notes"`
	MediaLink    *string   `json:"media_link"`
}

type RescheduleDemoRequest struct {
	DemoDate string `json:"demo_date" validate:"required"` // YYYY-MM-DD
	DemoTime string `json:"demo_time"`
}
