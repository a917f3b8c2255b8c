package request

type CreateReelRequest struct {
	VideoURL    string   `json:"video_url" validate:"required,max=2048"`
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
}

type UpdateReelRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
