package position

type CreatePositionRequest struct {
	Title       string  `json:"title" binding:"required,max=120"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type UpdatePositionRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=120"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type PositionResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}
