package request

type RestaurantRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,max=1000"`
}

type RestaurantUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}
