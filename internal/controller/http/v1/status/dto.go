package status

type CreateRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
	Color       string `json:"color" form:"color" validate:"required,hexcolor"`
}
