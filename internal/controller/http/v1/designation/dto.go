package designation

type CreateRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Department  string `json:"department" form:"department" validate:"required"`
	Description string `json:"description" form:"description"`
}
