package department

import (
	"net/http"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/entity"
)

type Department interface {
	Departments() []entity.Department
}

type Controller struct {
	department Department
}

func NewController(department Department) *Controller {
	return &Controller{department}
}

// GetList returns the fixed department reference list.
func (uc Controller) GetList(c *web.Context) error {
	list := uc.department.Departments()

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}
