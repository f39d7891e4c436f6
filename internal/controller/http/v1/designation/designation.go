package designation

import (
	"net/http"
	"reflect"
	"strings"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/report"
	"attendance/dashboard/internal/store"

	"github.com/pkg/errors"
)

type Controller struct {
	designation Designation
}

func NewController(designation Designation) *Controller {
	return &Controller{designation}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter report.DesignationFilter

	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = *search
	}
	if department, ok := c.GetQueryFunc(reflect.String, "department").(*string); ok {
		filter.Department = *department
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list := report.FilterDesignations(uc.designation.Designations(), filter)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, ok := uc.designation.GetDesignationByID(id)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "designation %s", id), http.StatusNotFound))
	}

	return c.Respond(map[string]interface{}{
		"data":   detail,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request CreateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}

	response := uc.designation.AddDesignation(entity.Designation{
		Name:        strings.TrimSpace(request.Name),
		Department:  strings.TrimSpace(request.Department),
		Description: request.Description,
	})

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request store.DesignationPatch

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if (request.Name != nil && strings.TrimSpace(*request.Name) == "") ||
		(request.Department != nil && strings.TrimSpace(*request.Department) == "") {
		return c.RespondError(web.NewRequestError(errors.New("name and department cannot be empty"), http.StatusBadRequest))
	}

	found := uc.designation.UpdateDesignation(id, request)

	var data interface{}
	if found {
		data, _ = uc.designation.GetDesignationByID(id)
	}

	return c.Respond(map[string]interface{}{
		"data":   data,
		"found":  found,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	found := uc.designation.DeleteDesignation(id)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"found":  found,
		"status": true,
	}, http.StatusOK)
}
