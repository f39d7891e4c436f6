package status

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
	status Status
}

func NewController(status Status) *Controller {
	return &Controller{status}
}

func (uc Controller) GetList(c *web.Context) error {
	var search string
	if s, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		search = *s
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list := report.FilterStatuses(uc.status.Statuses(), search)

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

	detail, ok := uc.status.GetStatusByID(id)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "status %s", id), http.StatusNotFound))
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

	response := uc.status.AddStatus(entity.Status{
		Name:        strings.TrimSpace(request.Name),
		Description: request.Description,
		Color:       request.Color,
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

	var request store.StatusPatch

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return c.RespondError(web.NewRequestError(errors.New("name cannot be empty"), http.StatusBadRequest))
	}

	found := uc.status.UpdateStatus(id, request)

	var data interface{}
	if found {
		data, _ = uc.status.GetStatusByID(id)
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

	found := uc.status.DeleteStatus(id)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"found":  found,
		"status": true,
	}, http.StatusOK)
}
