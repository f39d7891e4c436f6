package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin.Context and collects query/param parsing failures so a
// handler can read every input first and validate once.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrs []string
	paramErrs []string
}

func NewContext(gc *gin.Context) *Context {
	return &Context{
		Context: gc,
		Ctx:     gc.Request.Context(),
	}
}

// GetQueryFunc parses the query value key as kind and returns a pointer to it
// (*int, *bool, *float64 or *string). It returns nil when the key is absent or
// empty; a malformed value is remembered and reported by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, key string) interface{} {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: must be an integer", key))
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: must be a boolean", key))
			return nil
		}
		return &v
	case reflect.Float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: must be a number", key))
			return nil
		}
		return &v
	default:
		v := raw
		return &v
	}
}

// ValidQuery reports the failures collected by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New("invalid query: "+strings.Join(c.queryErrs, "; ")), http.StatusBadRequest)
}

// GetParam returns the path parameter key as kind (int or string). It always
// returns a value of the requested kind; failures are reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, key string) interface{} {
	raw := c.Param(key)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Sprintf("%s: must be an integer", key))
			return 0
		}
		return v
	default:
		if strings.TrimSpace(raw) == "" {
			c.paramErrs = append(c.paramErrs, fmt.Sprintf("%s: is required", key))
		}
		return raw
	}
}

// ValidParam reports the failures collected by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New("invalid param: "+strings.Join(c.paramErrs, "; ")), http.StatusBadRequest)
}

// BindFunc decodes the request body into obj and checks that every field
// named in required is set. Nil pointers, empty strings and zero values count
// as missing.
func (c *Context) BindFunc(obj interface{}, required ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	for _, name := range required {
		field, ok := v.Type().FieldByName(name)
		if !ok {
			return NewRequestError(errors.Errorf("unknown field %q", name), http.StatusInternalServerError)
		}
		if v.FieldByName(name).IsZero() {
			missing = append(missing, fieldLabel(field))
		}
	}

	if len(missing) > 0 {
		return NewRequestError(errors.New(strings.Join(missing, ", ")+" required"), http.StatusBadRequest)
	}

	return nil
}

// Respond sends data to the client as JSON.
func (c *Context) Respond(data interface{}, status int) error {
	if status == http.StatusNoContent {
		c.Status(status)
		return nil
	}

	c.JSON(status, data)
	return nil
}

// RespondError sends an error response, using the status carried by a web
// Error and 500 otherwise.
func (c *Context) RespondError(err error) error {
	status, msg := statusOf(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Status: false})
	return nil
}

func fieldLabel(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
