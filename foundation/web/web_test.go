package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type bindRequest struct {
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Age   int     `json:"age"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestAppMiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(c *Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := NewApp(nil, mark("app"))
	app.Get("/ping", func(c *Context) error {
		order = append(order, "handler")
		return c.Respond(map[string]interface{}{"data": "pong", "status": true}, http.StatusOK)
	}, mark("route-1"), mark("route-2"))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := []string{"app", "route-1", "route-2", "handler"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestRespondErrorUsesRequestStatus(t *testing.T) {
	app := NewApp(nil)
	app.Get("/missing", func(c *Context) error {
		return c.RespondError(NewRequestError(errors.New("employee not found"), http.StatusNotFound))
	})
	app.Get("/boom", func(c *Context) error {
		return errors.New("database exploded")
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "employee not found" || body["status"] != false {
		t.Fatalf("unexpected body %v", body)
	}

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode(t, rec); strings.Contains(body["error"].(string), "exploded") {
		t.Fatalf("internal error leaked: %v", body)
	}
}

func TestQueryAndParamParsing(t *testing.T) {
	app := NewApp(nil)
	app.Get("/items/:id", func(c *Context) error {
		id := c.GetParam(reflect.Int, "id").(int)
		if err := c.ValidParam(); err != nil {
			return c.RespondError(err)
		}

		limit, _ := c.GetQueryFunc(reflect.Int, "limit").(*int)
		search, _ := c.GetQueryFunc(reflect.String, "search").(*string)
		if err := c.ValidQuery(); err != nil {
			return c.RespondError(err)
		}

		out := map[string]interface{}{"id": id}
		if limit != nil {
			out["limit"] = *limit
		}
		if search != nil {
			out["search"] = *search
		}
		return c.Respond(map[string]interface{}{"data": out, "status": true}, http.StatusOK)
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7?limit=5&search=jo", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	data := decode(t, rec)["data"].(map[string]interface{})
	if data["id"].(float64) != 7 || data["limit"].(float64) != 5 || data["search"] != "jo" {
		t.Fatalf("unexpected data %v", data)
	}

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7?limit=five", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/seven", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", rec.Code)
	}
}

func TestBindFuncRequiredFields(t *testing.T) {
	app := NewApp(nil)
	app.Post("/bind", func(c *Context) error {
		var req bindRequest
		if err := c.BindFunc(&req, "Name", "Email"); err != nil {
			return c.RespondError(err)
		}
		return c.Respond(map[string]interface{}{"data": *req.Name, "status": true}, http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(`{"name":"Jane","email":"jane@example.com"}`); rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}

	rec := post(`{"age":3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decode(t, rec)["error"].(string); msg != "name, email required" {
		t.Fatalf("message = %q", msg)
	}

	if rec := post(`{"name":`); rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed status = %d", rec.Code)
	}
}
