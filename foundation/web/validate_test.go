package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type shiftRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	TimeIn  string  `json:"time_in" validate:"required,clock"`
	TimeOut *string `json:"time_out" validate:"omitempty,clock"`
	Total   int     `json:"total" validate:"gte=0"`
	Left    int     `json:"left" validate:"gte=0,ltefield=Total"`
}

func TestValidate(t *testing.T) {
	app := NewApp(nil)
	app.Post("/shift", func(c *Context) error {
		var req shiftRequest
		if err := c.BindFunc(&req); err != nil {
			return c.RespondError(err)
		}
		if err := c.Validate(&req); err != nil {
			return c.RespondError(err)
		}
		return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/shift", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(`{"email":"a@b.co","time_in":"09:00","time_out":"17:30","total":5,"left":2}`); rec.Code != http.StatusOK {
		t.Fatalf("valid request: %d %s", rec.Code, rec.Body.String())
	}

	rec := post(`{"email":"nope","time_in":"25:00","time_out":"x","total":1,"left":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	msg := decode(t, rec)["error"].(string)
	for _, want := range []string{"email: email", "time_in: clock", "time_out: clock", "left: ltefield=Total"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q is missing %q", msg, want)
		}
	}
}
