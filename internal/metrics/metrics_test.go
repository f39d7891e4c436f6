package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(body)
}

func TestStoreObserverCountsMutations(t *testing.T) {
	m := New()
	s := store.New(store.DefaultSeed(time.Now()), store.WithObserver(m.StoreObserver()))

	s.AddStatus(entity.Status{Name: "Remote"})
	s.AddStatus(entity.Status{Name: "Contract"})
	s.DeleteStatus("missing")

	out := scrape(t, m)
	if !strings.Contains(out, `dashboard_store_mutations_total{kind="status",op="add"} 2`) {
		t.Fatalf("status adds not counted:\n%s", out)
	}
	if strings.Contains(out, `op="delete"`) {
		t.Fatalf("no-op delete counted:\n%s", out)
	}
}

func TestHandlerExposesRequests(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/employee/list", "200", 0.01)

	out := scrape(t, m)
	if !strings.Contains(out, `dashboard_http_requests_total{code="200",method="GET",route="/api/v1/employee/list"} 1`) {
		t.Fatalf("metrics output:\n%s", out)
	}
}
