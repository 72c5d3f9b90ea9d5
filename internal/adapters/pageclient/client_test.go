package pageclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hotel_detail/internal/adapters/pageclient"
	"hotel_detail/internal/domain"
)

func newClient(t *testing.T, h http.Handler) *pageclient.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	cl, err := pageclient.New(ts.URL, 100, 2*time.Second) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return cl
}

func TestClient_GetTemplate_RetriesThenSuccess(t *testing.T) {
	var hits int32
	cl := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/templates/t-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":  true,
				"template": map[string]any{"id": "t-1", "name": "기본", "data": map[string]any{"hotel": map[string]any{"name": "A"}}},
			})
		}
	}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.GetTemplate(ctx, "t-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "t-1" || got.Name != "기본" || len(got.Data) == 0 {
		t.Fatalf("unexpected template: %+v", got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetHotelHTML(t *testing.T) {
	cl := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/hotels/h1/html":
			if r.URL.Query().Get("layout") != "complete" {
				t.Errorf("layout not forwarded: %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<!DOCTYPE html><p>ok</p>"))
		case "/api/hotels/mock/html":
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"title":"Mock Data","status":422,"detail":"호텔 정보"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	html, err := cl.GetHotelHTML(ctx, "h1", "complete")
	if err != nil || html != "<!DOCTYPE html><p>ok</p>" {
		t.Fatalf("GetHotelHTML: %q %v", html, err)
	}
	if _, err := cl.GetHotelHTML(ctx, "missing", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := cl.GetHotelHTML(ctx, "mock", ""); !errors.Is(err, domain.ErrMockData) {
		t.Fatalf("want ErrMockData, got %v", err)
	}
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var hits int32
	cl := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	if _, err := cl.GetHotelHTML(context.Background(), "h1", ""); err == nil {
		t.Fatalf("expected error after retries")
	}
	if atomic.LoadInt32(&hits) != 4 {
		t.Fatalf("expected 4 attempts, got %d", hits)
	}
}

func TestNew_RejectsBadBase(t *testing.T) {
	if _, err := pageclient.New("not a url", 1, time.Second); err == nil {
		t.Fatalf("expected error")
	}
}
