//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	server "hotel_detail/internal/adapters/http_server"
	"hotel_detail/internal/adapters/pageclient"
	redisad "hotel_detail/internal/adapters/redis"
	"hotel_detail/internal/app"
	"hotel_detail/internal/mockcheck"
	mysqlrepo "hotel_detail/internal/storage/mysql"
)

func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotel_detail",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotel_detail?parseTime=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *gorm.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = mysqlrepo.Open(context.Background(), dsn)
		return e
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	if err := mysqlrepo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func post(t *testing.T, url string, body any) map[string]any {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer res.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	if res.StatusCode >= 300 {
		t.Fatalf("POST %s: status %d: %v", url, res.StatusCode, out)
	}
	return out
}

func TestHTTP_EndToEnd_HotelPage(t *testing.T) {
	repo := mysqlrepo.New(startMySQL(t))

	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	pages := app.NewPageService(mockcheck.New(mockcheck.DefaultPatterns()), repo)
	srv := server.New(nil, 10*time.Second)
	srv.MountHandlers(&server.Handlers{
		Catalog:   app.NewCatalogService(repo),
		Pages:     pages,
		Publisher: app.NewPublishService(pages, redisad.NewWithClient(rc), time.Hour),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	hotel := post(t, ts.URL+"/api/hotels", map[string]any{
		"name":    "해운대 그랜드",
		"address": "부산 해운대구 해변로 1",
		"sections": map[string]any{
			"checkin": map[string]any{"checkInTime": "15:00", "checkOutTime": "11:00"},
		},
	})["hotel"].(map[string]any)
	id := hotel["id"].(string)

	post(t, ts.URL+"/api/rooms", map[string]any{"hotelId": id, "name": "오션 디럭스", "amenities": "WiFi, 욕조"})
	post(t, ts.URL+"/api/notices", map[string]any{"hotelId": id, "title": "주차", "content": "발렛 파킹 가능", "priority": 3})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cl, err := pageclient.New(ts.URL, 50, 5*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	html, err := cl.GetHotelHTML(ctx, id, "full")
	if err != nil {
		t.Fatalf("GetHotelHTML: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "해운대 그랜드", "오션 디럭스", "욕조", "15:00", "발렛 파킹 가능"} {
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	pub := post(t, ts.URL+"/api/hotels/"+id+"/publish", nil)
	res, err := http.Get(ts.URL + pub["url"].(string))
	if err != nil {
		t.Fatalf("GET published: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("published page status %d", res.StatusCode)
	}
	if !mr.Exists("page:hotel-" + id) {
		t.Fatalf("expected page in redis")
	}
}
