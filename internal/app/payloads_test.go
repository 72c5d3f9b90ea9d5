package app_test

import (
	"testing"

	"hotel_detail/internal/app"
)

func TestPatchFromPayload_OnlyPresentKeys(t *testing.T) {
	p := app.RoomPatchFromPayload(map[string]any{"id": "r1", "name": "디럭스", "view": nil, "price": "99,000"})
	if p.Name == nil || *p.Name != "디럭스" {
		t.Fatalf("name not set: %+v", p)
	}
	if p.View != nil || p.Type != nil || p.Amenities != nil || p.IsActive != nil {
		t.Fatalf("absent or null keys must stay nil: %+v", p)
	}
	if p.Price == nil || *p.Price != 99000 {
		t.Fatalf("price = %v", p.Price)
	}
}

func TestFromPayload_Defaults(t *testing.T) {
	n := app.NoticeFromPayload(map[string]any{"hotelId": " h1 ", "title": "주차", "content": "무료"})
	if n.HotelID != "h1" || n.Type != "general" || !n.IsActive {
		t.Fatalf("unexpected defaults: %+v", n)
	}
	h := app.HotelFromPayload(map[string]any{"name": "A", "isActive": "false", "sections": map[string]any{"checkin": map[string]any{}}})
	if h.IsActive {
		t.Fatalf(`"false" should deactivate`)
	}
	if string(h.Sections) != `{"checkin":{}}` {
		t.Fatalf("sections = %s", h.Sections)
	}
	pkg := app.PackageFromPayload(map[string]any{
		"hotelId": "h1", "name": "조식", "includes": []any{"조식 2인", ""},
		"salesPeriod": map[string]any{"start": "2025-01-01", "end": "2025-02-01"},
	})
	if len(pkg.Includes) != 1 || pkg.SalesPeriod.End != "2025-02-01" {
		t.Fatalf("unexpected package: %+v", pkg)
	}
}

func TestPayloadID(t *testing.T) {
	if got := app.PayloadID(map[string]any{"id": " abc "}); got != "abc" {
		t.Fatalf("PayloadID = %q", got)
	}
	if got := app.PayloadID(map[string]any{}); got != "" {
		t.Fatalf("PayloadID = %q", got)
	}
}
