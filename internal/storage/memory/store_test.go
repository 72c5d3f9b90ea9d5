package memory_test

import (
	"context"
	"errors"
	"testing"

	"hotel_detail/internal/domain"
	"hotel_detail/internal/storage/memory"
)

func ptr[T any](v T) *T { return &v }

func TestStore_NoticesOrderedByPriorityThenNewest(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	for _, n := range []domain.Notice{
		{HotelID: "h1", Title: "a", Priority: 1, IsActive: true},
		{HotelID: "h1", Title: "b", Priority: 5, IsActive: true},
		{HotelID: "h1", Title: "c", Priority: 1, IsActive: true},
		{HotelID: "h2", Title: "d", Priority: 9, IsActive: true},
		{HotelID: "h1", Title: "e", Priority: 9, IsActive: false},
	} {
		if _, err := s.CreateNotice(ctx, n); err != nil {
			t.Fatalf("CreateNotice: %v", err)
		}
	}
	got, _ := s.ListNotices(ctx, domain.ListFilter{HotelID: "h1", Active: ptr(true)})
	var titles string
	for _, n := range got {
		titles += n.Title
	}
	if titles != "bca" {
		t.Fatalf("order = %q, want bca", titles)
	}
	all, _ := s.ListNotices(ctx, domain.ListFilter{HotelID: "h1"})
	if len(all) != 4 {
		t.Fatalf("unfiltered: want 4, got %d", len(all))
	}
}

func TestStore_PatchKeepsAbsentFields(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	r, _ := s.CreateRoom(ctx, domain.Room{HotelID: "h1", Name: "디럭스", View: "오션뷰", Amenities: []string{"WiFi"}})

	up, err := s.UpdateRoom(ctx, r.ID, domain.RoomPatch{Name: ptr("디럭스 트윈")})
	if err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if up.Name != "디럭스 트윈" || up.View != "오션뷰" || len(up.Amenities) != 1 {
		t.Fatalf("unexpected room after patch: %+v", up)
	}
	if _, err := s.UpdateRoom(ctx, "nope", domain.RoomPatch{Name: ptr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := s.DeleteRoom(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if err := s.DeleteRoom(ctx, r.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_TemplatesByCategory(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	_, _ = s.CreateTemplate(ctx, domain.Template{Name: "a", Category: "resort", Data: []byte(`{}`)})
	b, _ := s.CreateTemplate(ctx, domain.Template{Name: "b", Category: "city", Data: []byte(`{}`)})

	got, _ := s.ListTemplates(ctx, domain.TemplateFilter{Category: "city"})
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("unexpected templates: %+v", got)
	}
	all, _ := s.ListTemplates(ctx, domain.TemplateFilter{})
	if len(all) != 2 || all[0].Name != "b" {
		t.Fatalf("want newest first, got %+v", all)
	}
}
