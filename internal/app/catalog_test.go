package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/storage/memory"
)

func ptr[T any](v T) *T { return &v }

func seedHotel(t *testing.T, s domain.Store, name string) domain.Hotel {
	t.Helper()
	h, err := s.CreateHotel(context.Background(), domain.Hotel{Name: name, IsActive: true})
	if err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return h
}

func TestCatalog_RequiredFields(t *testing.T) {
	svc := app.NewCatalogService(memory.New())
	ctx := context.Background()

	var ve *domain.ValidationError
	if _, err := svc.CreateHotel(ctx, domain.Hotel{}); !errors.As(err, &ve) {
		t.Fatalf("hotel without name: want ValidationError, got %v", err)
	}
	if _, err := svc.CreateRoom(ctx, domain.Room{Name: "디럭스"}); !errors.As(err, &ve) {
		t.Fatalf("room without hotelId: want ValidationError, got %v", err)
	}
	if _, err := svc.CreateNotice(ctx, domain.Notice{HotelID: "h", Title: "t"}); !errors.As(err, &ve) {
		t.Fatalf("notice without content: want ValidationError, got %v", err)
	}
	if _, err := svc.CreateTemplate(ctx, domain.Template{Name: "t", Data: []byte(`[1]`)}); !errors.As(err, &ve) {
		t.Fatalf("template with array data: want ValidationError, got %v", err)
	}
	if err := svc.DeleteRoom(ctx, ""); !errors.As(err, &ve) {
		t.Fatalf("delete without id: want ValidationError, got %v", err)
	}
}

func TestCatalog_ChildNeedsExistingHotel(t *testing.T) {
	svc := app.NewCatalogService(memory.New())
	_, err := svc.CreatePackage(context.Background(), domain.Package{HotelID: "missing", Name: "조식"})
	if !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("want ErrHotelNotFound, got %v", err)
	}
}

func TestCatalog_UpdateMissingIsNotFound(t *testing.T) {
	svc := app.NewCatalogService(memory.New())
	_, err := svc.UpdateNotice(context.Background(), "nope", domain.NoticePatch{Title: ptr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalog_ExportIncludesInactiveChildren(t *testing.T) {
	store := memory.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))
	svc := app.NewCatalogService(store).WithClock(func() time.Time { return at })
	ctx := context.Background()
	h := seedHotel(t, store, "그랜드 호텔")
	_, _ = svc.CreateRoom(ctx, domain.Room{HotelID: h.ID, Name: "디럭스", IsActive: true})
	_, _ = svc.CreateRoom(ctx, domain.Room{HotelID: h.ID, Name: "구관", IsActive: false})

	exp, err := svc.ExportHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("ExportHotel: %v", err)
	}
	if len(exp.Rooms) != 2 || exp.Hotel.ID != h.ID {
		t.Fatalf("unexpected export: %+v", exp)
	}
	if exp.ExportInfo.Version != "1.0" || exp.ExportInfo.DatabaseType != "hotel_detail_db" || !exp.ExportInfo.ExportedAt.Equal(at) {
		t.Fatalf("unexpected export info: %+v", exp.ExportInfo)
	}
	if exp.ExportInfo.ExportedAt.Location() != time.UTC {
		t.Fatalf("exportedAt should be UTC")
	}
}

func TestCatalog_DuplicateHotelCopiesChildren(t *testing.T) {
	store := memory.New()
	svc := app.NewCatalogService(store)
	ctx := context.Background()
	h := seedHotel(t, store, "그랜드 호텔")
	_, _ = svc.CreateRoom(ctx, domain.Room{HotelID: h.ID, Name: "디럭스", IsActive: true})
	_, _ = svc.CreatePackage(ctx, domain.Package{HotelID: h.ID, Name: "조식 패키지", IsActive: true})
	_, _ = svc.CreateNotice(ctx, domain.Notice{HotelID: h.ID, Title: "주차", Content: "무료", IsActive: true})

	cp, err := svc.DuplicateHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("DuplicateHotel: %v", err)
	}
	if cp.ID == h.ID || cp.Name != "그랜드 호텔 (복사본)" {
		t.Fatalf("unexpected copy: %+v", cp)
	}
	f := domain.ListFilter{HotelID: cp.ID}
	rooms, _ := store.ListRooms(ctx, f)
	pkgs, _ := store.ListPackages(ctx, f)
	notices, _ := store.ListNotices(ctx, f)
	if len(rooms) != 1 || len(pkgs) != 1 || len(notices) != 1 {
		t.Fatalf("children not copied: rooms=%d packages=%d notices=%d", len(rooms), len(pkgs), len(notices))
	}
	orig, _ := store.ListRooms(ctx, domain.ListFilter{HotelID: h.ID})
	if len(orig) != 1 {
		t.Fatalf("original children changed: %d rooms", len(orig))
	}

	if _, err := svc.DuplicateHotel(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalog_DuplicateTemplateAndDecode(t *testing.T) {
	svc := app.NewCatalogService(memory.New())
	ctx := context.Background()
	tpl, err := svc.CreateTemplate(ctx, domain.Template{Name: "기본", Data: []byte(`{"hotel":{"name":"바다 리조트"}}`)})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	cp, err := svc.DuplicateTemplate(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("DuplicateTemplate: %v", err)
	}
	if cp.Name != "기본 (복사본)" || cp.ID == tpl.ID {
		t.Fatalf("unexpected copy: %+v", cp)
	}
	d, err := app.TemplatePage(cp)
	if err != nil || d.Hotel == nil || d.Hotel.Name != "바다 리조트" {
		t.Fatalf("TemplatePage: %+v %v", d.Hotel, err)
	}
	if _, err := app.TemplatePage(domain.Template{ID: "x"}); err == nil {
		t.Fatalf("expected error for empty template data")
	}
}
