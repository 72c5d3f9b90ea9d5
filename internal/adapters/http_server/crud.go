package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
)

// resource wires the list/create/update/delete routes of one entity type.
type resource[T any] struct {
	one, many string // envelope keys
	subject   string // Korean subject used in messages, e.g. "객실이"
	notFound  string
	missingID string

	list   func(r *http.Request) ([]T, error)
	create func(ctx context.Context, body map[string]any) (T, error)
	update func(ctx context.Context, id string, body map[string]any) (T, error)
	remove func(ctx context.Context, id string) error
}

func (res resource[T]) mount(r chi.Router) {
	r.Get("/", res.handleList)
	r.Post("/", res.handleCreate)
	r.Put("/", res.handleUpdate)
	r.Delete("/", res.handleDelete)
}

func (res resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := res.list(r)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, res.many: items, "count": len(items)})
}

func (res resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}
	item, err := res.create(r.Context(), body)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, res.one: item, "message": res.subject + " 성공적으로 생성되었습니다."})
}

func (res resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}
	id := app.PayloadID(body)
	if id == "" {
		writeFail(w, http.StatusBadRequest, res.missingID)
		return
	}
	item, err := res.update(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, res.one: item, "message": res.subject + " 성공적으로 수정되었습니다."})
}

func (res resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeFail(w, http.StatusBadRequest, res.missingID)
		return
	}
	if err := res.remove(r.Context(), id); err != nil {
		writeError(w, r, err, res.notFound)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": res.subject + " 성공적으로 삭제되었습니다."})
}

// listFilter reads hotelId and isActive. isActive defaults to true;
// "false" lists inactive rows and "all" lists both.
func listFilter(r *http.Request) domain.ListFilter {
	q := r.URL.Query()
	f := domain.ListFilter{HotelID: strings.TrimSpace(q.Get("hotelId"))}
	switch strings.ToLower(strings.TrimSpace(q.Get("isActive"))) {
	case "all":
	case "false":
		v := false
		f.Active = &v
	default:
		v := true
		f.Active = &v
	}
	return f
}

func (h *Handlers) hotels() resource[domain.Hotel] {
	c := h.Catalog
	return resource[domain.Hotel]{
		one: "hotel", many: "hotels", subject: "호텔 정보가",
		notFound: "호텔을 찾을 수 없습니다.", missingID: "호텔 ID가 필요합니다.",
		list: func(r *http.Request) ([]domain.Hotel, error) { return c.ListHotels(r.Context(), listFilter(r)) },
		create: func(ctx context.Context, b map[string]any) (domain.Hotel, error) {
			return c.CreateHotel(ctx, app.HotelFromPayload(b))
		},
		update: func(ctx context.Context, id string, b map[string]any) (domain.Hotel, error) {
			return c.UpdateHotel(ctx, id, app.HotelPatchFromPayload(b))
		},
		remove: c.DeleteHotel,
	}
}

func (h *Handlers) rooms() resource[domain.Room] {
	c := h.Catalog
	return resource[domain.Room]{
		one: "room", many: "rooms", subject: "객실이",
		notFound: "객실을 찾을 수 없습니다.", missingID: "객실 ID가 필요합니다.",
		list: func(r *http.Request) ([]domain.Room, error) { return c.ListRooms(r.Context(), listFilter(r)) },
		create: func(ctx context.Context, b map[string]any) (domain.Room, error) {
			return c.CreateRoom(ctx, app.RoomFromPayload(b))
		},
		update: func(ctx context.Context, id string, b map[string]any) (domain.Room, error) {
			return c.UpdateRoom(ctx, id, app.RoomPatchFromPayload(b))
		},
		remove: c.DeleteRoom,
	}
}

func (h *Handlers) packages() resource[domain.Package] {
	c := h.Catalog
	return resource[domain.Package]{
		one: "package", many: "packages", subject: "패키지가",
		notFound: "패키지를 찾을 수 없습니다.", missingID: "패키지 ID가 필요합니다.",
		list: func(r *http.Request) ([]domain.Package, error) { return c.ListPackages(r.Context(), listFilter(r)) },
		create: func(ctx context.Context, b map[string]any) (domain.Package, error) {
			return c.CreatePackage(ctx, app.PackageFromPayload(b))
		},
		update: func(ctx context.Context, id string, b map[string]any) (domain.Package, error) {
			return c.UpdatePackage(ctx, id, app.PackagePatchFromPayload(b))
		},
		remove: c.DeletePackage,
	}
}

func (h *Handlers) notices() resource[domain.Notice] {
	c := h.Catalog
	return resource[domain.Notice]{
		one: "notice", many: "notices", subject: "공지사항이",
		notFound: "공지사항을 찾을 수 없습니다.", missingID: "공지사항 ID가 필요합니다.",
		list: func(r *http.Request) ([]domain.Notice, error) { return c.ListNotices(r.Context(), listFilter(r)) },
		create: func(ctx context.Context, b map[string]any) (domain.Notice, error) {
			return c.CreateNotice(ctx, app.NoticeFromPayload(b))
		},
		update: func(ctx context.Context, id string, b map[string]any) (domain.Notice, error) {
			return c.UpdateNotice(ctx, id, app.NoticePatchFromPayload(b))
		},
		remove: c.DeleteNotice,
	}
}

func (h *Handlers) templates() resource[domain.Template] {
	c := h.Catalog
	return resource[domain.Template]{
		one: "template", many: "templates", subject: "템플릿이",
		notFound: "템플릿을 찾을 수 없습니다.", missingID: "템플릿 ID가 필요합니다.",
		list: func(r *http.Request) ([]domain.Template, error) {
			return c.ListTemplates(r.Context(), domain.TemplateFilter{Category: strings.TrimSpace(r.URL.Query().Get("category"))})
		},
		create: func(ctx context.Context, b map[string]any) (domain.Template, error) {
			return c.CreateTemplate(ctx, app.TemplateFromPayload(b))
		},
		update: func(ctx context.Context, id string, b map[string]any) (domain.Template, error) {
			return c.UpdateTemplate(ctx, id, app.TemplatePatchFromPayload(b))
		},
		remove: c.DeleteTemplate,
	}
}
