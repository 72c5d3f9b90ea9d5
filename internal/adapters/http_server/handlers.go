package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/htmlgen"
)

// Handlers exposes the catalog, the page pipeline and published pages.
// Publisher may be nil, in which case the publish routes answer 503.
type Handlers struct {
	Catalog   *app.CatalogService
	Pages     *app.PageService
	Publisher *app.PublishService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Route("/hotels", func(r chi.Router) {
			h.hotels().mount(r)
			r.Get("/{id}", h.getHotel)
			r.Get("/{id}/export", h.exportHotel)
			r.Post("/{id}/duplicate", h.duplicateHotel)
			r.Get("/{id}/html", h.hotelHTML)
			r.Post("/{id}/publish", h.publishHotel)
		})
		r.Route("/rooms", h.rooms().mount)
		r.Route("/packages", h.packages().mount)
		r.Route("/notices", h.notices().mount)
		r.Route("/templates", func(r chi.Router) {
			h.templates().mount(r)
			r.Get("/{id}", h.getTemplate)
			r.Post("/{id}/duplicate", h.duplicateTemplate)
		})

		r.Post("/validate", h.validate)
		r.Post("/preview", h.preview)
		r.Post("/generate", h.generate)
		r.Post("/pages", h.publishExternal)
		r.Delete("/pages/{key}", h.unpublish)
	})
	s.mux.Get("/pages/{key}", h.publishedPage)
}

/********** hotels / templates by id **********/

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Catalog.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "호텔을 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "hotel": hotel})
}

func (h *Handlers) exportHotel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exp, err := h.Catalog.ExportHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "호텔을 찾을 수 없습니다.")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="hotel-`+id+`.json"`)
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "호텔 정보가 성공적으로 내보내기되었습니다.", "data": exp})
}

func (h *Handlers) duplicateHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Catalog.DuplicateHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "호텔을 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "message": "호텔 정보가 성공적으로 복제되었습니다.", "hotel": hotel})
}

func (h *Handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.Catalog.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "템플릿을 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "template": t})
}

func (h *Handlers) duplicateTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.Catalog.DuplicateTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "템플릿을 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "message": "템플릿이 성공적으로 복제되었습니다.", "template": t})
}

/********** page pipeline **********/

// pageInput loads page data from ?templateId= or, without it, from the body.
func (h *Handlers) pageInput(w http.ResponseWriter, r *http.Request) (domain.PageData, bool) {
	if id := strings.TrimSpace(r.URL.Query().Get("templateId")); id != "" {
		t, err := h.Catalog.GetTemplate(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "템플릿을 찾을 수 없습니다.")
			return domain.PageData{}, false
		}
		d, err := app.TemplatePage(t)
		if err != nil {
			writeFail(w, http.StatusBadRequest, "템플릿 데이터를 읽을 수 없습니다.")
			return domain.PageData{}, false
		}
		return d, true
	}
	body, ok := decodeObject(w, r)
	if !ok {
		return domain.PageData{}, false
	}
	return app.DecodePage(body), true
}

func (h *Handlers) validate(w http.ResponseWriter, r *http.Request) {
	d, ok := h.pageInput(w, r)
	if !ok {
		return
	}
	dec := h.Pages.Validate(d)
	writeJSON(w, http.StatusOK, envelope{
		"success":      true,
		"canGenerate":  dec.CanGenerate,
		"message":      dec.Message,
		"mockSections": dec.MockSections,
	})
}

func (h *Handlers) preview(w http.ResponseWriter, r *http.Request) {
	d, ok := h.pageInput(w, r)
	if !ok {
		return
	}
	res := h.Pages.Preview(d)
	status := http.StatusOK
	if res.Blocked() {
		status = http.StatusUnprocessableEntity
	}
	writeHTML(w, status, res.HTML)
}

func (h *Handlers) generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	layout, ok := htmlgen.ParseLayout(q.Get("layout"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "지원하지 않는 레이아웃입니다.")
		return
	}
	d, ok := h.pageInput(w, r)
	if !ok {
		return
	}
	rawHTML := q.Get("format") == "html"

	res := h.Pages.Generate(d, layout)
	if res.Blocked() {
		if rawHTML {
			writeHTML(w, http.StatusUnprocessableEntity, res.HTML)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			"success":      false,
			"error":        res.Decision.Message,
			"mockSections": res.Decision.MockSections,
		})
		return
	}

	out := envelope{"success": true, "html": res.HTML, "layout": res.Layout, "message": res.Decision.Message}
	if q.Get("save") == "true" {
		if h.Publisher == nil {
			writeFail(w, http.StatusServiceUnavailable, "게시 저장소가 설정되지 않았습니다.")
			return
		}
		key, err := h.Publisher.PublishDocument(r.Context(), res.HTML)
		if err != nil {
			writeError(w, r, err, "")
			return
		}
		w.Header().Set("Location", "/pages/"+key)
		out["key"], out["url"] = key, "/pages/"+key
	}
	if rawHTML {
		writeHTML(w, http.StatusOK, res.HTML)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) hotelHTML(w http.ResponseWriter, r *http.Request) {
	layout, ok := htmlgen.ParseLayout(r.URL.Query().Get("layout"))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid layout", "layout must be full or complete")
		return
	}
	res, err := h.Pages.RenderHotel(r.Context(), chi.URLParam(r, "id"), layout)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		writeError(w, r, err, "")
		return
	}
	if res.Blocked() {
		writeProblem(w, http.StatusUnprocessableEntity, "Mock Data", res.Decision.Message)
		return
	}
	if notModified(w, r, calcETag([]byte(res.HTML))) {
		return
	}
	writeHTML(w, http.StatusOK, res.HTML)
}

/********** published pages **********/

func (h *Handlers) publisher(w http.ResponseWriter) bool {
	if h.Publisher == nil {
		writeFail(w, http.StatusServiceUnavailable, "게시 저장소가 설정되지 않았습니다.")
		return false
	}
	return true
}

func (h *Handlers) publishHotel(w http.ResponseWriter, r *http.Request) {
	if !h.publisher(w) {
		return
	}
	key, err := h.Publisher.PublishHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "호텔을 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "key": key, "url": "/pages/" + key})
}

func (h *Handlers) publishExternal(w http.ResponseWriter, r *http.Request) {
	if !h.publisher(w) {
		return
	}
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}
	html, _ := body["html"].(string)
	if strings.TrimSpace(html) == "" {
		writeFail(w, http.StatusBadRequest, "html은 필수입니다.")
		return
	}
	key, err := h.Publisher.PublishExternal(r.Context(), html)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	w.Header().Set("Location", "/pages/"+key)
	writeJSON(w, http.StatusCreated, envelope{"success": true, "key": key, "url": "/pages/" + key})
}

func (h *Handlers) unpublish(w http.ResponseWriter, r *http.Request) {
	if !h.publisher(w) {
		return
	}
	if err := h.Publisher.Unpublish(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "게시가 해제되었습니다."})
}

func (h *Handlers) publishedPage(w http.ResponseWriter, r *http.Request) {
	if h.Publisher == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "page not found")
		return
	}
	html, ok, err := h.Publisher.Published(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "page store unavailable")
		return
	}
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "page not found")
		return
	}
	if notModified(w, r, calcETag([]byte(html))) {
		return
	}
	writeHTML(w, http.StatusOK, html)
}
