package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_detail/internal/adapters/observability"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/htmlgen"
	"hotel_detail/internal/mockcheck"
)

// Rendered is the outcome of a generate or preview request. When the
// validator blocked the request, HTML holds the block message instead of a page.
type Rendered struct {
	HTML     string
	Layout   htmlgen.Layout
	Decision mockcheck.Decision
}

func (r Rendered) Blocked() bool { return !r.Decision.CanGenerate }

// PageService runs the validate → render pipeline.
type PageService struct {
	checker *mockcheck.Checker
	store   domain.Store
}

// NewPageService builds the pipeline. store may be nil when only in-memory
// page data is rendered.
func NewPageService(c *mockcheck.Checker, store domain.Store) *PageService {
	return &PageService{checker: c, store: store}
}

func (s *PageService) Validate(d domain.PageData) mockcheck.Decision {
	return s.checker.CanGenerate(d)
}

func (s *PageService) Generate(d domain.PageData, l htmlgen.Layout) Rendered {
	return s.render(d, l, s.checker.CanGenerate(d), func() string { return htmlgen.Render(d, l) })
}

func (s *PageService) Preview(d domain.PageData) Rendered {
	return s.render(d, htmlgen.LayoutFull, s.checker.CanPreview(d), func() string { return htmlgen.PreviewHTML(d) })
}

func (s *PageService) render(d domain.PageData, l htmlgen.Layout, dec mockcheck.Decision, fn func() string) Rendered {
	start := time.Now()
	if !dec.CanGenerate {
		observability.ObserveRender(string(l), "blocked", time.Since(start), 0)
		log.Info().Strs("sections", dec.MockSections).Msg("page render blocked by mock data")
		return Rendered{HTML: htmlgen.BlockedHTML(dec.Message, dec.MockSections), Layout: l, Decision: dec}
	}
	html := fn()
	observability.ObserveRender(string(l), "ok", time.Since(start), len(html))
	log.Debug().Str("layout", string(l)).Str("preview", htmlgen.HTMLPreview(html, 80)).Msg("page rendered")
	return Rendered{HTML: html, Layout: l, Decision: dec}
}

// HotelPage assembles page data for a stored hotel: its own fields, its
// active rooms, packages and notices, and its stored extra sections.
func (s *PageService) HotelPage(ctx context.Context, id string) (domain.PageData, error) {
	if s.store == nil {
		return domain.PageData{}, fmt.Errorf("page service has no store")
	}
	h, err := s.store.GetHotel(ctx, id)
	if err != nil {
		return domain.PageData{}, err
	}
	active := true
	f := domain.ListFilter{HotelID: id, Active: &active}
	rooms, err := s.store.ListRooms(ctx, f)
	if err != nil {
		return domain.PageData{}, err
	}
	pkgs, err := s.store.ListPackages(ctx, f)
	if err != nil {
		return domain.PageData{}, err
	}
	notices, err := s.store.ListNotices(ctx, f)
	if err != nil {
		return domain.PageData{}, err
	}

	var d domain.PageData
	if len(h.Sections) > 0 {
		var raw map[string]any
		if err := json.Unmarshal(h.Sections, &raw); err != nil {
			log.Warn().Err(err).Str("context", "HotelPage").Str("id", id).Msg("invalid hotel sections ignored")
		} else {
			d = DecodePage(raw)
		}
	}
	d.Hotel = &domain.HotelInfo{
		Name: h.Name, Address: h.Address, Description: h.Description, ImageURL: h.ImageURL,
		Phone: h.Phone, Email: h.Email, Website: h.Website, Rating: h.Rating,
	}
	d.Rooms = make([]domain.RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		d.Rooms = append(d.Rooms, domain.RoomInfo{
			Name: r.Name, Type: r.Type, Structure: r.Structure, BedType: r.BedType, View: r.View,
			StandardCapacity: r.StandardCapacity, MaxCapacity: r.MaxCapacity,
			Description: r.Description, Image: r.Image, Amenities: r.Amenities,
		})
	}
	d.Packages = make([]domain.PackageInfo, 0, len(pkgs))
	for _, p := range pkgs {
		d.Packages = append(d.Packages, domain.PackageInfo{
			Name: p.Name, Description: p.Description, Price: p.Price, Includes: p.Includes,
			SalesPeriod: p.SalesPeriod, StayPeriod: p.StayPeriod,
			ProductComposition: p.ProductComposition, Notes: p.Notes, Constraints: p.Constraints,
		})
	}
	d.Notices = make([]domain.NoticeInfo, 0, len(notices))
	for _, n := range notices {
		d.Notices = append(d.Notices, domain.NoticeInfo{Title: n.Title, Content: n.Content, Priority: n.Priority, Type: n.Type})
	}
	return d, nil
}

// RenderHotel renders a stored hotel through the same validation gate.
func (s *PageService) RenderHotel(ctx context.Context, id string, l htmlgen.Layout) (Rendered, error) {
	d, err := s.HotelPage(ctx, id)
	if err != nil {
		return Rendered{}, err
	}
	return s.Generate(d, l), nil
}
