// Package memory is an in-process domain.Store for local runs without MySQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel_detail/internal/domain"
)

type entry[T any] struct {
	seq int64
	v   T
}

type Store struct {
	mu  sync.RWMutex
	seq int64
	now func() time.Time

	hotels    map[string]entry[domain.Hotel]
	rooms     map[string]entry[domain.Room]
	packages  map[string]entry[domain.Package]
	notices   map[string]entry[domain.Notice]
	templates map[string]entry[domain.Template]
}

func New() *Store {
	return &Store{
		now:       time.Now,
		hotels:    map[string]entry[domain.Hotel]{},
		rooms:     map[string]entry[domain.Room]{},
		packages:  map[string]entry[domain.Package]{},
		notices:   map[string]entry[domain.Notice]{},
		templates: map[string]entry[domain.Template]{},
	}
}

// stamp assigns an id if missing and the insertion sequence.
func (s *Store) stamp(id *string) (int64, time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	s.seq++
	return s.seq, s.now().UTC()
}

func list[T any](m map[string]entry[T], keep func(T) bool, less func(a, b entry[T]) bool) []T {
	es := make([]entry[T], 0, len(m))
	for _, e := range m {
		if keep(e.v) {
			es = append(es, e)
		}
	}
	sort.Slice(es, func(i, j int) bool { return less(es[i], es[j]) })
	out := make([]T, 0, len(es))
	for _, e := range es {
		out = append(out, e.v)
	}
	return out
}

func newest[T any](a, b entry[T]) bool { return a.seq > b.seq }

func matches(f domain.ListFilter, hotelID string, active bool) bool {
	if f.HotelID != "" && f.HotelID != hotelID {
		return false
	}
	return f.Active == nil || *f.Active == active
}

func set[T any](dst *T, p *T) {
	if p != nil {
		*dst = *p
	}
}

func clone(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}

/********** hotels **********/

func (s *Store) ListHotels(_ context.Context, f domain.ListFilter) ([]domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.hotels, func(h domain.Hotel) bool { return f.Active == nil || *f.Active == h.IsActive }, newest[domain.Hotel]), nil
}

func (s *Store) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return e.v, nil
}

func (s *Store) CreateHotel(_ context.Context, h domain.Hotel) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, now := s.stamp(&h.ID)
	h.CreatedAt, h.UpdatedAt = now, now
	s.hotels[h.ID] = entry[domain.Hotel]{seq, h}
	return h, nil
}

func (s *Store) UpdateHotel(_ context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if p.Empty() {
		return e.v, nil
	}
	h := &e.v
	set(&h.Name, p.Name)
	set(&h.Address, p.Address)
	set(&h.Description, p.Description)
	set(&h.ImageURL, p.ImageURL)
	set(&h.Phone, p.Phone)
	set(&h.Email, p.Email)
	set(&h.Website, p.Website)
	set(&h.Rating, p.Rating)
	set(&h.IsActive, p.IsActive)
	if p.Sections != nil {
		h.Sections = p.Sections
	}
	h.UpdatedAt = s.now().UTC()
	s.hotels[id] = e
	return e.v, nil
}

func (s *Store) DeleteHotel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.hotels, id)
	return nil
}

/********** rooms **********/

func (s *Store) ListRooms(_ context.Context, f domain.ListFilter) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.rooms, func(r domain.Room) bool { return matches(f, r.HotelID, r.IsActive) }, newest[domain.Room]), nil
}

func (s *Store) CreateRoom(_ context.Context, r domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, now := s.stamp(&r.ID)
	r.CreatedAt, r.UpdatedAt = now, now
	r.Amenities = clone(r.Amenities)
	s.rooms[r.ID] = entry[domain.Room]{seq, r}
	return r, nil
}

func (s *Store) UpdateRoom(_ context.Context, id string, p domain.RoomPatch) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	if p.Empty() {
		return e.v, nil
	}
	r := &e.v
	set(&r.Name, p.Name)
	set(&r.Type, p.Type)
	set(&r.Structure, p.Structure)
	set(&r.BedType, p.BedType)
	set(&r.View, p.View)
	set(&r.StandardCapacity, p.StandardCapacity)
	set(&r.MaxCapacity, p.MaxCapacity)
	set(&r.Price, p.Price)
	set(&r.Description, p.Description)
	set(&r.Image, p.Image)
	set(&r.IsActive, p.IsActive)
	if p.Amenities != nil {
		r.Amenities = clone(*p.Amenities)
	}
	r.UpdatedAt = s.now().UTC()
	s.rooms[id] = e
	return e.v, nil
}

func (s *Store) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

/********** packages **********/

func (s *Store) ListPackages(_ context.Context, f domain.ListFilter) ([]domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.packages, func(p domain.Package) bool { return matches(f, p.HotelID, p.IsActive) }, newest[domain.Package]), nil
}

func (s *Store) CreatePackage(_ context.Context, p domain.Package) (domain.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, now := s.stamp(&p.ID)
	p.CreatedAt, p.UpdatedAt = now, now
	p.Includes, p.Notes, p.Constraints = clone(p.Includes), clone(p.Notes), clone(p.Constraints)
	s.packages[p.ID] = entry[domain.Package]{seq, p}
	return p, nil
}

func (s *Store) UpdatePackage(_ context.Context, id string, p domain.PackagePatch) (domain.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.packages[id]
	if !ok {
		return domain.Package{}, domain.ErrNotFound
	}
	if p.Empty() {
		return e.v, nil
	}
	pk := &e.v
	set(&pk.Name, p.Name)
	set(&pk.Description, p.Description)
	set(&pk.Price, p.Price)
	set(&pk.SalesPeriod, p.SalesPeriod)
	set(&pk.StayPeriod, p.StayPeriod)
	set(&pk.ProductComposition, p.ProductComposition)
	set(&pk.IsActive, p.IsActive)
	if p.Includes != nil {
		pk.Includes = clone(*p.Includes)
	}
	if p.Notes != nil {
		pk.Notes = clone(*p.Notes)
	}
	if p.Constraints != nil {
		pk.Constraints = clone(*p.Constraints)
	}
	pk.UpdatedAt = s.now().UTC()
	s.packages[id] = e
	return e.v, nil
}

func (s *Store) DeletePackage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.packages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.packages, id)
	return nil
}

/********** notices **********/

func byPriority(a, b entry[domain.Notice]) bool {
	if a.v.Priority != b.v.Priority {
		return a.v.Priority > b.v.Priority
	}
	return a.seq > b.seq
}

func (s *Store) ListNotices(_ context.Context, f domain.ListFilter) ([]domain.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.notices, func(n domain.Notice) bool { return matches(f, n.HotelID, n.IsActive) }, byPriority), nil
}

func (s *Store) CreateNotice(_ context.Context, n domain.Notice) (domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, now := s.stamp(&n.ID)
	n.CreatedAt, n.UpdatedAt = now, now
	s.notices[n.ID] = entry[domain.Notice]{seq, n}
	return n, nil
}

func (s *Store) UpdateNotice(_ context.Context, id string, p domain.NoticePatch) (domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.notices[id]
	if !ok {
		return domain.Notice{}, domain.ErrNotFound
	}
	if p.Empty() {
		return e.v, nil
	}
	n := &e.v
	set(&n.Title, p.Title)
	set(&n.Content, p.Content)
	set(&n.Priority, p.Priority)
	set(&n.Type, p.Type)
	set(&n.IsActive, p.IsActive)
	n.UpdatedAt = s.now().UTC()
	s.notices[id] = e
	return e.v, nil
}

func (s *Store) DeleteNotice(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.notices, id)
	return nil
}

/********** templates **********/

func (s *Store) ListTemplates(_ context.Context, f domain.TemplateFilter) ([]domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.templates, func(t domain.Template) bool { return f.Category == "" || f.Category == t.Category }, newest[domain.Template]), nil
}

func (s *Store) GetTemplate(_ context.Context, id string) (domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.templates[id]
	if !ok {
		return domain.Template{}, domain.ErrNotFound
	}
	return e.v, nil
}

func (s *Store) CreateTemplate(_ context.Context, t domain.Template) (domain.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, now := s.stamp(&t.ID)
	t.CreatedAt, t.UpdatedAt = now, now
	t.Tags = clone(t.Tags)
	s.templates[t.ID] = entry[domain.Template]{seq, t}
	return t, nil
}

func (s *Store) UpdateTemplate(_ context.Context, id string, p domain.TemplatePatch) (domain.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.templates[id]
	if !ok {
		return domain.Template{}, domain.ErrNotFound
	}
	if p.Empty() {
		return e.v, nil
	}
	t := &e.v
	set(&t.Name, p.Name)
	set(&t.Description, p.Description)
	set(&t.Category, p.Category)
	if p.Tags != nil {
		t.Tags = clone(*p.Tags)
	}
	if p.Data != nil {
		t.Data = p.Data
	}
	t.UpdatedAt = s.now().UTC()
	s.templates[id] = e
	return e.v, nil
}

func (s *Store) DeleteTemplate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.templates, id)
	return nil
}

var _ domain.Store = (*Store)(nil)
