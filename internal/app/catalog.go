package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hotel_detail/internal/domain"
)

const copySuffix = " (복사본)"

// CatalogService validates and forwards entity CRUD to the store.
type CatalogService struct {
	store domain.Store
	now   func() time.Time
}

func NewCatalogService(s domain.Store) *CatalogService {
	return &CatalogService{store: s, now: time.Now}
}

// WithClock overrides the clock used for export timestamps.
func (s *CatalogService) WithClock(now func() time.Time) *CatalogService {
	s.now = now
	return s
}

func requireID(id string) error {
	if id == "" {
		return domain.Invalid("id는 필수입니다.")
	}
	return nil
}

// ensureHotel maps a missing parent hotel to ErrHotelNotFound.
func (s *CatalogService) ensureHotel(ctx context.Context, id string) error {
	if _, err := s.store.GetHotel(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("hotel %s: %w", id, domain.ErrHotelNotFound)
		}
		return err
	}
	return nil
}

/********** hotels **********/

func (s *CatalogService) ListHotels(ctx context.Context, f domain.ListFilter) ([]domain.Hotel, error) {
	return s.store.ListHotels(ctx, f)
}

func (s *CatalogService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	if err := requireID(id); err != nil {
		return domain.Hotel{}, err
	}
	return s.store.GetHotel(ctx, id)
}

func (s *CatalogService) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if h.Name == "" {
		return domain.Hotel{}, domain.Invalid("name은 필수입니다.")
	}
	return s.store.CreateHotel(ctx, h)
}

func (s *CatalogService) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	if err := requireID(id); err != nil {
		return domain.Hotel{}, err
	}
	return s.store.UpdateHotel(ctx, id, p)
}

func (s *CatalogService) DeleteHotel(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.store.DeleteHotel(ctx, id)
}

/********** rooms **********/

func (s *CatalogService) ListRooms(ctx context.Context, f domain.ListFilter) ([]domain.Room, error) {
	return s.store.ListRooms(ctx, f)
}

func (s *CatalogService) CreateRoom(ctx context.Context, r domain.Room) (domain.Room, error) {
	if r.HotelID == "" || r.Name == "" {
		return domain.Room{}, domain.Invalid("hotelId와 name은 필수입니다.")
	}
	if err := s.ensureHotel(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}
	return s.store.CreateRoom(ctx, r)
}

func (s *CatalogService) UpdateRoom(ctx context.Context, id string, p domain.RoomPatch) (domain.Room, error) {
	if err := requireID(id); err != nil {
		return domain.Room{}, err
	}
	return s.store.UpdateRoom(ctx, id, p)
}

func (s *CatalogService) DeleteRoom(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.store.DeleteRoom(ctx, id)
}

/********** packages **********/

func (s *CatalogService) ListPackages(ctx context.Context, f domain.ListFilter) ([]domain.Package, error) {
	return s.store.ListPackages(ctx, f)
}

func (s *CatalogService) CreatePackage(ctx context.Context, p domain.Package) (domain.Package, error) {
	if p.HotelID == "" || p.Name == "" {
		return domain.Package{}, domain.Invalid("hotelId와 name은 필수입니다.")
	}
	if err := s.ensureHotel(ctx, p.HotelID); err != nil {
		return domain.Package{}, err
	}
	return s.store.CreatePackage(ctx, p)
}

func (s *CatalogService) UpdatePackage(ctx context.Context, id string, p domain.PackagePatch) (domain.Package, error) {
	if err := requireID(id); err != nil {
		return domain.Package{}, err
	}
	return s.store.UpdatePackage(ctx, id, p)
}

func (s *CatalogService) DeletePackage(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.store.DeletePackage(ctx, id)
}

/********** notices **********/

func (s *CatalogService) ListNotices(ctx context.Context, f domain.ListFilter) ([]domain.Notice, error) {
	return s.store.ListNotices(ctx, f)
}

func (s *CatalogService) CreateNotice(ctx context.Context, n domain.Notice) (domain.Notice, error) {
	if n.HotelID == "" || n.Title == "" || n.Content == "" {
		return domain.Notice{}, domain.Invalid("hotelId, title, content는 필수입니다.")
	}
	if err := s.ensureHotel(ctx, n.HotelID); err != nil {
		return domain.Notice{}, err
	}
	return s.store.CreateNotice(ctx, n)
}

func (s *CatalogService) UpdateNotice(ctx context.Context, id string, p domain.NoticePatch) (domain.Notice, error) {
	if err := requireID(id); err != nil {
		return domain.Notice{}, err
	}
	return s.store.UpdateNotice(ctx, id, p)
}

func (s *CatalogService) DeleteNotice(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.store.DeleteNotice(ctx, id)
}

/********** export / duplicate **********/

type ExportInfo struct {
	ExportedAt   time.Time `json:"exportedAt"`
	Version      string    `json:"version"`
	DatabaseType string    `json:"databaseType"`
}

// HotelExport is a hotel with all of its child rows, active or not.
type HotelExport struct {
	Hotel      domain.Hotel     `json:"hotel"`
	Rooms      []domain.Room    `json:"rooms"`
	Packages   []domain.Package `json:"packages"`
	Notices    []domain.Notice  `json:"notices"`
	ExportInfo ExportInfo       `json:"exportInfo"`
}

func (s *CatalogService) children(ctx context.Context, hotelID string) ([]domain.Room, []domain.Package, []domain.Notice, error) {
	f := domain.ListFilter{HotelID: hotelID}
	var (
		rooms   []domain.Room
		pkgs    []domain.Package
		notices []domain.Notice
		g, gctx = errgroup.WithContext(ctx)
	)
	g.Go(func() (err error) { rooms, err = s.store.ListRooms(gctx, f); return })
	g.Go(func() (err error) { pkgs, err = s.store.ListPackages(gctx, f); return })
	g.Go(func() (err error) { notices, err = s.store.ListNotices(gctx, f); return })
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return rooms, pkgs, notices, nil
}

func (s *CatalogService) ExportHotel(ctx context.Context, id string) (HotelExport, error) {
	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return HotelExport{}, err
	}
	rooms, pkgs, notices, err := s.children(ctx, id)
	if err != nil {
		return HotelExport{}, err
	}
	return HotelExport{
		Hotel:      h,
		Rooms:      rooms,
		Packages:   pkgs,
		Notices:    notices,
		ExportInfo: ExportInfo{ExportedAt: s.now().UTC(), Version: "1.0", DatabaseType: "hotel_detail_db"},
	}, nil
}

// DuplicateHotel copies a hotel and its rooms, packages and notices.
// The copy is not transactional: a failure can leave a partial copy behind.
func (s *CatalogService) DuplicateHotel(ctx context.Context, id string) (domain.Hotel, error) {
	src, err := s.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	rooms, pkgs, notices, err := s.children(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}

	cp := src
	cp.ID, cp.Name = "", src.Name+copySuffix
	created, err := s.store.CreateHotel(ctx, cp)
	if err != nil {
		return domain.Hotel{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, r := range rooms {
			r.ID, r.HotelID = "", created.ID
			if _, err := s.store.CreateRoom(gctx, r); err != nil {
				return fmt.Errorf("copy room %s: %w", r.Name, err)
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, p := range pkgs {
			p.ID, p.HotelID = "", created.ID
			if _, err := s.store.CreatePackage(gctx, p); err != nil {
				return fmt.Errorf("copy package %s: %w", p.Name, err)
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, n := range notices {
			n.ID, n.HotelID = "", created.ID
			if _, err := s.store.CreateNotice(gctx, n); err != nil {
				return fmt.Errorf("copy notice %s: %w", n.Title, err)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return created, err
	}
	return created, nil
}
