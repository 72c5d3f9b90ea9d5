package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	ListHotels(ctx context.Context, f ListFilter) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	UpdateHotel(ctx context.Context, id string, p HotelPatch) (Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

type RoomRepository interface {
	ListRooms(ctx context.Context, f ListFilter) ([]Room, error)
	CreateRoom(ctx context.Context, r Room) (Room, error)
	UpdateRoom(ctx context.Context, id string, p RoomPatch) (Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

type PackageRepository interface {
	ListPackages(ctx context.Context, f ListFilter) ([]Package, error)
	CreatePackage(ctx context.Context, p Package) (Package, error)
	UpdatePackage(ctx context.Context, id string, p PackagePatch) (Package, error)
	DeletePackage(ctx context.Context, id string) error
}

// NoticeRepository lists notices by priority (desc), then newest first.
type NoticeRepository interface {
	ListNotices(ctx context.Context, f ListFilter) ([]Notice, error)
	CreateNotice(ctx context.Context, n Notice) (Notice, error)
	UpdateNotice(ctx context.Context, id string, p NoticePatch) (Notice, error)
	DeleteNotice(ctx context.Context, id string) error
}

type TemplateRepository interface {
	ListTemplates(ctx context.Context, f TemplateFilter) ([]Template, error)
	GetTemplate(ctx context.Context, id string) (Template, error)
	CreateTemplate(ctx context.Context, t Template) (Template, error)
	UpdateTemplate(ctx context.Context, id string, p TemplatePatch) (Template, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// Store is the full persistence surface. Missing rows surface as ErrNotFound.
type Store interface {
	HotelRepository
	RoomRepository
	PackageRepository
	NoticeRepository
	TemplateRepository
}

// PageStore keeps published HTML documents by key. ttl <= 0 keeps them forever.
type PageStore interface {
	Put(ctx context.Context, key, html string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Del(ctx context.Context, key string) error
}

// PageSource is a remote page API (used by the CLI).
type PageSource interface {
	GetTemplate(ctx context.Context, id string) (Template, error)
	GetHotelHTML(ctx context.Context, id, layout string) (string, error)
}
