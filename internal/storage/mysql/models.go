package mysql

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"hotel_detail/internal/domain"
)

func jsonFrom(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("context", "jsonFrom").Msg("marshal JSON column failed")
		return nil
	}
	return datatypes.JSON(b)
}

func parseJSONStrings(j datatypes.JSON) []string {
	if len(j) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func rawOrNil(b json.RawMessage) datatypes.JSON {
	if len(b) == 0 {
		return nil
	}
	return datatypes.JSON(b)
}

type hotelRow struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:255;not null"`
	Address     string  `gorm:"size:500"`
	Description string  `gorm:"type:text"`
	ImageURL    string  `gorm:"column:image_url;size:1000"`
	Phone       string  `gorm:"size:64"`
	Email       string  `gorm:"size:255"`
	Website     string  `gorm:"size:500"`
	Rating      float64 `gorm:"not null"`
	Sections    datatypes.JSON
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (hotelRow) TableName() string { return "hotels" }

func hotelFromDomain(h domain.Hotel) hotelRow {
	return hotelRow{
		ID: h.ID, Name: h.Name, Address: h.Address, Description: h.Description, ImageURL: h.ImageURL,
		Phone: h.Phone, Email: h.Email, Website: h.Website, Rating: h.Rating,
		Sections: rawOrNil(h.Sections), IsActive: h.IsActive,
	}
}

func (r hotelRow) toDomain() domain.Hotel {
	h := domain.Hotel{
		ID: r.ID, Name: r.Name, Address: r.Address, Description: r.Description, ImageURL: r.ImageURL,
		Phone: r.Phone, Email: r.Email, Website: r.Website, Rating: r.Rating,
		IsActive: r.IsActive, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
	if len(r.Sections) > 0 {
		h.Sections = json.RawMessage(r.Sections)
	}
	return h
}

type roomRow struct {
	ID               string `gorm:"primaryKey;size:36"`
	HotelID          string `gorm:"size:36;not null;index"`
	Name             string `gorm:"size:255;not null"`
	Type             string `gorm:"size:100"`
	Structure        string `gorm:"size:255"`
	BedType          string `gorm:"size:100"`
	View             string `gorm:"size:100"`
	StandardCapacity int
	MaxCapacity      int
	Price            float64
	Description      string `gorm:"type:text"`
	Image            string `gorm:"size:1000"`
	Amenities        datatypes.JSON
	IsActive         bool      `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

func (roomRow) TableName() string { return "rooms" }

func roomFromDomain(r domain.Room) roomRow {
	return roomRow{
		ID: r.ID, HotelID: r.HotelID, Name: r.Name, Type: r.Type, Structure: r.Structure,
		BedType: r.BedType, View: r.View, StandardCapacity: r.StandardCapacity, MaxCapacity: r.MaxCapacity,
		Price: r.Price, Description: r.Description, Image: r.Image,
		Amenities: jsonFrom(nonNil(r.Amenities)), IsActive: r.IsActive,
	}
}

func (r roomRow) toDomain() domain.Room {
	return domain.Room{
		ID: r.ID, HotelID: r.HotelID, Name: r.Name, Type: r.Type, Structure: r.Structure,
		BedType: r.BedType, View: r.View, StandardCapacity: r.StandardCapacity, MaxCapacity: r.MaxCapacity,
		Price: r.Price, Description: r.Description, Image: r.Image,
		Amenities: parseJSONStrings(r.Amenities), IsActive: r.IsActive,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type packageRow struct {
	ID                 string `gorm:"primaryKey;size:36"`
	HotelID            string `gorm:"size:36;not null;index"`
	Name               string `gorm:"size:255;not null"`
	Description        string `gorm:"type:text"`
	Price              float64
	Includes           datatypes.JSON
	SalesStart         string `gorm:"size:32"`
	SalesEnd           string `gorm:"size:32"`
	StayStart          string `gorm:"size:32"`
	StayEnd            string `gorm:"size:32"`
	ProductComposition string `gorm:"type:text"`
	Notes              datatypes.JSON
	Constraints        datatypes.JSON
	IsActive           bool      `gorm:"not null;index"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

func (packageRow) TableName() string { return "packages" }

func packageFromDomain(p domain.Package) packageRow {
	return packageRow{
		ID: p.ID, HotelID: p.HotelID, Name: p.Name, Description: p.Description, Price: p.Price,
		Includes:   jsonFrom(nonNil(p.Includes)),
		SalesStart: p.SalesPeriod.Start, SalesEnd: p.SalesPeriod.End,
		StayStart: p.StayPeriod.Start, StayEnd: p.StayPeriod.End,
		ProductComposition: p.ProductComposition,
		Notes:              jsonFrom(nonNil(p.Notes)),
		Constraints:        jsonFrom(nonNil(p.Constraints)),
		IsActive:           p.IsActive,
	}
}

func (r packageRow) toDomain() domain.Package {
	return domain.Package{
		ID: r.ID, HotelID: r.HotelID, Name: r.Name, Description: r.Description, Price: r.Price,
		Includes:           parseJSONStrings(r.Includes),
		SalesPeriod:        domain.Period{Start: r.SalesStart, End: r.SalesEnd},
		StayPeriod:         domain.Period{Start: r.StayStart, End: r.StayEnd},
		ProductComposition: r.ProductComposition,
		Notes:              parseJSONStrings(r.Notes),
		Constraints:        parseJSONStrings(r.Constraints),
		IsActive:           r.IsActive, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type noticeRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	HotelID   string    `gorm:"size:36;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	Priority  int       `gorm:"not null;index"`
	Type      string    `gorm:"size:32;not null"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (noticeRow) TableName() string { return "notices" }

func noticeFromDomain(n domain.Notice) noticeRow {
	return noticeRow{
		ID: n.ID, HotelID: n.HotelID, Title: n.Title, Content: n.Content,
		Priority: n.Priority, Type: n.Type, IsActive: n.IsActive,
	}
}

func (r noticeRow) toDomain() domain.Notice {
	return domain.Notice{
		ID: r.ID, HotelID: r.HotelID, Title: r.Title, Content: r.Content,
		Priority: r.Priority, Type: r.Type, IsActive: r.IsActive,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type templateRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:100;index"`
	Tags        datatypes.JSON
	Data        datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
}

func (templateRow) TableName() string { return "templates" }

func templateFromDomain(t domain.Template) templateRow {
	return templateRow{
		ID: t.ID, Name: t.Name, Description: t.Description, Category: t.Category,
		Tags: jsonFrom(nonNil(t.Tags)), Data: rawOrNil(t.Data),
	}
}

func (r templateRow) toDomain() domain.Template {
	return domain.Template{
		ID: r.ID, Name: r.Name, Description: r.Description, Category: r.Category,
		Tags: parseJSONStrings(r.Tags), Data: json.RawMessage(r.Data),
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
