package domain

import (
	"encoding/json"
	"time"
)

type Room struct {
	ID               string    `json:"id"`
	HotelID          string    `json:"hotelId"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Structure        string    `json:"structure"`
	BedType          string    `json:"bedType"`
	View             string    `json:"view"`
	StandardCapacity int       `json:"standardCapacity"`
	MaxCapacity      int       `json:"maxCapacity"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	Amenities        []string  `json:"amenities"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type RoomPatch struct {
	Name             *string
	Type             *string
	Structure        *string
	BedType          *string
	View             *string
	StandardCapacity *int
	MaxCapacity      *int
	Price            *float64
	Description      *string
	Image            *string
	Amenities        *[]string
	IsActive         *bool
}

func (p RoomPatch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Structure == nil && p.BedType == nil &&
		p.View == nil && p.StandardCapacity == nil && p.MaxCapacity == nil && p.Price == nil &&
		p.Description == nil && p.Image == nil && p.Amenities == nil && p.IsActive == nil
}

// Period is an inclusive date range kept as entered (usually YYYY-MM-DD).
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (p Period) Empty() bool { return p.Start == "" && p.End == "" }

type Package struct {
	ID                 string    `json:"id"`
	HotelID            string    `json:"hotelId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Includes           []string  `json:"includes"`
	SalesPeriod        Period    `json:"salesPeriod"`
	StayPeriod         Period    `json:"stayPeriod"`
	ProductComposition string    `json:"productComposition"`
	Notes              []string  `json:"notes"`
	Constraints        []string  `json:"constraints"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type PackagePatch struct {
	Name               *string
	Description        *string
	Price              *float64
	Includes           *[]string
	SalesPeriod        *Period
	StayPeriod         *Period
	ProductComposition *string
	Notes              *[]string
	Constraints        *[]string
	IsActive           *bool
}

func (p PackagePatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Includes == nil &&
		p.SalesPeriod == nil && p.StayPeriod == nil && p.ProductComposition == nil &&
		p.Notes == nil && p.Constraints == nil && p.IsActive == nil
}

type Notice struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  int       `json:"priority"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoticePatch struct {
	Title    *string
	Content  *string
	Priority *int
	Type     *string
	IsActive *bool
}

func (p NoticePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Priority == nil && p.Type == nil && p.IsActive == nil
}

// Template is a named snapshot of the whole editor form state.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Data        json.RawMessage `json:"data"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type TemplatePatch struct {
	Name        *string
	Description *string
	Category    *string
	Tags        *[]string
	Data        json.RawMessage
}

func (p TemplatePatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.Tags == nil && p.Data == nil
}

// ListFilter narrows child-entity listings. A nil Active lists both states.
type ListFilter struct {
	HotelID string
	Active  *bool
}

type TemplateFilter struct {
	Category string
}
