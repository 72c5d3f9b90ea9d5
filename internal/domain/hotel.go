package domain

import (
	"encoding/json"
	"time"
)

type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Sections holds the page sections that are not separate entities
	// (facilities, checkin, pricing, cancel, booking, period) in form-state shape.
	Sections json.RawMessage `json:"sections,omitempty"`
}

// HotelPatch is a partial update; nil fields are left untouched.
type HotelPatch struct {
	Name        *string
	Address     *string
	Description *string
	ImageURL    *string
	Phone       *string
	Email       *string
	Website     *string
	Rating      *float64
	IsActive    *bool
	Sections    json.RawMessage
}

func (p HotelPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Description == nil && p.ImageURL == nil &&
		p.Phone == nil && p.Email == nil && p.Website == nil && p.Rating == nil &&
		p.IsActive == nil && p.Sections == nil
}
