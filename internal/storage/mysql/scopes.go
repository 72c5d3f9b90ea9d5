package mysql

import (
	"gorm.io/gorm"

	"hotel_detail/internal/domain"
)

type scope = func(*gorm.DB) *gorm.DB

func byHotel(id string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == "" {
			return db
		}
		return db.Where("hotel_id = ?", id)
	}
}

func activeIs(a *bool) scope {
	return func(db *gorm.DB) *gorm.DB {
		if a == nil {
			return db
		}
		return db.Where("is_active = ?", *a)
	}
}

func byCategory(c string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if c == "" {
			return db
		}
		return db.Where("category = ?", c)
	}
}

func filtered(f domain.ListFilter) scope {
	return func(db *gorm.DB) *gorm.DB { return db.Scopes(byHotel(f.HotelID), activeIs(f.Active)) }
}

func newestFirst(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC").Order("id") }

// byPriority orders notices: highest priority first, then newest.
func byPriority(db *gorm.DB) *gorm.DB {
	return db.Order("priority DESC").Order("created_at DESC").Order("id")
}
