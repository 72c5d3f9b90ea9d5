package app

import (
	"encoding/json"
	"strings"

	"hotel_detail/internal/domain"
)

// Payload decoders for the CRUD routes. Patch decoders only set fields whose
// keys are present (and not null) so that absent fields are preserved.

func PayloadID(m map[string]any) string { return strings.TrimSpace(lookupStr(m, "id")) }

func present(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func optStr(m map[string]any, keys ...string) *string {
	if v, ok := present(m, keys...); ok {
		s := textOf(v)
		return &s
	}
	return nil
}

func optAmount(m map[string]any, keys ...string) *float64 {
	if v, ok := present(m, keys...); ok {
		if f, ok := parseAmount(v); ok {
			return &f
		}
	}
	return nil
}

func optInt(m map[string]any, keys ...string) *int {
	if _, ok := present(m, keys...); ok {
		if n := firstInt64Flexible(m, keys...); n != nil {
			x := int(*n)
			return &x
		}
	}
	return nil
}

func optBool(m map[string]any, keys ...string) *bool {
	v, ok := present(m, keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		b := !strings.EqualFold(strings.TrimSpace(t), "false")
		return &b
	}
	return nil
}

func optStrings(m map[string]any, keys ...string) *[]string {
	if _, ok := present(m, keys...); ok {
		s := firstSliceStrings(m, keys...)
		if s == nil {
			s = []string{}
		}
		return &s
	}
	return nil
}

func optPeriod(m map[string]any, key string) *domain.Period {
	v, ok := present(m, key)
	if !ok {
		return nil
	}
	o := object(v)
	return &domain.Period{Start: lookupStr(o, "start"), End: lookupStr(o, "end")}
}

func optJSON(m map[string]any, keys ...string) json.RawMessage {
	v, ok := present(m, keys...)
	if !ok {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

func val[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

/********** hotels **********/

func HotelPatchFromPayload(m map[string]any) domain.HotelPatch {
	return domain.HotelPatch{
		Name:        optStr(m, "name"),
		Address:     optStr(m, "address"),
		Description: optStr(m, "description"),
		ImageURL:    optStr(m, "imageUrl", "image"),
		Phone:       optStr(m, "phone"),
		Email:       optStr(m, "email"),
		Website:     optStr(m, "website"),
		Rating:      getFloatFlexible(m, "rating"),
		IsActive:    optBool(m, "isActive"),
		Sections:    optJSON(m, "sections"),
	}
}

func HotelFromPayload(m map[string]any) domain.Hotel {
	p := HotelPatchFromPayload(m)
	return domain.Hotel{
		Name:        strings.TrimSpace(val(p.Name)),
		Address:     val(p.Address),
		Description: val(p.Description),
		ImageURL:    val(p.ImageURL),
		Phone:       val(p.Phone),
		Email:       val(p.Email),
		Website:     val(p.Website),
		Rating:      val(p.Rating),
		IsActive:    boolOr(p.IsActive, true),
		Sections:    p.Sections,
	}
}

/********** rooms **********/

func RoomPatchFromPayload(m map[string]any) domain.RoomPatch {
	return domain.RoomPatch{
		Name:             optStr(m, "name"),
		Type:             optStr(m, "type", "roomType"),
		Structure:        optStr(m, "structure"),
		BedType:          optStr(m, "bedType"),
		View:             optStr(m, "view"),
		StandardCapacity: optInt(m, "standardCapacity"),
		MaxCapacity:      optInt(m, "maxCapacity"),
		Price:            optAmount(m, "price"),
		Description:      optStr(m, "description"),
		Image:            optStr(m, "image", "imageUrl"),
		Amenities:        optStrings(m, "amenities"),
		IsActive:         optBool(m, "isActive"),
	}
}

func RoomFromPayload(m map[string]any) domain.Room {
	p := RoomPatchFromPayload(m)
	return domain.Room{
		HotelID:          strings.TrimSpace(lookupStr(m, "hotelId")),
		Name:             strings.TrimSpace(val(p.Name)),
		Type:             val(p.Type),
		Structure:        val(p.Structure),
		BedType:          val(p.BedType),
		View:             val(p.View),
		StandardCapacity: val(p.StandardCapacity),
		MaxCapacity:      val(p.MaxCapacity),
		Price:            val(p.Price),
		Description:      val(p.Description),
		Image:            val(p.Image),
		Amenities:        val(p.Amenities),
		IsActive:         boolOr(p.IsActive, true),
	}
}

/********** packages **********/

func PackagePatchFromPayload(m map[string]any) domain.PackagePatch {
	return domain.PackagePatch{
		Name:               optStr(m, "name"),
		Description:        optStr(m, "description"),
		Price:              optAmount(m, "price"),
		Includes:           optStrings(m, "includes"),
		SalesPeriod:        optPeriod(m, "salesPeriod"),
		StayPeriod:         optPeriod(m, "stayPeriod"),
		ProductComposition: optStr(m, "productComposition"),
		Notes:              optStrings(m, "notes"),
		Constraints:        optStrings(m, "constraints"),
		IsActive:           optBool(m, "isActive"),
	}
}

func PackageFromPayload(m map[string]any) domain.Package {
	p := PackagePatchFromPayload(m)
	return domain.Package{
		HotelID:            strings.TrimSpace(lookupStr(m, "hotelId")),
		Name:               strings.TrimSpace(val(p.Name)),
		Description:        val(p.Description),
		Price:              val(p.Price),
		Includes:           val(p.Includes),
		SalesPeriod:        val(p.SalesPeriod),
		StayPeriod:         val(p.StayPeriod),
		ProductComposition: val(p.ProductComposition),
		Notes:              val(p.Notes),
		Constraints:        val(p.Constraints),
		IsActive:           boolOr(p.IsActive, true),
	}
}

/********** notices **********/

func NoticePatchFromPayload(m map[string]any) domain.NoticePatch {
	return domain.NoticePatch{
		Title:    optStr(m, "title"),
		Content:  optStr(m, "content"),
		Priority: optInt(m, "priority"),
		Type:     optStr(m, "type"),
		IsActive: optBool(m, "isActive"),
	}
}

func NoticeFromPayload(m map[string]any) domain.Notice {
	p := NoticePatchFromPayload(m)
	n := domain.Notice{
		HotelID:  strings.TrimSpace(lookupStr(m, "hotelId")),
		Title:    strings.TrimSpace(val(p.Title)),
		Content:  val(p.Content),
		Priority: val(p.Priority),
		Type:     val(p.Type),
		IsActive: boolOr(p.IsActive, true),
	}
	if n.Type == "" {
		n.Type = "general"
	}
	return n
}

/********** templates **********/

func TemplatePatchFromPayload(m map[string]any) domain.TemplatePatch {
	return domain.TemplatePatch{
		Name:        optStr(m, "name"),
		Description: optStr(m, "description"),
		Category:    optStr(m, "category"),
		Tags:        optStrings(m, "tags"),
		Data:        optJSON(m, "data"),
	}
}

func TemplateFromPayload(m map[string]any) domain.Template {
	p := TemplatePatchFromPayload(m)
	return domain.Template{
		Name:        strings.TrimSpace(val(p.Name)),
		Description: val(p.Description),
		Category:    val(p.Category),
		Tags:        val(p.Tags),
		Data:        p.Data,
	}
}
