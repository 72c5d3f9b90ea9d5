// Package htmlgen renders hotel page data into a standalone HTML document.
package htmlgen

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_detail/internal/domain"
)

type Layout string

const (
	// LayoutFull is the detail page layout.
	LayoutFull Layout = "full"
	// LayoutComplete is the card layout.
	LayoutComplete Layout = "complete"
)

// ParseLayout maps a query value to a layout; "" selects LayoutFull.
func ParseLayout(s string) (Layout, bool) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutFull:
		return LayoutFull, true
	case LayoutComplete:
		return LayoutComplete, true
	}
	return "", false
}

type section struct {
	id          string
	placeholder string
	render      func(domain.PageData) string
}

// sections lists fragments in document order.
var sections = []section{
	{"hotel", "hotel", func(d domain.PageData) string { return HotelInfoHTML(d.Hotel) }},
	{"rooms", "room", func(d domain.PageData) string { return RoomsHTML(d.Rooms) }},
	{"facilities", "facilities", func(d domain.PageData) string { return FacilitiesHTML(d.Facilities) }},
	{"checkin", "", func(d domain.PageData) string { return CheckinHTML(d.Checkin) }},
	{"period", "period", func(d domain.PageData) string { return PeriodHTML(d.Period) + PackagesHTML(d.Packages) }},
	{"pricing", "price", func(d domain.PageData) string { return PricingHTML(d.Pricing) }},
	{"cancel", "cancel", func(d domain.PageData) string { return CancelHTML(d.Cancel, d.CancelDescription) }},
	{"booking", "booking", func(d domain.PageData) string { return BookingHTML(d.Booking) }},
	{"notices", "notice", func(d domain.PageData) string { return NoticesHTML(d.Notices) }},
}

func FullHotelHTML(d domain.PageData) string { return document(d, LayoutFull, false) }

func CompleteHTML(d domain.PageData) string { return document(d, LayoutComplete, false) }

// PreviewHTML is the detail layout with placeholders for empty sections.
func PreviewHTML(d domain.PageData) string { return document(d, LayoutFull, true) }

func Render(d domain.PageData, l Layout) string {
	if l == LayoutComplete {
		return CompleteHTML(d)
	}
	return FullHotelHTML(d)
}

func document(d domain.PageData, l Layout, placeholders bool) string {
	var body strings.Builder
	for _, s := range sections {
		frag := renderSection(s, d)
		if frag == "" && placeholders && s.placeholder != "" {
			frag = DefaultSectionHTML(s.placeholder)
		}
		body.WriteString(frag)
	}

	title := "호텔 정보"
	if d.Hotel != nil && has(d.Hotel.Name) {
		title = EscapeHTML(strings.TrimSpace(d.Hotel.Name))
	}
	style, container := detailStyle, "hotel-detail-container"
	if l == LayoutComplete {
		style, container = cardStyle, "container"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>%s</style>
</head>
<body>
<div class="%s">
%s
</div>
</body>
</html>
`, title, style, container, body.String())
}

// renderSection isolates a failing fragment so the rest of the page still renders.
func renderSection(s section, d domain.PageData) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("context", "renderSection").
				Str("section", s.id).
				Interface("panic", r).
				Msg("section render failed")
			out = ""
		}
	}()
	return s.render(d)
}
