package htmlgen

import (
	"fmt"
	"regexp"
	"strings"

	"hotel_detail/internal/domain"
)

func has(s string) bool { return strings.TrimSpace(s) != "" }

// row writes a labelled line; blank values are skipped.
func row(b *strings.Builder, label, value string) {
	if !has(value) {
		return
	}
	fmt.Fprintf(b, `<div class="info-row"><span class="info-label">%s</span><span class="info-value">%s</span></div>`,
		EscapeHTML(label), multiline(value))
}

func list(b *strings.Builder, class string, items []string) {
	n := 0
	for _, it := range items {
		if !has(it) {
			continue
		}
		if n == 0 {
			fmt.Fprintf(b, `<ul class="%s">`, class)
		}
		fmt.Fprintf(b, `<li>%s</li>`, EscapeHTML(it))
		n++
	}
	if n > 0 {
		b.WriteString(`</ul>`)
	}
}

func heading(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<h2 class="section-title">%s</h2>`, EscapeHTML(title))
}

func displayDate(s string) string {
	if d := FormatDate(s); d != "" {
		return d
	}
	return strings.TrimSpace(s)
}

func dateRange(from, to string) string {
	a, z := displayDate(from), displayDate(to)
	switch {
	case a == "" && z == "":
		return ""
	case z == "":
		return a + " ~"
	case a == "":
		return "~ " + z
	}
	return a + " ~ " + z
}

func won(v float64) string {
	if v == 0 {
		return ""
	}
	return FormatPrice(v) + "원"
}

func isWebURL(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func HotelInfoHTML(h *domain.HotelInfo) string {
	if h == nil || h.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="hotel-info section">`)
	if has(h.ImageURL) {
		fmt.Fprintf(&b, `<img class="hotel-image" src="%s" alt="%s">`,
			EscapeHTML(ValidImageURL(h.ImageURL)), EscapeHTML(h.Name))
	}
	b.WriteString(`<div class="hotel-header">`)
	if has(h.Name) {
		fmt.Fprintf(&b, `<h1 class="hotel-name">%s</h1>`, EscapeHTML(h.Name))
	}
	if h.Rating > 0 {
		b.WriteString(HotelRating(h.Rating))
	}
	b.WriteString(`</div>`)
	if has(h.Description) {
		fmt.Fprintf(&b, `<div class="hotel-description">%s</div>`, multiline(h.Description))
	}
	b.WriteString(`<div class="hotel-contact">`)
	row(&b, "주소", h.Address)
	row(&b, "전화", h.Phone)
	if has(h.Email) {
		fmt.Fprintf(&b, `<div class="info-row"><span class="info-label">이메일</span><span class="info-value"><a href="mailto:%s">%s</a></span></div>`,
			EscapeHTML(strings.TrimSpace(h.Email)), EscapeHTML(h.Email))
	}
	if has(h.Website) {
		if isWebURL(h.Website) {
			fmt.Fprintf(&b, `<div class="info-row"><span class="info-label">웹사이트</span><span class="info-value"><a href="%s" target="_blank" rel="noopener">%s</a></span></div>`,
				EscapeHTML(strings.TrimSpace(h.Website)), EscapeHTML(h.Website))
		} else {
			row(&b, "웹사이트", h.Website)
		}
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func RoomsHTML(rooms []domain.RoomInfo) string {
	var items strings.Builder
	for _, r := range rooms {
		if r.Empty() {
			continue
		}
		items.WriteString(`<div class="room-info-section">`)
		if has(r.Image) {
			fmt.Fprintf(&items, `<img class="room-image" src="%s" alt="%s">`,
				EscapeHTML(ValidImageURL(r.Image)), EscapeHTML(r.Name))
		}
		if has(r.Name) {
			fmt.Fprintf(&items, `<h3 class="room-name">%s</h3>`, EscapeHTML(r.Name))
		}
		items.WriteString(`<div class="room-details">`)
		row(&items, "객실 타입", r.Type)
		row(&items, "구조", r.Structure)
		row(&items, "침대", r.BedType)
		row(&items, "전망", r.View)
		if r.StandardCapacity > 0 {
			row(&items, "기준 인원", fmt.Sprintf("%d명", r.StandardCapacity))
		}
		if r.MaxCapacity > 0 {
			row(&items, "최대 인원", fmt.Sprintf("%d명", r.MaxCapacity))
		}
		items.WriteString(`</div>`)
		if has(r.Description) {
			fmt.Fprintf(&items, `<p class="room-description">%s</p>`, multiline(r.Description))
		}
		list(&items, "room-amenities", r.Amenities)
		items.WriteString(`</div>`)
	}
	if items.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="rooms-container section">`)
	heading(&b, "객실 정보")
	b.WriteString(items.String())
	b.WriteString(`</div>`)
	return b.String()
}

var facilityGroups = []struct {
	class, label string
	pick         func(domain.Facilities) []domain.FacilityItem
}{
	{"general", "일반 시설", func(f domain.Facilities) []domain.FacilityItem { return f.General }},
	{"business", "비즈니스 시설", func(f domain.Facilities) []domain.FacilityItem { return f.Business }},
	{"leisure", "레저 시설", func(f domain.Facilities) []domain.FacilityItem { return f.Leisure }},
	{"dining", "식음료 시설", func(f domain.Facilities) []domain.FacilityItem { return f.Dining }},
}

func FacilitiesHTML(f *domain.Facilities) string {
	if f == nil || f.Empty() {
		return ""
	}
	var groups strings.Builder
	for _, g := range facilityGroups {
		var lis strings.Builder
		for _, it := range g.pick(*f) {
			if !has(it.Name) {
				continue
			}
			fmt.Fprintf(&lis, `<li><strong>%s</strong>`, EscapeHTML(it.Name))
			if has(it.Description) {
				fmt.Fprintf(&lis, ` - %s`, EscapeHTML(it.Description))
			}
			lis.WriteString(`</li>`)
		}
		if lis.Len() == 0 {
			continue
		}
		fmt.Fprintf(&groups, `<div class="facility-group facility-%s"><h3>%s</h3><ul>%s</ul></div>`,
			g.class, g.label, lis.String())
	}
	if groups.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="facilities-container section">`)
	heading(&b, "부대시설 안내")
	b.WriteString(groups.String())
	b.WriteString(`</div>`)
	return b.String()
}

func CheckinHTML(c *domain.CheckinInfo) string {
	if c == nil || c.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="checkin-info section">`)
	heading(&b, "체크인/체크아웃")
	b.WriteString(`<div class="checkin-times">`)
	row(&b, "체크인", c.CheckInTime)
	row(&b, "체크아웃", c.CheckOutTime)
	row(&b, "얼리 체크인", c.EarlyCheckIn)
	row(&b, "레이트 체크아웃", c.LateCheckOut)
	b.WriteString(`</div>`)
	if has(c.AdditionalInfo) {
		fmt.Fprintf(&b, `<p class="checkin-additional">%s</p>`, multiline(c.AdditionalInfo))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func PeriodHTML(p *domain.PeriodInfo) string {
	if p == nil || p.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="period-info section">`)
	heading(&b, "판매 및 투숙 기간")
	row(&b, "패키지명", p.PackageName)
	row(&b, "판매기간", dateRange(p.SaleStartDate, p.SaleEndDate))
	row(&b, "투숙기간", dateRange(p.StayStartDate, p.StayEndDate))
	row(&b, "상품 구성", p.PackageComposition)
	row(&b, "상품 특징", p.PackageFeatures)
	row(&b, "패키지 요금", won(p.PackagePrice))
	row(&b, "객실 단독 요금", won(p.RoomOnlyPrice))
	if has(p.BasicInfo) {
		fmt.Fprintf(&b, `<p class="period-basic">%s</p>`, multiline(p.BasicInfo))
	}
	if has(p.AdditionalInfo) {
		fmt.Fprintf(&b, `<p class="period-additional">%s</p>`, multiline(p.AdditionalInfo))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func PackagesHTML(pkgs []domain.PackageInfo) string {
	var items strings.Builder
	for _, p := range pkgs {
		if p.Empty() {
			continue
		}
		items.WriteString(`<div class="package-item">`)
		if has(p.Name) {
			fmt.Fprintf(&items, `<h3 class="package-name">%s</h3>`, EscapeHTML(p.Name))
		}
		if p.Price > 0 {
			fmt.Fprintf(&items, `<div class="package-price">%s</div>`, won(p.Price))
		}
		if has(p.Description) {
			fmt.Fprintf(&items, `<p class="package-description">%s</p>`, multiline(p.Description))
		}
		row(&items, "판매기간", dateRange(p.SalesPeriod.Start, p.SalesPeriod.End))
		row(&items, "투숙기간", dateRange(p.StayPeriod.Start, p.StayPeriod.End))
		row(&items, "상품 구성", p.ProductComposition)
		list(&items, "package-includes", p.Includes)
		if len(p.Notes) > 0 {
			items.WriteString(`<h4>유의사항</h4>`)
			list(&items, "package-notes", p.Notes)
		}
		if len(p.Constraints) > 0 {
			items.WriteString(`<h4>이용 제한</h4>`)
			list(&items, "package-constraints", p.Constraints)
		}
		items.WriteString(`</div>`)
	}
	if items.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="packages-info section">`)
	heading(&b, "패키지 정보")
	b.WriteString(items.String())
	b.WriteString(`</div>`)
	return b.String()
}

func priceCell(p domain.Prices, id domain.DayTypeID) string {
	if v, ok := p[id]; ok && v != 0 {
		return won(v)
	}
	return "-"
}

func priceRow(b *strings.Builder, label string, p domain.Prices, days []domain.DayType) {
	fmt.Fprintf(b, `<tr><td class="price-row-label">%s</td>`, EscapeHTML(label))
	for _, d := range days {
		fmt.Fprintf(b, `<td>%s</td>`, priceCell(p, d.ID))
	}
	b.WriteString(`</tr>`)
}

// PricingHTML emits one table per room: a single row for flat rates, one row per view otherwise.
func PricingHTML(p *domain.PricingTable) string {
	if p == nil || p.Empty() {
		return ""
	}
	days := p.DayTypes
	if len(days) == 0 {
		days = domain.DefaultDayTypes()
	}
	var b strings.Builder
	b.WriteString(`<div class="price-info section">`)
	heading(&b, "요금 안내")
	for _, l := range p.Lodges {
		if len(l.Rooms) == 0 {
			continue
		}
		b.WriteString(`<div class="lodge-price-section">`)
		if has(l.Name) {
			fmt.Fprintf(&b, `<h3 class="lodge-name">%s</h3>`, EscapeHTML(l.Name))
		}
		for _, r := range l.Rooms {
			title := r.RoomType
			if has(r.View) {
				title = strings.TrimSpace(title + " (" + r.View + ")")
			}
			b.WriteString(`<div class="room-price-table">`)
			if has(title) {
				fmt.Fprintf(&b, `<h4>%s</h4>`, EscapeHTML(title))
			}
			b.WriteString(`<table class="price-table"><thead><tr><th>구분</th>`)
			for _, d := range days {
				fmt.Fprintf(&b, `<th>%s</th>`, EscapeHTML(d.Label()))
			}
			b.WriteString(`</tr></thead><tbody>`)
			switch r.Kind {
			case domain.RateByView:
				for _, v := range r.Views {
					priceRow(&b, v.Name, v.Prices, days)
				}
			default:
				label := r.RoomType
				if !has(label) {
					label = "기본"
				}
				priceRow(&b, label, r.Prices, days)
			}
			b.WriteString(`</tbody></table></div>`)
		}
		b.WriteString(`</div>`)
	}
	if has(p.AdditionalChargesInfo) {
		fmt.Fprintf(&b, `<div class="additional-charges">%s</div>`, multiline(p.AdditionalChargesInfo))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func ruleTable(b *strings.Builder, title string, rules []domain.CancelRule) {
	if len(rules) == 0 {
		return
	}
	if title != "" {
		fmt.Fprintf(b, `<h3 class="cancel-season">%s</h3>`, title)
	}
	b.WriteString(`<table class="cancel-policy-table"><thead><tr><th>취소 시점</th><th>환불 비율</th></tr></thead><tbody>`)
	for _, r := range rules {
		fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td></tr>`, EscapeHTML(r.Days), EscapeHTML(r.Rate))
	}
	b.WriteString(`</tbody></table>`)
}

// CancelHTML renders the refund policy; description is free text shown above the tables.
func CancelHTML(c *domain.CancelPolicy, description string) string {
	empty := c == nil || c.Empty()
	if empty && !has(description) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="cancel-info section">`)
	heading(&b, "취소 및 환불 정책")
	if has(description) {
		fmt.Fprintf(&b, `<p class="cancel-description">%s</p>`, multiline(description))
	}
	if !empty {
		row(&b, "무료 취소", c.FreeCancellation)
		row(&b, "취소 수수료", c.CancellationFee)
		row(&b, "노쇼", c.NoShow)
		row(&b, "변경 정책", c.ModificationPolicy)
		rules := append(append([]domain.CancelRule{}, c.BeforeCheckIn...), c.AfterCheckIn...)
		ruleTable(&b, "", rules)
		ruleTable(&b, "비수기", c.OffSeason)
		ruleTable(&b, "성수기", c.HighSeason)
		if has(c.AdditionalPolicy) {
			fmt.Fprintf(&b, `<div class="additional-policy">%s</div>`, multiline(c.AdditionalPolicy))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}

func BookingHTML(bk *domain.BookingInfo) string {
	if bk == nil || bk.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="booking-info section">`)
	heading(&b, "예약 안내")
	if has(bk.Text) {
		fmt.Fprintf(&b, `<p class="booking-text">%s</p>`, multiline(bk.Text))
	}
	row(&b, "예약 방법", bk.ReservationMethod)
	row(&b, "결제 수단", strings.Join(bk.PaymentMethods, ", "))
	row(&b, "예약 확정", bk.ConfirmationTime)
	row(&b, "특별 요청", bk.SpecialRequests)
	b.WriteString(`</div>`)
	return b.String()
}

var classSafe = regexp.MustCompile(`^[a-z0-9-]+$`)

func noticeClass(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if !classSafe.MatchString(t) {
		return "general"
	}
	return t
}

func NoticesHTML(notices []domain.NoticeInfo) string {
	var items strings.Builder
	for _, n := range notices {
		if n.Empty() {
			continue
		}
		fmt.Fprintf(&items, `<div class="notice-item notice-%s">`, noticeClass(n.Type))
		if has(n.Title) {
			fmt.Fprintf(&items, `<h3 class="notice-title">%s</h3>`, EscapeHTML(n.Title))
		}
		if has(n.Content) {
			fmt.Fprintf(&items, `<p class="notice-content">%s</p>`, multiline(n.Content))
		}
		items.WriteString(`</div>`)
	}
	if items.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="notice-info section">`)
	heading(&b, "안내사항")
	b.WriteString(items.String())
	b.WriteString(`</div>`)
	return b.String()
}
