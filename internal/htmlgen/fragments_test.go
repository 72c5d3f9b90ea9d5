package htmlgen_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_detail/internal/domain"
	"hotel_detail/internal/htmlgen"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFragments_EmptyInputYieldsEmptyString(t *testing.T) {
	assert.Empty(t, htmlgen.HotelInfoHTML(nil))
	assert.Empty(t, htmlgen.HotelInfoHTML(&domain.HotelInfo{}))
	assert.Empty(t, htmlgen.RoomsHTML(nil))
	assert.Empty(t, htmlgen.RoomsHTML([]domain.RoomInfo{{}}))
	assert.Empty(t, htmlgen.FacilitiesHTML(&domain.Facilities{}))
	assert.Empty(t, htmlgen.CheckinHTML(nil))
	assert.Empty(t, htmlgen.PeriodHTML(&domain.PeriodInfo{}))
	assert.Empty(t, htmlgen.PackagesHTML([]domain.PackageInfo{}))
	assert.Empty(t, htmlgen.PricingHTML(&domain.PricingTable{Lodges: []domain.Lodge{{Name: "A"}}}))
	assert.Empty(t, htmlgen.CancelHTML(nil, ""))
	assert.Empty(t, htmlgen.BookingHTML(&domain.BookingInfo{}))
	assert.Empty(t, htmlgen.NoticesHTML([]domain.NoticeInfo{{Type: "info"}}))
}

func TestHotelInfoHTML_EscapesOnce(t *testing.T) {
	out := htmlgen.HotelInfoHTML(&domain.HotelInfo{Name: "A&B Hotel"})
	assert.Equal(t, 1, strings.Count(out, "A&amp;B Hotel"))
	assert.NotContains(t, out, "&amp;amp;")
	assert.Equal(t, "A&B Hotel", parse(t, out).Find(".hotel-name").Text())
}

func TestHotelInfoHTML_Fields(t *testing.T) {
	out := htmlgen.HotelInfoHTML(&domain.HotelInfo{
		Name:        "Grand Plaza",
		Address:     "부산 해운대구 1",
		Description: "line1\nline2",
		ImageURL:    "http://localhost/x.png",
		Website:     "javascript:alert(1)",
		Rating:      4,
	})
	doc := parse(t, out)
	src, _ := doc.Find("img.hotel-image").Attr("src")
	assert.Equal(t, htmlgen.DefaultImageURL, src)
	assert.Equal(t, 4, doc.Find(".star-full").Length())
	assert.Contains(t, out, "line1<br>line2")
	assert.Equal(t, 0, doc.Find(".hotel-contact a[href^='javascript']").Length())
}

func TestRoomsHTML(t *testing.T) {
	out := htmlgen.RoomsHTML([]domain.RoomInfo{
		{Name: "Deluxe", BedType: "킹 베드", StandardCapacity: 2, MaxCapacity: 3, Amenities: []string{"WiFi", "<TV>"}},
		{},
	})
	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find(".room-info-section").Length())
	assert.Equal(t, "Deluxe", doc.Find(".room-name").Text())
	assert.Equal(t, 2, doc.Find(".room-amenities li").Length())
	assert.Contains(t, out, "&lt;TV&gt;")
	assert.Contains(t, out, "2명")
}

func TestFacilitiesHTML_GroupsInFixedOrder(t *testing.T) {
	out := htmlgen.FacilitiesHTML(&domain.Facilities{
		Dining:  []domain.FacilityItem{{Name: "뷔페", Description: "조식"}},
		General: []domain.FacilityItem{{Name: "주차장"}},
	})
	doc := parse(t, out)
	groups := doc.Find(".facility-group")
	require.Equal(t, 2, groups.Length())
	assert.True(t, groups.First().HasClass("facility-general"))
	assert.True(t, groups.Last().HasClass("facility-dining"))
}

func TestPricingHTML_MissingCellIsDash(t *testing.T) {
	out := htmlgen.PricingHTML(&domain.PricingTable{
		DayTypes: []domain.DayType{{ID: domain.Weekday, Name: "주중"}},
		Lodges: []domain.Lodge{{Name: "본관", Rooms: []domain.RoomRate{
			{Kind: domain.RateFlat, RoomType: "Deluxe", Prices: domain.Prices{domain.Friday: 100000}},
		}}},
	})
	doc := parse(t, out)
	assert.Equal(t, "주중", doc.Find(".price-table th").Eq(1).Text())
	assert.Equal(t, "-", doc.Find(".price-table tbody td").Eq(1).Text())
}

func TestPricingHTML_ByViewRows(t *testing.T) {
	out := htmlgen.PricingHTML(&domain.PricingTable{
		Lodges: []domain.Lodge{{Rooms: []domain.RoomRate{{
			Kind:     domain.RateByView,
			RoomType: "Suite",
			Views: []domain.ViewRate{
				{Name: "오션뷰", Prices: domain.Prices{domain.Weekday: 250000, domain.Saturday: 320000}},
				{Name: "시티뷰", Prices: domain.Prices{domain.Weekday: 200000}},
			},
		}}}},
	})
	doc := parse(t, out)
	rows := doc.Find(".price-table tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "오션뷰", rows.First().Find("td").First().Text())
	assert.Equal(t, "250,000원", rows.First().Find("td").Eq(1).Text())
	// default columns: weekday, friday, saturday, sunday
	assert.Equal(t, 5, doc.Find(".price-table thead th").Length())
	assert.Equal(t, "320,000원", rows.First().Find("td").Eq(3).Text())
}

func TestCancelHTML(t *testing.T) {
	out := htmlgen.CancelHTML(&domain.CancelPolicy{
		BeforeCheckIn: []domain.CancelRule{{Days: "7일 전", Rate: "100%"}},
		AfterCheckIn:  []domain.CancelRule{{Days: "당일", Rate: "0%"}},
		HighSeason:    []domain.CancelRule{{Days: "14일 전", Rate: "90%"}},
	}, "성수기에는 별도 규정이 적용됩니다.")
	doc := parse(t, out)
	tables := doc.Find(".cancel-policy-table")
	require.Equal(t, 2, tables.Length())
	assert.Equal(t, 2, tables.First().Find("tbody tr").Length())
	assert.Equal(t, "성수기", doc.Find(".cancel-season").Text())
	assert.Equal(t, 1, doc.Find(".cancel-description").Length())

	assert.NotEmpty(t, htmlgen.CancelHTML(nil, "설명만"))
}

func TestBookingHTML(t *testing.T) {
	out := htmlgen.BookingHTML(&domain.BookingInfo{Text: "전화 예약", PaymentMethods: []string{"카드", "현금"}})
	assert.Contains(t, out, "전화 예약")
	assert.Contains(t, out, "카드, 현금")
}

func TestNoticesHTML_TypeClassIsSanitized(t *testing.T) {
	out := htmlgen.NoticesHTML([]domain.NoticeInfo{
		{Title: "주차", Content: "유료", Type: "important"},
		{Content: "x", Type: `"><script>`},
	})
	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find(".notice-important").Length())
	assert.Equal(t, 1, doc.Find(".notice-general").Length())
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestBlockedHTML(t *testing.T) {
	out := htmlgen.BlockedHTML("목 데이터", []string{"호텔 정보", "객실 정보"})
	assert.Contains(t, out, "mock-data-warning")
	assert.Contains(t, out, "호텔 정보, 객실 정보")
}

func TestDefaultSectionHTML(t *testing.T) {
	assert.Contains(t, htmlgen.DefaultSectionHTML("price"), "요금 안내")
	assert.Contains(t, htmlgen.DefaultSectionHTML("unknown"), "정보 없음")
}
