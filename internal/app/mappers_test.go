package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
)

func TestDecodePage_AliasesAndAbsentSections(t *testing.T) {
	d, err := app.DecodePageJSON([]byte(`{
		"hotelInfo": {"hotelName": "그랜드 호텔", "location": {"address": "부산"}, "stars": "4,5"},
		"rooms": [{"roomName": "디럭스", "capacity": "2명", "maxCapacity": 4, "amenities": "WiFi, TV"}],
		"notices": {"title": "주차", "text": "무료", "priority": 2}
	}`))
	require.NoError(t, err)

	require.NotNil(t, d.Hotel)
	assert.Equal(t, "그랜드 호텔", d.Hotel.Name)
	assert.Equal(t, "부산", d.Hotel.Address)
	assert.Equal(t, 4.5, d.Hotel.Rating)

	require.Len(t, d.Rooms, 1)
	assert.Equal(t, 2, d.Rooms[0].StandardCapacity)
	assert.Equal(t, 4, d.Rooms[0].MaxCapacity)
	assert.Equal(t, []string{"WiFi", "TV"}, d.Rooms[0].Amenities)

	require.Len(t, d.Notices, 1)
	assert.Equal(t, "무료", d.Notices[0].Content)

	assert.Nil(t, d.Pricing)
	assert.Nil(t, d.Checkin)
	assert.Nil(t, d.Booking)
	assert.Empty(t, d.Packages)
}

func TestDecodePage_EmptyAliasFallsThrough(t *testing.T) {
	d := app.DecodePage(map[string]any{
		"hotelInfo": map[string]any{},
		"hotel":     map[string]any{"name": "B"},
	})
	require.NotNil(t, d.Hotel)
	assert.Equal(t, "B", d.Hotel.Name)
}

func TestDecodePage_PricingShapes(t *testing.T) {
	d, err := app.DecodePageJSON([]byte(`{
		"priceInfo": {
			"dayTypes": [{"id": "weekday", "name": "주중"}, {"type": "saturday"}, {"id": "bogus"}],
			"lodges": [{
				"name": "본관",
				"rooms": [
					{"roomType": "디럭스", "price": {"weekday": "120,000원", "saturday": {"price": 150000}, "someday": 1}},
					{"roomType": "스위트", "viewTypes": [{"name": "오션뷰", "prices": {"weekday": 200000}}]}
				]
			}],
			"additionalInfo": "추가 인원 1만원"
		}
	}`))
	require.NoError(t, err)
	require.NotNil(t, d.Pricing)
	p := d.Pricing

	assert.Equal(t, []domain.DayType{{ID: domain.Weekday, Name: "주중"}, {ID: domain.Saturday}}, p.DayTypes)
	assert.Equal(t, "추가 인원 1만원", p.AdditionalChargesInfo)

	require.Len(t, p.Lodges, 1)
	rooms := p.Lodges[0].Rooms
	require.Len(t, rooms, 2)

	assert.Equal(t, domain.RateFlat, rooms[0].Kind)
	assert.Equal(t, domain.Prices{domain.Weekday: 120000, domain.Saturday: 150000}, rooms[0].Prices)

	assert.Equal(t, domain.RateByView, rooms[1].Kind)
	require.Len(t, rooms[1].Views, 1)
	assert.Equal(t, "오션뷰", rooms[1].Views[0].Name)
	assert.Equal(t, 200000.0, rooms[1].Views[0].Prices[domain.Weekday])
}

func TestDecodePage_CancelAndBooking(t *testing.T) {
	d := app.DecodePage(map[string]any{
		"cancel": map[string]any{
			"freeCancellation": "3일 전까지 무료",
			"rules":            []any{map[string]any{"days": "1일 전", "rate": 50.0}, map[string]any{}},
			"peakSeason":       []any{map[string]any{"timing": "7일 전", "refundRate": "30%"}},
		},
		"cancelDescription": "성수기 별도",
		"booking":           "전화 예약만 가능",
	})
	require.NotNil(t, d.Cancel)
	assert.Equal(t, "3일 전까지 무료", d.Cancel.FreeCancellation)
	assert.Equal(t, []domain.CancelRule{{Days: "1일 전", Rate: "50%"}}, d.Cancel.BeforeCheckIn)
	assert.Equal(t, []domain.CancelRule{{Days: "7일 전", Rate: "30%"}}, d.Cancel.HighSeason)
	assert.Equal(t, "성수기 별도", d.CancelDescription)

	require.NotNil(t, d.Booking)
	assert.Equal(t, "전화 예약만 가능", d.Booking.Text)
}

func TestDecodePage_FacilitiesListIsGeneral(t *testing.T) {
	d := app.DecodePage(map[string]any{
		"facilities": []any{"수영장", map[string]any{"name": "피트니스", "description": "24시간"}, " "},
	})
	require.NotNil(t, d.Facilities)
	assert.Equal(t, []domain.FacilityItem{{Name: "수영장"}, {Name: "피트니스", Description: "24시간"}}, d.Facilities.General)
}

func TestDecodePageJSON_Invalid(t *testing.T) {
	_, err := app.DecodePageJSON([]byte(`[1,2]`))
	assert.Error(t, err)
}
