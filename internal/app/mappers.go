package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_detail/internal/domain"
)

/********** alias registries (single source of truth) **********/

// pageAliases maps each page section to the form-state keys it may arrive under.
var pageAliases = map[string][]string{
	"hotel":             {"hotelInfo", "hotel"},
	"rooms":             {"roomInfo", "rooms"},
	"packages":          {"packageInfo", "packages"},
	"pricing":           {"priceInfo", "pricing"},
	"cancel":            {"cancelInfo", "cancel"},
	"facilities":        {"facilitiesInfo", "facilities"},
	"checkin":           {"checkinInfo", "checkin"},
	"period":            {"periodInfo", "period"},
	"booking":           {"bookingInfo", "booking"},
	"notices":           {"noticeInfo", "notices"},
	"cancelDescription": {"cancelDescription", "cancelInfo.description"},
}

var hotelAliases = map[string][]string{
	"name":        {"name", "hotelName"},
	"address":     {"address", "location.address"},
	"description": {"description", "desc"},
	"image":       {"imageUrl", "image", "imageURL", "thumbnail"},
	"phone":       {"phone", "tel", "contact.phone"},
	"email":       {"email", "contact.email"},
	"website":     {"website", "homepage", "url"},
}

var roomAliases = map[string][]string{
	"name":        {"name", "roomName"},
	"type":        {"type", "roomType"},
	"structure":   {"structure"},
	"bedType":     {"bedType", "bed"},
	"view":        {"view", "viewType"},
	"description": {"description", "desc"},
	"image":       {"image", "imageUrl", "imageURL"},
}

var packageAliases = map[string][]string{
	"name":        {"name", "packageName", "title"},
	"description": {"description", "desc"},
	"composition": {"productComposition", "composition"},
	"salesStart":  {"salesPeriod.start", "saleStartDate", "salesStart"},
	"salesEnd":    {"salesPeriod.end", "saleEndDate", "salesEnd"},
	"stayStart":   {"stayPeriod.start", "stayStartDate", "stayStart"},
	"stayEnd":     {"stayPeriod.end", "stayEndDate", "stayEnd"},
	"date":        {"date"},
}

var checkinAliases = map[string][]string{
	"checkIn":    {"checkInTime", "checkIn", "checkin"},
	"checkOut":   {"checkOutTime", "checkOut", "checkout"},
	"early":      {"earlyCheckIn", "earlyCheckin"},
	"late":       {"lateCheckOut", "lateCheckout"},
	"additional": {"additionalInfo", "notes"},
}

var periodAliases = map[string][]string{
	"saleStart":   {"saleStartDate", "salesPeriod.start"},
	"saleEnd":     {"saleEndDate", "salesPeriod.end"},
	"stayStart":   {"stayStartDate", "stayPeriod.start"},
	"stayEnd":     {"stayEndDate", "stayPeriod.end"},
	"name":        {"packageName"},
	"composition": {"packageComposition", "composition"},
	"features":    {"packageFeatures", "features"},
	"basic":       {"basicInfo"},
	"additional":  {"additionalInfo"},
}

var cancelAliases = map[string][]string{
	"free":         {"freeCancellation"},
	"fee":          {"cancellationFee"},
	"noShow":       {"noShow"},
	"modification": {"modificationPolicy"},
	"additional":   {"additionalPolicy", "additionalInfo"},
	"ruleDays":     {"days", "period", "timing", "when"},
	"ruleRate":     {"rate", "refundRate", "refund", "percent"},
}

var bookingAliases = map[string][]string{
	"text":         {"text", "content", "info", "description"},
	"method":       {"reservationMethod", "method"},
	"confirmation": {"confirmationTime"},
	"requests":     {"specialRequests"},
}

var noticeAliases = map[string][]string{
	"title":   {"title"},
	"content": {"content", "text", "body"},
	"type":    {"type", "category"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string (or number, as text) at path, or "".
func lookupStr(m map[string]any, path string) string {
	return textOf(lookupAny(m, path))
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func alias(m map[string]any, aliases map[string][]string, key string) string {
	return deref(firstNonEmptyAlias(m, aliases, key))
}

// firstPresent returns the first alias value that is not null and not empty.
func firstPresent(m map[string]any, aliases map[string][]string, key string) any {
	for _, p := range aliases[key] {
		switch v := lookupAny(m, p).(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			return v
		case []any:
			if len(v) == 0 {
				continue
			}
			return v
		case map[string]any:
			if len(v) == 0 {
				continue
			}
			return v
		default:
			return v
		}
	}
	return nil
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// parseAmount reads a money value: numbers, "120,000", "120,000원" or {price: n}.
func parseAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.NewReplacer(",", "", "원", "", " ", "", "₩", "").Replace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case map[string]any:
		return parseAmount(t["price"])
	}
	return 0, false
}

// getAmountFlexible: money value from several paths.
func getAmountFlexible(m map[string]any, paths ...string) float64 {
	for _, k := range paths {
		if f, ok := parseAmount(lookupAny(m, k)); ok {
			return f
		}
	}
	return 0
}

// firstInt64Flexible: int64 from several paths (float64/int/string).
func firstInt64Flexible(m map[string]any, paths ...string) *int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int64(v)
			return &x
		case int:
			x := int64(v)
			return &x
		case int64:
			x := v
			return &x
		case string:
			s := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "명"))
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return &n
			}
		}
	}
	return nil
}

func intFlexible(m map[string]any, paths ...string) int {
	if n := firstInt64Flexible(m, paths...); n != nil {
		return int(*n)
	}
	return 0
}

// firstSliceStrings: accept []any with either strings or {url/src/name},
// or a single comma-separated string.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		switch raw := lookupAny(m, k).(type) {
		case []any:
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				case map[string]any:
					for _, f := range []string{"url", "src", "name", "text"} {
						if u, ok := t[f].(string); ok && u != "" {
							out = append(out, u)
							break
						}
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			var out []string
			for _, p := range strings.Split(raw, ",") {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// objects accepts a list of objects or a single object.
func objects(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, it := range t {
			if m, ok := it.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

/********** page mapper **********/

// DecodePage turns loose editor form state into typed page data.
// Unknown keys are ignored and absent sections stay nil.
func DecodePage(raw map[string]any) domain.PageData {
	var d domain.PageData
	if raw == nil {
		return d
	}
	if h := object(firstPresent(raw, pageAliases, "hotel")); h != nil {
		hi := mapHotelInfo(h)
		d.Hotel = &hi
	}
	for _, r := range objects(firstPresent(raw, pageAliases, "rooms")) {
		d.Rooms = append(d.Rooms, mapRoomInfo(r))
	}
	for _, p := range objects(firstPresent(raw, pageAliases, "packages")) {
		d.Packages = append(d.Packages, mapPackageInfo(p))
	}
	if v := firstPresent(raw, pageAliases, "facilities"); v != nil {
		f := mapFacilities(v)
		d.Facilities = &f
	}
	if c := object(firstPresent(raw, pageAliases, "checkin")); c != nil {
		d.Checkin = &domain.CheckinInfo{
			CheckInTime:    alias(c, checkinAliases, "checkIn"),
			CheckOutTime:   alias(c, checkinAliases, "checkOut"),
			EarlyCheckIn:   alias(c, checkinAliases, "early"),
			LateCheckOut:   alias(c, checkinAliases, "late"),
			AdditionalInfo: alias(c, checkinAliases, "additional"),
		}
	}
	if p := object(firstPresent(raw, pageAliases, "period")); p != nil {
		d.Period = &domain.PeriodInfo{
			SaleStartDate:      alias(p, periodAliases, "saleStart"),
			SaleEndDate:        alias(p, periodAliases, "saleEnd"),
			StayStartDate:      alias(p, periodAliases, "stayStart"),
			StayEndDate:        alias(p, periodAliases, "stayEnd"),
			PackageName:        alias(p, periodAliases, "name"),
			PackageComposition: alias(p, periodAliases, "composition"),
			PackageFeatures:    alias(p, periodAliases, "features"),
			PackagePrice:       getAmountFlexible(p, "packagePrice", "price"),
			RoomOnlyPrice:      getAmountFlexible(p, "roomOnlyPrice"),
			BasicInfo:          alias(p, periodAliases, "basic"),
			AdditionalInfo:     alias(p, periodAliases, "additional"),
		}
	}
	if p := object(firstPresent(raw, pageAliases, "pricing")); p != nil {
		pt := mapPricing(p)
		d.Pricing = &pt
	}
	if c := object(firstPresent(raw, pageAliases, "cancel")); c != nil {
		cp := mapCancel(c)
		d.Cancel = &cp
	}
	d.CancelDescription = alias(raw, pageAliases, "cancelDescription")
	switch b := firstPresent(raw, pageAliases, "booking").(type) {
	case string:
		d.Booking = &domain.BookingInfo{Text: b}
	case map[string]any:
		d.Booking = &domain.BookingInfo{
			Text:              alias(b, bookingAliases, "text"),
			ReservationMethod: alias(b, bookingAliases, "method"),
			PaymentMethods:    firstSliceStrings(b, "paymentMethods", "payments"),
			ConfirmationTime:  alias(b, bookingAliases, "confirmation"),
			SpecialRequests:   alias(b, bookingAliases, "requests"),
		}
	}
	for _, n := range objects(firstPresent(raw, pageAliases, "notices")) {
		d.Notices = append(d.Notices, domain.NoticeInfo{
			Title:    alias(n, noticeAliases, "title"),
			Content:  alias(n, noticeAliases, "content"),
			Priority: intFlexible(n, "priority"),
			Type:     alias(n, noticeAliases, "type"),
		})
	}
	return d
}

// DecodePageJSON decodes a JSON form-state document.
func DecodePageJSON(b []byte) (domain.PageData, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.PageData{}, fmt.Errorf("decode page data: %w", err)
	}
	return DecodePage(raw), nil
}

func mapHotelInfo(h map[string]any) domain.HotelInfo {
	out := domain.HotelInfo{
		Name:        alias(h, hotelAliases, "name"),
		Address:     alias(h, hotelAliases, "address"),
		Description: alias(h, hotelAliases, "description"),
		ImageURL:    alias(h, hotelAliases, "image"),
		Phone:       alias(h, hotelAliases, "phone"),
		Email:       alias(h, hotelAliases, "email"),
		Website:     alias(h, hotelAliases, "website"),
	}
	if f := getFloatFlexible(h, "rating", "stars", "grade"); f != nil {
		out.Rating = *f
	}
	return out
}

func mapRoomInfo(r map[string]any) domain.RoomInfo {
	return domain.RoomInfo{
		Name:             alias(r, roomAliases, "name"),
		Type:             alias(r, roomAliases, "type"),
		Structure:        alias(r, roomAliases, "structure"),
		BedType:          alias(r, roomAliases, "bedType"),
		View:             alias(r, roomAliases, "view"),
		StandardCapacity: intFlexible(r, "standardCapacity", "capacity.standard", "capacity"),
		MaxCapacity:      intFlexible(r, "maxCapacity", "capacity.max"),
		Description:      alias(r, roomAliases, "description"),
		Image:            alias(r, roomAliases, "image"),
		Amenities:        firstSliceStrings(r, "amenities", "facilities"),
	}
}

func mapPackageInfo(p map[string]any) domain.PackageInfo {
	return domain.PackageInfo{
		Name:        alias(p, packageAliases, "name"),
		Description: alias(p, packageAliases, "description"),
		Price:       getAmountFlexible(p, "price", "packagePrice"),
		Includes:    firstSliceStrings(p, "includes", "inclusions"),
		SalesPeriod: domain.Period{
			Start: alias(p, packageAliases, "salesStart"),
			End:   alias(p, packageAliases, "salesEnd"),
		},
		StayPeriod: domain.Period{
			Start: alias(p, packageAliases, "stayStart"),
			End:   alias(p, packageAliases, "stayEnd"),
		},
		ProductComposition: alias(p, packageAliases, "composition"),
		Notes:              firstSliceStrings(p, "notes"),
		Constraints:        firstSliceStrings(p, "constraints", "restrictions"),
		Date:               alias(p, packageAliases, "date"),
	}
}

func facilityItems(v any) []domain.FacilityItem {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]domain.FacilityItem, 0, len(raw))
	for _, it := range raw {
		switch t := it.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, domain.FacilityItem{Name: s})
			}
		case map[string]any:
			name := lookupStr(t, "name")
			if name == "" {
				continue
			}
			out = append(out, domain.FacilityItem{Name: name, Description: lookupStr(t, "description")})
		}
	}
	return out
}

// mapFacilities accepts the four-bucket object or a bare list (treated as general).
func mapFacilities(v any) domain.Facilities {
	if m, ok := v.(map[string]any); ok {
		return domain.Facilities{
			General:  facilityItems(m["general"]),
			Business: facilityItems(m["business"]),
			Leisure:  facilityItems(m["leisure"]),
			Dining:   facilityItems(m["dining"]),
		}
	}
	return domain.Facilities{General: facilityItems(v)}
}

// mapPrices keeps known day types only; cells may be numbers, strings or {price}.
func mapPrices(v any) domain.Prices {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(domain.Prices, len(m))
	for k, cell := range m {
		id, ok := domain.ParseDayTypeID(k)
		if !ok {
			log.Warn().Str("context", "mapPrices").Str("dayType", k).Msg("unknown day type dropped")
			continue
		}
		if f, ok := parseAmount(cell); ok {
			out[id] = f
		}
	}
	return out
}

// mapRoomRate resolves the two stored price shapes into one tagged value.
func mapRoomRate(r map[string]any) domain.RoomRate {
	rate := domain.RoomRate{
		RoomType: lookupStr(r, "roomType"),
		View:     lookupStr(r, "view"),
	}
	if rate.RoomType == "" {
		rate.RoomType = alias(r, roomAliases, "name")
	}
	if views := objects(r["viewTypes"]); len(views) > 0 {
		rate.Kind = domain.RateByView
		for _, v := range views {
			name := lookupStr(v, "name")
			if name == "" {
				name = lookupStr(v, "viewType")
			}
			prices := mapPrices(v["prices"])
			if prices == nil {
				prices = mapPrices(v["price"])
			}
			rate.Views = append(rate.Views, domain.ViewRate{Name: name, Prices: prices})
		}
		return rate
	}
	rate.Kind = domain.RateFlat
	rate.Prices = mapPrices(r["price"])
	if rate.Prices == nil {
		rate.Prices = mapPrices(r["prices"])
	}
	return rate
}

func mapPricing(p map[string]any) domain.PricingTable {
	var out domain.PricingTable
	for _, l := range objects(p["lodges"]) {
		lodge := domain.Lodge{Name: lookupStr(l, "name")}
		if lodge.Name == "" {
			lodge.Name = lookupStr(l, "lodgeName")
		}
		for _, r := range objects(l["rooms"]) {
			lodge.Rooms = append(lodge.Rooms, mapRoomRate(r))
		}
		out.Lodges = append(out.Lodges, lodge)
	}
	for _, d := range objects(p["dayTypes"]) {
		key := lookupStr(d, "id")
		id, ok := domain.ParseDayTypeID(key)
		if !ok {
			key = lookupStr(d, "type")
			id, ok = domain.ParseDayTypeID(key)
		}
		if !ok {
			log.Warn().Str("context", "mapPricing").Str("dayType", key).Msg("unknown day type dropped")
			continue
		}
		out.DayTypes = append(out.DayTypes, domain.DayType{ID: id, Name: lookupStr(d, "name")})
	}
	out.AdditionalChargesInfo = lookupStr(p, "additionalChargesInfo")
	if out.AdditionalChargesInfo == "" {
		out.AdditionalChargesInfo = lookupStr(p, "additionalInfo")
	}
	return out
}

func mapRules(v any) []domain.CancelRule {
	var out []domain.CancelRule
	for _, r := range objects(v) {
		rule := domain.CancelRule{
			Days: alias(r, cancelAliases, "ruleDays"),
			Rate: alias(r, cancelAliases, "ruleRate"),
		}
		if _, isNum := firstPresent(r, cancelAliases, "ruleRate").(float64); isNum {
			rule.Rate += "%"
		}
		if rule.Days == "" && rule.Rate == "" {
			continue
		}
		out = append(out, rule)
	}
	return out
}

func mapCancel(c map[string]any) domain.CancelPolicy {
	return domain.CancelPolicy{
		FreeCancellation:   alias(c, cancelAliases, "free"),
		CancellationFee:    alias(c, cancelAliases, "fee"),
		NoShow:             alias(c, cancelAliases, "noShow"),
		ModificationPolicy: alias(c, cancelAliases, "modification"),
		AdditionalPolicy:   alias(c, cancelAliases, "additional"),
		BeforeCheckIn:      mapRules(firstPresentOf(c, "beforeCheckIn", "rules", "cancelRules")),
		AfterCheckIn:       mapRules(c["afterCheckIn"]),
		OffSeason:          mapRules(firstPresentOf(c, "offSeason", "offSeasonRules")),
		HighSeason:         mapRules(firstPresentOf(c, "highSeason", "peakSeason", "highSeasonRules")),
	}
}

func firstPresentOf(m map[string]any, keys ...string) any {
	return firstPresent(m, map[string][]string{"k": keys}, "k")
}
