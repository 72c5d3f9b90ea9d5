package domain

import "strings"

// PageData is the typed input of the HTML generator. Nil or empty sections are omitted.
type PageData struct {
	Hotel             *HotelInfo    `json:"hotel,omitempty"`
	Rooms             []RoomInfo    `json:"rooms,omitempty"`
	Facilities        *Facilities   `json:"facilities,omitempty"`
	Checkin           *CheckinInfo  `json:"checkin,omitempty"`
	Period            *PeriodInfo   `json:"period,omitempty"`
	Packages          []PackageInfo `json:"packages,omitempty"`
	Pricing           *PricingTable `json:"pricing,omitempty"`
	Cancel            *CancelPolicy `json:"cancel,omitempty"`
	CancelDescription string        `json:"cancelDescription,omitempty"`
	Booking           *BookingInfo  `json:"booking,omitempty"`
	Notices           []NoticeInfo  `json:"notices,omitempty"`
}

type HotelInfo struct {
	Name        string  `json:"name,omitempty"`
	Address     string  `json:"address,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
	Website     string  `json:"website,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

func (h HotelInfo) Empty() bool {
	return blank(h.Name, h.Address, h.Description, h.ImageURL, h.Phone, h.Email, h.Website) && h.Rating == 0
}

type RoomInfo struct {
	Name             string   `json:"name,omitempty"`
	Type             string   `json:"type,omitempty"`
	Structure        string   `json:"structure,omitempty"`
	BedType          string   `json:"bedType,omitempty"`
	View             string   `json:"view,omitempty"`
	StandardCapacity int      `json:"standardCapacity,omitempty"`
	MaxCapacity      int      `json:"maxCapacity,omitempty"`
	Description      string   `json:"description,omitempty"`
	Image            string   `json:"image,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
}

func (r RoomInfo) Empty() bool {
	return blank(r.Name, r.Type, r.Structure, r.BedType, r.View, r.Description, r.Image) &&
		r.StandardCapacity == 0 && r.MaxCapacity == 0 && len(r.Amenities) == 0
}

type PackageInfo struct {
	Name               string   `json:"name,omitempty"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price,omitempty"`
	Includes           []string `json:"includes,omitempty"`
	SalesPeriod        Period   `json:"salesPeriod,omitempty"`
	StayPeriod         Period   `json:"stayPeriod,omitempty"`
	ProductComposition string   `json:"productComposition,omitempty"`
	Notes              []string `json:"notes,omitempty"`
	Constraints        []string `json:"constraints,omitempty"`
	Date               string   `json:"date,omitempty"`
}

func (p PackageInfo) Empty() bool {
	return blank(p.Name, p.Description, p.ProductComposition, p.Date) && p.Price == 0 &&
		len(p.Includes) == 0 && len(p.Notes) == 0 && len(p.Constraints) == 0 &&
		p.SalesPeriod.Empty() && p.StayPeriod.Empty()
}

type FacilityItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Facilities struct {
	General  []FacilityItem `json:"general,omitempty"`
	Business []FacilityItem `json:"business,omitempty"`
	Leisure  []FacilityItem `json:"leisure,omitempty"`
	Dining   []FacilityItem `json:"dining,omitempty"`
}

func (f Facilities) Empty() bool {
	return len(f.General) == 0 && len(f.Business) == 0 && len(f.Leisure) == 0 && len(f.Dining) == 0
}

type CheckinInfo struct {
	CheckInTime    string `json:"checkInTime,omitempty"`
	CheckOutTime   string `json:"checkOutTime,omitempty"`
	EarlyCheckIn   string `json:"earlyCheckIn,omitempty"`
	LateCheckOut   string `json:"lateCheckOut,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

func (c CheckinInfo) Empty() bool {
	return blank(c.CheckInTime, c.CheckOutTime, c.EarlyCheckIn, c.LateCheckOut, c.AdditionalInfo)
}

type PeriodInfo struct {
	SaleStartDate      string  `json:"saleStartDate,omitempty"`
	SaleEndDate        string  `json:"saleEndDate,omitempty"`
	StayStartDate      string  `json:"stayStartDate,omitempty"`
	StayEndDate        string  `json:"stayEndDate,omitempty"`
	PackageName        string  `json:"packageName,omitempty"`
	PackageComposition string  `json:"packageComposition,omitempty"`
	PackageFeatures    string  `json:"packageFeatures,omitempty"`
	PackagePrice       float64 `json:"packagePrice,omitempty"`
	RoomOnlyPrice      float64 `json:"roomOnlyPrice,omitempty"`
	BasicInfo          string  `json:"basicInfo,omitempty"`
	AdditionalInfo     string  `json:"additionalInfo,omitempty"`
}

func (p PeriodInfo) Empty() bool {
	return blank(p.SaleStartDate, p.SaleEndDate, p.StayStartDate, p.StayEndDate, p.PackageName,
		p.PackageComposition, p.PackageFeatures, p.BasicInfo, p.AdditionalInfo) &&
		p.PackagePrice == 0 && p.RoomOnlyPrice == 0
}

type CancelRule struct {
	Days string `json:"days"`
	Rate string `json:"rate"`
}

type CancelPolicy struct {
	FreeCancellation   string       `json:"freeCancellation,omitempty"`
	CancellationFee    string       `json:"cancellationFee,omitempty"`
	NoShow             string       `json:"noShow,omitempty"`
	ModificationPolicy string       `json:"modificationPolicy,omitempty"`
	AdditionalPolicy   string       `json:"additionalPolicy,omitempty"`
	BeforeCheckIn      []CancelRule `json:"beforeCheckIn,omitempty"`
	AfterCheckIn       []CancelRule `json:"afterCheckIn,omitempty"`
	OffSeason          []CancelRule `json:"offSeason,omitempty"`
	HighSeason         []CancelRule `json:"highSeason,omitempty"`
}

func (c CancelPolicy) Empty() bool {
	return blank(c.FreeCancellation, c.CancellationFee, c.NoShow, c.ModificationPolicy, c.AdditionalPolicy) &&
		len(c.BeforeCheckIn) == 0 && len(c.AfterCheckIn) == 0 && len(c.OffSeason) == 0 && len(c.HighSeason) == 0
}

// BookingInfo comes either as free text or as structured fields.
type BookingInfo struct {
	Text              string   `json:"text,omitempty"`
	ReservationMethod string   `json:"reservationMethod,omitempty"`
	PaymentMethods    []string `json:"paymentMethods,omitempty"`
	ConfirmationTime  string   `json:"confirmationTime,omitempty"`
	SpecialRequests   string   `json:"specialRequests,omitempty"`
}

func (b BookingInfo) Empty() bool {
	return blank(b.Text, b.ReservationMethod, b.ConfirmationTime, b.SpecialRequests) && len(b.PaymentMethods) == 0
}

type NoticeInfo struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Priority int    `json:"priority,omitempty"`
	Type     string `json:"type,omitempty"`
}

func (n NoticeInfo) Empty() bool { return blank(n.Title, n.Content) }

func blank(ss ...string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
