package domain

// DayTypeID is one of a closed set of pricing columns.
type DayTypeID string

const (
	Weekday  DayTypeID = "weekday"
	Friday   DayTypeID = "friday"
	Saturday DayTypeID = "saturday"
	Sunday   DayTypeID = "sunday"
	Holiday  DayTypeID = "holiday"
)

var dayTypeNames = map[DayTypeID]string{
	Weekday:  "주중(월~목)",
	Friday:   "금요일",
	Saturday: "토요일",
	Sunday:   "일요일",
	Holiday:  "공휴일",
}

func ParseDayTypeID(s string) (DayTypeID, bool) {
	id := DayTypeID(s)
	_, ok := dayTypeNames[id]
	return id, ok
}

func (d DayTypeID) DefaultName() string { return dayTypeNames[d] }

type DayType struct {
	ID   DayTypeID `json:"id"`
	Name string    `json:"name,omitempty"`
}

func (d DayType) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID.DefaultName()
}

// DefaultDayTypes are the columns used when a table declares none.
func DefaultDayTypes() []DayType {
	return []DayType{{ID: Weekday}, {ID: Friday}, {ID: Saturday}, {ID: Sunday}}
}

// Prices maps a day type to a nightly price. Zero means "not offered".
type Prices map[DayTypeID]float64

type RateKind int

const (
	RateFlat RateKind = iota
	RateByView
)

// RoomRate is either one flat row of prices or one row per view.
// Kind decides which of Prices and Views is meaningful.
type RoomRate struct {
	Kind     RateKind   `json:"-"`
	RoomType string     `json:"roomType,omitempty"`
	View     string     `json:"view,omitempty"`
	Prices   Prices     `json:"prices,omitempty"`
	Views    []ViewRate `json:"viewTypes,omitempty"`
}

type ViewRate struct {
	Name   string `json:"name"`
	Prices Prices `json:"prices,omitempty"`
}

type Lodge struct {
	Name  string     `json:"name,omitempty"`
	Rooms []RoomRate `json:"rooms,omitempty"`
}

type PricingTable struct {
	Lodges                []Lodge   `json:"lodges,omitempty"`
	DayTypes              []DayType `json:"dayTypes,omitempty"`
	AdditionalChargesInfo string    `json:"additionalChargesInfo,omitempty"`
}

func (p PricingTable) Empty() bool {
	for _, l := range p.Lodges {
		if len(l.Rooms) > 0 {
			return false
		}
	}
	return blank(p.AdditionalChargesInfo)
}
