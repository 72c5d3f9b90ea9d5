package mockcheck

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"hotel_detail/internal/domain"
)

// Section display names, in reporting order.
const (
	SectionHotel    = "호텔 정보"
	SectionRooms    = "객실 정보"
	SectionPackages = "패키지 정보"
	SectionNotices  = "공지사항"
)

const (
	msgAllValid   = "모든 데이터가 유효합니다."
	msgCanGen     = "HTML 생성이 가능합니다."
	msgCanPreview = "미리보기가 가능합니다."
)

// Result is the outcome of Validate.
type Result struct {
	IsMock       bool     `json:"isMockData"`
	MockSections []string `json:"mockSections"`
	Message      string   `json:"message"`
}

// Decision is the gate consulted before generating or previewing a page.
type Decision struct {
	CanGenerate  bool     `json:"canGenerate"`
	Message      string   `json:"message"`
	MockSections []string `json:"mockSections"`
}

// Contains reports whether value and any pattern contain one another after
// normalization (NFC, trimmed, lower-cased). An empty value never matches.
func Contains(value string, patterns []string) bool {
	if value == "" {
		return false
	}
	v := normalize(value)
	for _, p := range patterns {
		np := normalize(p)
		if strings.Contains(v, np) || strings.Contains(np, v) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

type Checker struct{ p Patterns }

func New(p Patterns) *Checker { return &Checker{p: p.compact()} }

func (c *Checker) IsHotelMock(h *domain.HotelInfo) bool {
	if h == nil {
		return false
	}
	hp := c.p.Hotel
	return Contains(h.Name, hp.Names) ||
		Contains(h.Address, hp.Addresses) ||
		Contains(h.Description, hp.Descriptions) ||
		Contains(h.Phone, hp.Phones)
}

func (c *Checker) IsRoomsMock(rooms []domain.RoomInfo) bool {
	rp := c.p.Rooms
	for _, r := range rooms {
		if Contains(r.Name, rp.Names) ||
			Contains(r.Type, rp.Types) ||
			Contains(r.BedType, rp.BedTypes) ||
			Contains(r.Description, rp.Descriptions) ||
			Contains(r.View, rp.Views) {
			return true
		}
	}
	return false
}

func (c *Checker) IsPackagesMock(pkgs []domain.PackageInfo) bool {
	pp := c.p.Packages
	for _, p := range pkgs {
		if Contains(p.Name, pp.Names) ||
			Contains(p.Description, pp.Descriptions) ||
			Contains(p.Date, pp.Dates) {
			return true
		}
	}
	return false
}

func (c *Checker) IsNoticesMock(notices []domain.NoticeInfo) bool {
	for _, n := range notices {
		if Contains(n.Content, c.p.Notices.Contents) {
			return true
		}
	}
	return false
}

func (c *Checker) Validate(d domain.PageData) Result {
	sections := make([]string, 0, 4)
	if c.IsHotelMock(d.Hotel) {
		sections = append(sections, SectionHotel)
	}
	if c.IsRoomsMock(d.Rooms) {
		sections = append(sections, SectionRooms)
	}
	if c.IsPackagesMock(d.Packages) {
		sections = append(sections, SectionPackages)
	}
	if c.IsNoticesMock(d.Notices) {
		sections = append(sections, SectionNotices)
	}
	if len(sections) == 0 {
		return Result{MockSections: sections, Message: msgAllValid}
	}
	return Result{IsMock: true, MockSections: sections, Message: mockMessage(sections)}
}

func (c *Checker) CanGenerate(d domain.PageData) Decision { return c.decide(d, msgCanGen) }

// CanPreview makes the same decision as CanGenerate with a preview-specific message.
func (c *Checker) CanPreview(d domain.PageData) Decision { return c.decide(d, msgCanPreview) }

func (c *Checker) decide(d domain.PageData, okMsg string) Decision {
	r := c.Validate(d)
	if r.IsMock {
		return Decision{Message: r.Message, MockSections: r.MockSections}
	}
	return Decision{CanGenerate: true, Message: okMsg, MockSections: r.MockSections}
}

func mockMessage(sections []string) string {
	return "다음 섹션에 목 데이터가 감지되었습니다: " + strings.Join(sections, ", ") + ". 실제 데이터를 입력해주세요."
}
