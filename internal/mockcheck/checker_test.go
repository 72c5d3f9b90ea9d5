package mockcheck_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hotel_detail/internal/domain"
	"hotel_detail/internal/mockcheck"
)

func TestContains(t *testing.T) {
	pats := []string{"샘플 호텔", "Sample Hotel"}
	cases := []struct {
		in   string
		want bool
	}{
		{"샘플 호텔", true},
		{"  샘플 호텔  ", true},
		{"sample hotel", true}, // case-insensitive
		{"샘플", true},           // value inside pattern
		{"새로운 샘플 호텔 본관", true}, // pattern inside value
		{"Grand Plaza", false},
		{"", false},
		{"   ", true}, // blank after trim is contained in every pattern
	}
	for _, c := range cases {
		if got := mockcheck.Contains(c.in, pats); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContains_NormalizesDecomposedHangul(t *testing.T) {
	// "호텔" typed as decomposed jamo (NFD) must still match the NFC pattern.
	nfd := "\u1112\u1169\u1110\u1166\u11af"
	if !mockcheck.Contains(nfd, []string{"호텔명"}) {
		t.Fatalf("expected NFD input to match")
	}
}

func TestIsHotelMock(t *testing.T) {
	c := mockcheck.New(mockcheck.DefaultPatterns())
	if !c.IsHotelMock(&domain.HotelInfo{Name: "샘플 호텔"}) {
		t.Fatalf("sample name should be mock")
	}
	if !c.IsHotelMock(&domain.HotelInfo{Name: "Grand Plaza", Phone: "02-1234-5678"}) {
		t.Fatalf("sample phone should be mock")
	}
	if c.IsHotelMock(&domain.HotelInfo{Name: "Grand Plaza"}) {
		t.Fatalf("real name should not be mock")
	}
	if c.IsHotelMock(nil) {
		t.Fatalf("nil hotel should not be mock")
	}
}

func TestSectionDetectors(t *testing.T) {
	c := mockcheck.New(mockcheck.DefaultPatterns())

	if !c.IsRoomsMock([]domain.RoomInfo{{Name: "Deluxe"}, {Name: "Suite", BedType: "퀸 베드 1개"}}) {
		t.Errorf("room with sample bed type should be mock")
	}
	if c.IsRoomsMock([]domain.RoomInfo{{Name: "Deluxe", View: "오션뷰"}}) {
		t.Errorf("real room flagged")
	}
	if !c.IsPackagesMock([]domain.PackageInfo{{Name: "Honeymoon", Date: "2023-12-31"}}) {
		t.Errorf("package with sample date should be mock")
	}
	if c.IsPackagesMock(nil) {
		t.Errorf("no packages should not be mock")
	}
	if !c.IsNoticesMock([]domain.NoticeInfo{{Title: "x", Content: "안내사항이 없습니다."}}) {
		t.Errorf("sample notice content should be mock")
	}
}

func TestCanGenerate(t *testing.T) {
	c := mockcheck.New(mockcheck.DefaultPatterns())

	d := c.CanGenerate(domain.PageData{Hotel: &domain.HotelInfo{Name: "샘플 호텔"}})
	if d.CanGenerate {
		t.Fatalf("expected blocked")
	}
	if !reflect.DeepEqual(d.MockSections, []string{mockcheck.SectionHotel}) {
		t.Fatalf("sections: %v", d.MockSections)
	}
	want := "다음 섹션에 목 데이터가 감지되었습니다: 호텔 정보. 실제 데이터를 입력해주세요."
	if d.Message != want {
		t.Fatalf("message: %q", d.Message)
	}

	ok := c.CanGenerate(domain.PageData{Hotel: &domain.HotelInfo{Name: "Grand Plaza"}})
	if !ok.CanGenerate || ok.Message != "HTML 생성이 가능합니다." || len(ok.MockSections) != 0 {
		t.Fatalf("unexpected decision: %+v", ok)
	}
	if ok.MockSections == nil {
		t.Fatalf("mock sections should be an empty list, not nil")
	}
}

func TestValidate_ReportsSectionsInOrder(t *testing.T) {
	c := mockcheck.New(mockcheck.DefaultPatterns())
	r := c.Validate(domain.PageData{
		Notices:  []domain.NoticeInfo{{Content: "중요 안내"}},
		Hotel:    &domain.HotelInfo{Name: "호텔명"},
		Packages: []domain.PackageInfo{{Name: "조식패키지"}},
	})
	want := []string{mockcheck.SectionHotel, mockcheck.SectionPackages, mockcheck.SectionNotices}
	if !r.IsMock || !reflect.DeepEqual(r.MockSections, want) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestCanPreview_SameDecisionDifferentMessage(t *testing.T) {
	c := mockcheck.New(mockcheck.DefaultPatterns())
	data := domain.PageData{Rooms: []domain.RoomInfo{{Name: "Ocean Suite"}}}
	g, p := c.CanGenerate(data), c.CanPreview(data)
	if g.CanGenerate != p.CanGenerate {
		t.Fatalf("decisions differ: %+v vs %+v", g, p)
	}
	if p.Message != "미리보기가 가능합니다." {
		t.Fatalf("preview message: %q", p.Message)
	}
}

func TestLoadPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.json")
	body := `{"hotel":{"names":["Placeholder Inn",""," "]},"rooms":{"names":["Room X"]}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := mockcheck.LoadPatterns(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.Hotel.Names) != 1 {
		t.Fatalf("blank patterns should be dropped: %v", p.Hotel.Names)
	}
	c := mockcheck.New(p)
	if !c.IsHotelMock(&domain.HotelInfo{Name: "placeholder inn"}) {
		t.Fatalf("custom pattern not applied")
	}
	if c.IsHotelMock(&domain.HotelInfo{Name: "샘플 호텔"}) {
		t.Fatalf("defaults should not apply when a file is given")
	}

	if _, err := mockcheck.LoadPatterns(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if d, err := mockcheck.LoadPatterns(""); err != nil || len(d.Hotel.Names) == 0 {
		t.Fatalf("empty path should give defaults: %v", err)
	}
}
