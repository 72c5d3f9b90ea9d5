// Package mockcheck detects unedited placeholder values in page data.
package mockcheck

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type HotelPatterns struct {
	Names        []string `json:"names"`
	Addresses    []string `json:"addresses"`
	Descriptions []string `json:"descriptions"`
	Phones       []string `json:"phones"`
}

type RoomPatterns struct {
	Names        []string `json:"names"`
	Types        []string `json:"types"`
	BedTypes     []string `json:"bedTypes"`
	Descriptions []string `json:"descriptions"`
	Views        []string `json:"views"`
}

type PackagePatterns struct {
	Names        []string `json:"names"`
	Descriptions []string `json:"descriptions"`
	Dates        []string `json:"dates"`
}

type NoticePatterns struct {
	Contents []string `json:"contents"`
}

// Patterns is the table of known placeholder values per section.
type Patterns struct {
	Hotel    HotelPatterns   `json:"hotel"`
	Rooms    RoomPatterns    `json:"rooms"`
	Packages PackagePatterns `json:"packages"`
	Notices  NoticePatterns  `json:"notices"`
}

// DefaultPatterns returns the placeholders the editor ships with.
func DefaultPatterns() Patterns {
	return Patterns{
		Hotel: HotelPatterns{
			Names:     []string{"샘플 호텔", "호텔명"},
			Addresses: []string{"서울특별시 강남구 테헤란로 123"},
			Descriptions: []string{
				"편안하고 아늑한 도심 속 휴식공간입니다.",
				"아름다운 전망과 고급스러운 객실을 갖춘 5성급 호텔입니다.",
				"호텔 설명이 없습니다.",
				"샘플 호텔 설명입니다.",
			},
			Phones: []string{"02-1234-5678"},
		},
		Rooms: RoomPatterns{
			Names:    []string{"스탠다드 룸", "스탠다드", "새 객실"},
			Types:    []string{"스탠다드", "스탠다드 룸"},
			BedTypes: []string{"퀸 베드 1개"},
			Descriptions: []string{
				"편안한 숙면을 위한 퀸 베드가 구비된 스탠다드 룸입니다.",
				"객실 설명이 없습니다.",
			},
			Views: []string{"시티뷰"},
		},
		Packages: PackagePatterns{
			Names:        []string{"조식패키지", "워터pkg"},
			Descriptions: []string{"커플을 위한 특별한 패키지", "성인2 + 소인2"},
			Dates:        []string{"2023-01-01", "2023-12-31"},
		},
		Notices: NoticePatterns{
			Contents: []string{"체크인 시 신분증을 지참해 주세요.", "중요 안내", "안내사항이 없습니다."},
		},
	}
}

// LoadPatterns reads a pattern table from a JSON file. An empty path yields the defaults.
func LoadPatterns(path string) (Patterns, error) {
	if path == "" {
		return DefaultPatterns(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Patterns{}, fmt.Errorf("read patterns %s: %w", path, err)
	}
	var p Patterns
	if err := json.Unmarshal(b, &p); err != nil {
		return Patterns{}, fmt.Errorf("decode patterns %s: %w", path, err)
	}
	return p.compact(), nil
}

// compact drops blank entries; a blank pattern would match every value.
func (p Patterns) compact() Patterns {
	c := func(in []string) []string {
		out := in[:0:0]
		for _, s := range in {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	}
	p.Hotel = HotelPatterns{c(p.Hotel.Names), c(p.Hotel.Addresses), c(p.Hotel.Descriptions), c(p.Hotel.Phones)}
	p.Rooms = RoomPatterns{c(p.Rooms.Names), c(p.Rooms.Types), c(p.Rooms.BedTypes), c(p.Rooms.Descriptions), c(p.Rooms.Views)}
	p.Packages = PackagePatterns{c(p.Packages.Names), c(p.Packages.Descriptions), c(p.Packages.Dates)}
	p.Notices = NoticePatterns{c(p.Notices.Contents)}
	return p
}
