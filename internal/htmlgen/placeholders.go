package htmlgen

import (
	"fmt"
	"strings"
)

var defaultSections = map[string]struct{ title, message string }{
	"hotel":      {"호텔 정보", "호텔 정보를 입력해주세요."},
	"room":       {"객실 정보", "객실 정보를 입력해주세요."},
	"facilities": {"부대시설 안내", "부대시설 정보를 입력해주세요."},
	"period":     {"패키지 정보", "패키지 정보를 입력해주세요."},
	"price":      {"요금 안내", "요금 정보를 입력해주세요."},
	"cancel":     {"취소 및 환불 정책", "취소 및 환불 정책을 입력해주세요."},
	"booking":    {"예약 안내", "예약 안내를 입력해주세요."},
	"notice":     {"안내사항", "안내사항을 입력해주세요."},
}

// DefaultSectionHTML renders the placeholder shown in previews for an empty section.
func DefaultSectionHTML(id string) string {
	d, ok := defaultSections[id]
	if !ok {
		d.title, d.message = "정보 없음", "표시할 정보가 없습니다."
	}
	return fmt.Sprintf(`<div class="section default-section section-%s"><h2 class="section-title">%s</h2><p class="placeholder">%s</p></div>`,
		noticeClass(id), d.title, d.message)
}

// BlockedHTML is returned in place of a page when mock data was detected.
func BlockedHTML(message string, sections []string) string {
	var b strings.Builder
	b.WriteString(`<div class="mock-data-warning"><h3>⚠️ HTML 생성 차단</h3>`)
	fmt.Fprintf(&b, `<p>%s</p>`, EscapeHTML(message))
	escaped := make([]string, 0, len(sections))
	for _, s := range sections {
		escaped = append(escaped, EscapeHTML(s))
	}
	fmt.Fprintf(&b, `<p><strong>감지된 목 데이터 섹션:</strong> %s</p>`, strings.Join(escaped, ", "))
	b.WriteString(`<p>실제 데이터를 입력한 후 다시 시도해주세요.</p></div>`)
	return b.String()
}
