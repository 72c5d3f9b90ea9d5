package htmlgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultImageURL replaces image URLs that are missing or unusable.
const DefaultImageURL = "https://cdn.pixabay.com/photo/2016/11/18/17/20/living-room-1835923_960_720.jpg"

var priceFmt = message.NewPrinter(language.English)

// FormatPrice groups the integer digits by thousands; fractional digits are kept.
func FormatPrice(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return s
	}
	out := priceFmt.Sprintf("%v", number.Decimal(n))
	if frac != "" {
		out += "." + frac
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}

func FormatWithLineBreaks(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "<br>")
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes & < > " ' in a single pass.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }

// SafeString escapes any value for HTML text; nil becomes "".
func SafeString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return EscapeHTML(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return EscapeHTML(fmt.Sprint(t))
	}
}

// multiline escapes user text and keeps its line breaks.
func multiline(s string) string { return FormatWithLineBreaks(EscapeHTML(s)) }

var sanitizers = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?is)<script\b.*?</script\s*>`), ""},
	{regexp.MustCompile(`(?i)\son\w+\s*=\s*["']?[^"']*["']?`), ""},
	{regexp.MustCompile(`(?i)href\s*=\s*["']?\s*javascript:[^"'>]*["']?`), `href="#"`},
	{regexp.MustCompile(`(?i)data:text/html[^"']*["']?`), "data:text/plain"},
	{regexp.MustCompile(`(?is)<iframe\b.*?</iframe\s*>`), ""},
}

// SafeHTML strips common script vectors from trusted-author HTML.
// It is a denylist and not a security boundary.
func SafeHTML(s string) string {
	for _, z := range sanitizers {
		s = z.re.ReplaceAllString(s, z.repl)
	}
	return s
}

var imageURLShape = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(/\S*)?$`)

// ValidImageURL normalizes an image URL, falling back to DefaultImageURL.
func ValidImageURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return DefaultImageURL
	}
	for _, bad := range []string{"localhost", "127.0.0.1", "NoImage", "Error"} {
		if strings.Contains(u, bad) {
			return DefaultImageURL
		}
	}
	if strings.HasPrefix(u, "data:image/") {
		return u
	}
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	if !imageURLShape.MatchString(u) {
		return DefaultImageURL
	}
	u = encodeNonASCII(u)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

func encodeNonASCII(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || c == ' ' {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// HotelRating renders 0..5 stars; a fraction of .5 or more adds a half star.
func HotelRating(r float64) string {
	if math.IsNaN(r) || r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	full := int(r)
	half := r-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	var b strings.Builder
	b.WriteString(`<div class="hotel-rating">`)
	b.WriteString(strings.Repeat(`<span class="star-full">★</span>`, full))
	if half {
		b.WriteString(`<span class="star-half">★</span>`)
	}
	b.WriteString(strings.Repeat(`<span class="star-empty">☆</span>`, empty))
	b.WriteString(`</div>`)
	return b.String()
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006.1.2",
	"20060102",
}

// FormatDate renders a date as YYYY-MM-DD, or "" when it cannot be parsed.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

var previewEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTMLPreview returns the first n runes of an HTML string, escaped for display.
func HTMLPreview(html string, n int) string {
	if strings.TrimSpace(html) == "" {
		return "(빈 HTML)"
	}
	if n <= 0 {
		n = 100
	}
	r := []rune(html)
	if len(r) > n {
		html = string(r[:n]) + "..."
	}
	return previewEscaper.Replace(html)
}
