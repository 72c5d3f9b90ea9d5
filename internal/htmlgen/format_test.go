package htmlgen_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_detail/internal/htmlgen"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		1234567:    "1,234,567",
		120000.5:   "120,000.5",
		-45000:     "-45,000",
		math.NaN(): "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, htmlgen.FormatPrice(in), "FormatPrice(%v)", in)
	}
}

func TestFormatWithLineBreaks(t *testing.T) {
	assert.Equal(t, "a<br>b<br>c", htmlgen.FormatWithLineBreaks("a\nb\r\nc"))
	assert.Equal(t, "", htmlgen.FormatWithLineBreaks(""))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;a&gt;&amp;&quot;&#039;", htmlgen.EscapeHTML(`<a>&"'`))
	// already-escaped input is escaped once more, never skipped
	assert.Equal(t, "&amp;amp;", htmlgen.EscapeHTML("&amp;"))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", htmlgen.SafeString(nil))
	assert.Equal(t, "12", htmlgen.SafeString(12))
	assert.Equal(t, "1.5", htmlgen.SafeString(1.5))
	assert.Equal(t, "&lt;b&gt;", htmlgen.SafeString("<b>"))
}

func TestSafeHTML(t *testing.T) {
	assert.Equal(t, "hello", htmlgen.SafeHTML("<script>alert(1)</script>hello"))
	assert.Equal(t, `<div>x</div>`, htmlgen.SafeHTML(`<div onclick="steal()">x</div>`))
	assert.Equal(t, `<a href="#">go</a>`, htmlgen.SafeHTML(`<a href="javascript:alert(1)">go</a>`))
	assert.Equal(t, `<p>a</p>`, htmlgen.SafeHTML(`<p>a</p><IFRAME src="x"></iframe>`))
	assert.NotContains(t, htmlgen.SafeHTML(`<object data="data:text/html;base64,xx">`), "text/html")
}

func TestValidImageURL(t *testing.T) {
	def := htmlgen.DefaultImageURL
	cases := []struct{ in, want string }{
		{"", def},
		{"http://localhost:3000/a.png", def},
		{"http://127.0.0.1/a.png", def},
		{"https://x.com/NoImage.png", def},
		{"not a url", def},
		{"javascript:alert(1)", def},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"//cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"https://cdn.example.com/객실.jpg", "https://cdn.example.com/%EA%B0%9D%EC%8B%A4.jpg"},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, htmlgen.ValidImageURL(c.in), "ValidImageURL(%q)", c.in)
	}
}

func TestHotelRating(t *testing.T) {
	out := htmlgen.HotelRating(3.5)
	assert.Equal(t, 3, strings.Count(out, "star-full"))
	assert.Equal(t, 1, strings.Count(out, "star-half"))
	assert.Equal(t, 1, strings.Count(out, "star-empty"))

	assert.Equal(t, 5, strings.Count(htmlgen.HotelRating(9), "star-full"))
	assert.Equal(t, 5, strings.Count(htmlgen.HotelRating(-1), "star-empty"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", htmlgen.FormatDate("2024-03-01"))
	assert.Equal(t, "2024-03-01", htmlgen.FormatDate("2024-03-01T09:00:00Z"))
	assert.Equal(t, "2024-03-01", htmlgen.FormatDate("2024.3.1"))
	assert.Equal(t, "", htmlgen.FormatDate("next spring"))
}

func TestHTMLPreview(t *testing.T) {
	assert.Equal(t, "(빈 HTML)", htmlgen.HTMLPreview("  ", 10))
	assert.Equal(t, "&lt;p&gt;hi&lt;/p&gt;", htmlgen.HTMLPreview("<p>hi</p>", 100))
	assert.Equal(t, "&lt;p&gt;...", htmlgen.HTMLPreview("<p>hello</p>", 3))
}
