// Command pagegen renders a hotel detail page from a JSON file, a stored
// template or a stored hotel, and writes the HTML to a file or stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_detail/internal/adapters/observability"
	"hotel_detail/internal/adapters/pageclient"
	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/htmlgen"
	"hotel_detail/internal/mockcheck"
	"hotel_detail/internal/shared"
)

type options struct {
	api, template, hotel, in string
	layout, out, patterns    string
	preview                  bool
}

func main() {
	cfg := shared.Load()
	// stdout carries the page
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel).Output(os.Stderr)

	var o options
	flag.StringVar(&o.api, "api", cfg.APIBase, "page API base URL")
	flag.StringVar(&o.template, "template", "", "render a stored template by id")
	flag.StringVar(&o.hotel, "hotel", "", "fetch the rendered page of a stored hotel by id")
	flag.StringVar(&o.in, "in", "", "render page data from a JSON file")
	flag.StringVar(&o.layout, "layout", string(htmlgen.LayoutFull), "full or complete")
	flag.StringVar(&o.out, "out", "", "output file (default stdout)")
	flag.StringVar(&o.patterns, "patterns", cfg.MockPatternsFile, "mock pattern table (JSON)")
	flag.BoolVar(&o.preview, "preview", false, "render a preview with placeholders for empty sections")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.RequestTimeout)
	defer cancel()

	html, err := run(ctx, o, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pagegen:", err)
		if errors.Is(err, domain.ErrMockData) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	if o.out == "" {
		fmt.Print(html)
		return
	}
	if err := os.WriteFile(o.out, []byte(html), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "pagegen:", err)
		os.Exit(1)
	}
	log.Info().Str("out", o.out).Int("bytes", len(html)).Msg("page written")
}

func run(ctx context.Context, o options, cfg shared.Config) (string, error) {
	sources := 0
	for _, s := range []string{o.template, o.hotel, o.in} {
		if strings.TrimSpace(s) != "" {
			sources++
		}
	}
	if sources != 1 {
		return "", errors.New("exactly one of -template, -hotel or -in is required")
	}
	layout, ok := htmlgen.ParseLayout(o.layout)
	if !ok {
		return "", fmt.Errorf("unknown layout %q", o.layout)
	}

	var src domain.PageSource
	if o.in == "" {
		cl, err := pageclient.New(o.api, cfg.ClientRPS, cfg.RequestTimeout)
		if err != nil {
			return "", err
		}
		src = cl
	}
	if o.hotel != "" {
		return src.GetHotelHTML(ctx, o.hotel, string(layout))
	}

	var d domain.PageData
	if o.in != "" {
		b, err := os.ReadFile(o.in)
		if err != nil {
			return "", err
		}
		if d, err = app.DecodePageJSON(b); err != nil {
			return "", fmt.Errorf("decode %s: %w", o.in, err)
		}
	} else {
		t, err := src.GetTemplate(ctx, o.template)
		if err != nil {
			return "", fmt.Errorf("template %s: %w", o.template, err)
		}
		if d, err = app.TemplatePage(t); err != nil {
			return "", err
		}
	}

	patterns, err := mockcheck.LoadPatterns(o.patterns)
	if err != nil {
		return "", err
	}
	pages := app.NewPageService(mockcheck.New(patterns), nil)
	var res app.Rendered
	if o.preview {
		res = pages.Preview(d)
	} else {
		res = pages.Generate(d, layout)
	}
	if res.Blocked() {
		return "", fmt.Errorf("%w: %s (%s)", domain.ErrMockData, res.Decision.Message, strings.Join(res.Decision.MockSections, ", "))
	}
	return res.HTML, nil
}
