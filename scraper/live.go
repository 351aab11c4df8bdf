package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"backend/config"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Page text sent to the extractor is capped to keep the prompt small.
const maxPageChars = 8000

// LiveSource fetches a market's storefront page and delegates price
// extraction to the Gemini extractor.
type LiveSource struct {
	market    config.Market
	client    *resty.Client
	extractor *Extractor
}

func NewLiveSource(market config.Market, extractor *Extractor) *LiveSource {
	return &LiveSource{
		market:    market,
		client:    resty.New(),
		extractor: extractor,
	}
}

func (s *LiveSource) Name() string {
	return s.market.Name
}

func (s *LiveSource) Fetch(ctx context.Context) ([]Item, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(s.market.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.market.Name, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetching %s returned status %d", s.market.Name, res.StatusCode())
	}

	text := PageText(res.Body())
	if text == "" {
		return nil, nil
	}

	return s.extractor.Extract(ctx, s.market.Name, text)
}

// PageText reduces an HTML page to whitespace-collapsed visible text,
// capped at maxPageChars.
func PageText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()
	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")

	if len(text) > maxPageChars {
		// Back off to a rune boundary so the cap never splits a
		// multi-byte character.
		cut := maxPageChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
