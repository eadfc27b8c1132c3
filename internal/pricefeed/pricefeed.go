package pricefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// PriceUpdate is one parsed row of a published price table.
type PriceUpdate struct {
	Name  string
	Price float64
}

// CatalogUpdater applies a parsed price to the stored catalog.
type CatalogUpdater interface {
	UpdatePrice(ctx context.Context, name string, price float64) error
}

// Feed fetches a market price page and refreshes catalog prices from it.
type Feed struct {
	url    string
	client *http.Client
	log    *zap.SugaredLogger
}

// NewFeed creates a Feed for the given price page URL.
func NewFeed(url string, log *zap.SugaredLogger) *Feed {
	return &Feed{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

var priceRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d+)?`)

// Fetch downloads the price page and parses its table rows.
func (f *Feed) Fetch(ctx context.Context) ([]PriceUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price feed request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch price feed: status %d", resp.StatusCode)
	}
	return Parse(resp.Body)
}

// Parse extracts (item, price) pairs from an HTML document. The first table
// cell of each row is the item name, the last cell holding a number is the
// price; rows without both are skipped.
func Parse(r io.Reader) ([]PriceUpdate, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price feed HTML: %w", err)
	}

	var updates []PriceUpdate
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.TrimSpace(cells.First().Text())
		if name == "" {
			return
		}

		var price float64
		found := false
		for c := cells.Length() - 1; c >= 1; c-- {
			text := strings.TrimSpace(cells.Eq(c).Text())
			match := priceRe.FindString(text)
			if match == "" {
				continue
			}
			p, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
			if err == nil && p > 0 {
				price = p
				found = true
				break
			}
		}
		if !found {
			return
		}
		updates = append(updates, PriceUpdate{Name: name, Price: price})
	})
	return updates, nil
}

// Apply writes the fetched prices through to the catalog. Unknown items are
// logged and skipped; the feed may list products the catalog does not carry.
func (f *Feed) Apply(ctx context.Context, updater CatalogUpdater) (int, error) {
	updates, err := f.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, u := range updates {
		if err := updater.UpdatePrice(ctx, u.Name, u.Price); err != nil {
			f.log.Infow("skipping price update", "item", u.Name, "err", err)
			continue
		}
		applied++
	}
	f.log.Infow("price feed applied", "parsed", len(updates), "applied", applied)
	return applied, nil
}
