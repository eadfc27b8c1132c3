package pricefeed

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const samplePage = `
<html><body>
<h1>Weekly market prices</h1>
<table>
  <tr><th>Item</th><th>Unit</th><th>Price (KSh)</th></tr>
  <tr><td>Maize Flour</td><td>2kg bale</td><td>185</td></tr>
  <tr><td>Cooking Oil</td><td>litre</td><td>1,350.50</td></tr>
  <tr><td>Tomatoes</td><td>kg</td><td>95</td></tr>
  <tr><td>Out of stock item</td><td>kg</td><td>-</td></tr>
  <tr><td></td><td>kg</td><td>50</td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	updates, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("Expected 3 parsed rows, got %d: %v", len(updates), updates)
	}

	want := map[string]float64{
		"Maize Flour": 185,
		"Cooking Oil": 1350.50,
		"Tomatoes":    95,
	}
	for _, u := range updates {
		expected, ok := want[u.Name]
		if !ok {
			t.Errorf("Unexpected row %q", u.Name)
			continue
		}
		if math.Abs(u.Price-expected) > 1e-9 {
			t.Errorf("%s: expected price %.2f, got %.2f", u.Name, expected, u.Price)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	updates, err := Parse(strings.NewReader("<html><body><p>no tables here</p></body></html>"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("Expected no updates, got %d", len(updates))
	}
}

// recordingUpdater captures price updates and can reject unknown items.
type recordingUpdater struct {
	known   map[string]bool
	applied map[string]float64
}

func (u *recordingUpdater) UpdatePrice(ctx context.Context, name string, price float64) error {
	if !u.known[name] {
		return fmt.Errorf("unknown item %q", name)
	}
	u.applied[name] = price
	return nil
}

func TestApply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, samplePage)
	}))
	defer server.Close()

	updater := &recordingUpdater{
		known:   map[string]bool{"Maize Flour": true, "Tomatoes": true},
		applied: map[string]float64{},
	}
	feed := NewFeed(server.URL, zap.NewNop().Sugar())

	applied, err := feed.Apply(context.Background(), updater)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("Expected 2 applied updates, got %d", applied)
	}
	if updater.applied["Maize Flour"] != 185 {
		t.Errorf("Expected Maize Flour updated to 185, got %.2f", updater.applied["Maize Flour"])
	}
	if _, ok := updater.applied["Cooking Oil"]; ok {
		t.Error("Expected unknown Cooking Oil row to be skipped")
	}
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	feed := NewFeed(server.URL, zap.NewNop().Sugar())
	if _, err := feed.Fetch(context.Background()); err == nil {
		t.Fatal("Expected an error on HTTP 500, got nil")
	}
}
