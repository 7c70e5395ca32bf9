package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/rs/zerolog"
)

type stubProvider struct {
	name     string
	postings []models.JobPosting
	total    int
	err      error
	calls    int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error) {
	s.calls++
	return s.postings, s.total, s.err
}

func posting(title, company, url string) models.JobPosting {
	return models.JobPosting{Title: title, Company: company, URL: url}
}

func TestSearchDedupePreservesFirstSeenOrder(t *testing.T) {
	x := posting("x", "c", "https://example.com/x")
	y := posting("y", "c", "https://example.com/y")
	z := posting("z", "c", "https://example.com/z")

	feedA := &stubProvider{name: "a", postings: []models.JobPosting{x, y}, total: 2}
	feedB := &stubProvider{name: "b", postings: []models.JobPosting{y, z}, total: 2}

	agg := NewWithProviders(zerolog.Nop(), Options{}, &stubProvider{name: "keyed"}, &stubProvider{name: "rss"}, feedA, feedB)
	result := agg.Search(context.Background(), models.SearchRequest{Country: "global"})

	if len(result.Postings) != 3 {
		t.Fatalf("expected 3 deduplicated postings, got %d", len(result.Postings))
	}
	for idx, want := range []string{"x", "y", "z"} {
		if result.Postings[idx].Title != want {
			t.Fatalf("postings[%d] = %q, want %q", idx, result.Postings[idx].Title, want)
		}
	}
}

func TestSearchProviderFailureIsIsolated(t *testing.T) {
	ok := &stubProvider{name: "ok", postings: []models.JobPosting{posting("x", "c", "u")}, total: 5}
	broken := &stubProvider{name: "broken", err: errors.New("http 500")}

	agg := NewWithProviders(zerolog.Nop(), Options{}, &stubProvider{name: "keyed"}, &stubProvider{name: "rss"}, broken, ok)
	result := agg.Search(context.Background(), models.SearchRequest{})

	if len(result.Postings) != 1 {
		t.Fatalf("expected the healthy provider's posting, got %d", len(result.Postings))
	}
	if result.Total != 5 {
		t.Fatalf("failed provider must contribute zero to total, got %d", result.Total)
	}
}

func TestSearchGlobalNeverInvokesKeyedProvider(t *testing.T) {
	keyed := &stubProvider{name: "keyed"}
	rss := &stubProvider{name: "rss"}
	feed := &stubProvider{name: "feed"}

	agg := NewWithProviders(zerolog.Nop(), Options{}, keyed, rss, feed)
	for _, country := range []string{"", "global"} {
		agg.Search(context.Background(), models.SearchRequest{Country: country})
	}

	if keyed.calls != 0 {
		t.Fatalf("keyed provider invoked %d times for global requests", keyed.calls)
	}
	if rss.calls != 0 {
		t.Fatalf("rss provider invoked %d times for global requests", rss.calls)
	}
	if feed.calls != 2 {
		t.Fatalf("feed provider calls = %d, want 2", feed.calls)
	}
}

func TestSearchSpecificCountryNeverInvokesFeeds(t *testing.T) {
	keyed := &stubProvider{name: "keyed"}
	rss := &stubProvider{name: "rss"}
	feed := &stubProvider{name: "feed"}

	agg := NewWithProviders(zerolog.Nop(), Options{}, keyed, rss, feed)
	agg.Search(context.Background(), models.SearchRequest{Country: "gb"})

	if feed.calls != 0 {
		t.Fatalf("feed provider invoked for a specific country")
	}
	if keyed.calls != 1 {
		t.Fatalf("keyed provider calls = %d, want 1", keyed.calls)
	}
	// gb is outside the RSS allowlist.
	if rss.calls != 0 {
		t.Fatalf("rss provider invoked for a country outside its allowlist")
	}
}

func TestSearchCountryWithMetaScenario(t *testing.T) {
	shared := posting("Go Developer", "Acme", "https://example.com/1")
	keyed := &stubProvider{
		name:     "keyed",
		postings: []models.JobPosting{shared, posting("SRE", "Beta", "https://example.com/2")},
		total:    37,
	}
	rss := &stubProvider{
		name:     "rss",
		postings: []models.JobPosting{posting("Backend Engineer", "Gamma", "https://example.com/3")},
		total:    0,
	}
	feed := &stubProvider{name: "feed"}

	agg := NewWithProviders(zerolog.Nop(), Options{}, keyed, rss, feed)
	result := agg.Search(context.Background(), models.SearchRequest{Query: "developer", Country: "mx", WithMeta: true})

	if len(result.Postings) != 3 {
		t.Fatalf("expected 3 postings, got %d", len(result.Postings))
	}
	if result.Total != 37 {
		t.Fatalf("total = %d, want keyed provider's 37 (rss reports no server-side total)", result.Total)
	}
	if feed.calls != 0 {
		t.Fatalf("feeds must not run for a specific country")
	}
}

func TestSearchDuplicateAcrossProvidersKeepsFirst(t *testing.T) {
	shared := posting("Go Developer", "Acme", "https://example.com/1")
	keyed := &stubProvider{name: "keyed", postings: []models.JobPosting{shared}, total: 1}
	rss := &stubProvider{name: "rss", postings: []models.JobPosting{shared, posting("Other", "Beta", "https://example.com/2")}}

	agg := NewWithProviders(zerolog.Nop(), Options{}, keyed, rss)
	result := agg.Search(context.Background(), models.SearchRequest{Country: "mx"})

	if len(result.Postings) != 2 {
		t.Fatalf("expected duplicate collapsed across providers, got %d", len(result.Postings))
	}
	// Total still counts both providers' self-reported sizes.
	if result.Total != 1 {
		t.Fatalf("total = %d, want 1", result.Total)
	}
}

func TestSearchSourceUnknownName(t *testing.T) {
	agg := NewWithProviders(zerolog.Nop(), Options{}, &stubProvider{name: "keyed"}, &stubProvider{name: "rss"})
	if _, err := agg.SearchSource(context.Background(), "nope", models.SearchRequest{}); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestSearchSourceRunsSingleProvider(t *testing.T) {
	keyed := &stubProvider{name: "keyed", postings: []models.JobPosting{posting("x", "c", "u"), posting("x", "c", "u")}, total: 9}
	agg := NewWithProviders(zerolog.Nop(), Options{}, keyed, &stubProvider{name: "rss"})

	result, err := agg.SearchSource(context.Background(), "keyed", models.SearchRequest{})
	if err != nil {
		t.Fatalf("SearchSource() error = %v", err)
	}
	if len(result.Postings) != 1 {
		t.Fatalf("expected single-source result deduplicated, got %d", len(result.Postings))
	}
	if result.Total != 9 {
		t.Fatalf("total = %d, want 9", result.Total)
	}
}
