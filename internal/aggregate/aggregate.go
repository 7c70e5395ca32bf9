package aggregate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
	"github.com/MrJJimenez/jobradar/internal/provider"
	"github.com/rs/zerolog"
)

const (
	DefaultPerSourceLimit = 50
	DefaultTimeout        = 10 * time.Second
)

type Options struct {
	PerSourceLimit int
	Timeout        time.Duration
}

func (o Options) withDefaults() Options {
	if o.PerSourceLimit <= 0 {
		o.PerSourceLimit = DefaultPerSourceLimit
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Aggregator fans a search out to the provider set selected by the request's
// country, merges the partial results in fixed provider order and
// deduplicates them. One provider failing never aborts the search.
type Aggregator struct {
	keyed  provider.Provider
	rss    provider.Provider
	feeds  []provider.Provider
	opts   Options
	logger zerolog.Logger
}

// New wires the real provider set over a shared HTTP client.
func New(client *network.Client, logger zerolog.Logger, opts Options) *Aggregator {
	return NewWithProviders(
		logger,
		opts,
		provider.NewAdzuna(client),
		provider.NewIndeedRSS(client),
		provider.NewRemotive(client),
		provider.NewArbeitnow(client),
	)
}

// NewWithProviders accepts an explicit provider set; feeds keep the order
// given, which fixes the concatenation order for deduplication.
func NewWithProviders(logger zerolog.Logger, opts Options, keyed provider.Provider, rss provider.Provider, feeds ...provider.Provider) *Aggregator {
	return &Aggregator{
		keyed:  keyed,
		rss:    rss,
		feeds:  feeds,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Search runs the selected providers in parallel and assembles the
// deduplicated result. Total is the sum of provider-reported totals and may
// exceed the deduplicated length; that overcount is preserved on purpose.
func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) models.AggregationResult {
	selected := a.selectProviders(req)

	type outcome struct {
		postings []models.JobPosting
		total    int
		err      error
	}

	outcomes := make([]outcome, len(selected))
	var wg sync.WaitGroup
	for idx, prov := range selected {
		wg.Add(1)
		go func(idx int, prov provider.Provider) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
			defer cancel()
			postings, total, err := prov.Search(callCtx, req, a.opts.PerSourceLimit)
			outcomes[idx] = outcome{postings: postings, total: total, err: err}
		}(idx, prov)
	}
	wg.Wait()

	var (
		merged []models.JobPosting
		total  int
	)
	for idx, out := range outcomes {
		if out.err != nil {
			a.logger.Warn().
				Str("provider", selected[idx].Name()).
				Err(out.err).
				Msg("provider failed, contributing nothing")
			continue
		}
		merged = append(merged, out.postings...)
		total += out.total
	}

	return models.AggregationResult{
		Postings: dedupe(merged),
		Total:    total,
	}
}

// SearchSource runs one named provider in isolation, with the same per-call
// timeout. Unknown names are an error; provider failures surface instead of
// degrading since there is nothing else to fall back on.
func (a *Aggregator) SearchSource(ctx context.Context, name string, req models.SearchRequest) (models.AggregationResult, error) {
	for _, prov := range a.allProviders() {
		if prov.Name() != name {
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
		postings, total, err := prov.Search(callCtx, req, a.opts.PerSourceLimit)
		if err != nil {
			return models.AggregationResult{}, fmt.Errorf("%s: %w", name, err)
		}
		return models.AggregationResult{Postings: dedupe(postings), Total: total}, nil
	}
	return models.AggregationResult{}, fmt.Errorf("unknown source: %s", name)
}

func (a *Aggregator) allProviders() []provider.Provider {
	all := []provider.Provider{a.keyed, a.rss}
	return append(all, a.feeds...)
}

// selectProviders picks the adapter set for the request: public feeds for
// unspecified/global countries, the keyed provider (plus the RSS feed where
// its allowlist applies) for specific countries.
func (a *Aggregator) selectProviders(req models.SearchRequest) []provider.Provider {
	if req.GlobalCountry() {
		return a.feeds
	}

	selected := []provider.Provider{a.keyed}
	if provider.RSSCountrySupported(req.Country) {
		selected = append(selected, a.rss)
	}
	return selected
}

// dedupe keeps the first occurrence of each (title, company, url) identity,
// preserving the incoming order. No re-sorting happens here: sort is only a
// hint forwarded to providers that support it natively.
func dedupe(postings []models.JobPosting) []models.JobPosting {
	seen := make(map[string]struct{}, len(postings))
	out := make([]models.JobPosting, 0, len(postings))
	for _, posting := range postings {
		key := posting.Identity()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, posting)
	}
	return out
}
