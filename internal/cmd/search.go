package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MrJJimenez/jobradar/internal/aggregate"
	"github.com/MrJJimenez/jobradar/internal/export"
	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
	"github.com/MrJJimenez/jobradar/internal/seen"
	"github.com/muesli/termenv"
)

type SearchCmd struct {
	Query string `arg:"" optional:"" help:"Free-text search query."`
	SearchOptions
}

type SourceCmd struct {
	Query string `arg:"" optional:"" help:"Free-text search query."`
	SearchOptions
	Source string `kong:"-"`
}

type SearchOptions struct {
	Location     string `help:"Job location." env:"JOBRADAR_DEFAULT_LOCATION"`
	Country      string `help:"Country code, or 'global' for the public feeds." env:"JOBRADAR_DEFAULT_COUNTRY"`
	Remote       string `help:"Remote filter: yes or no (default: unspecified)." enum:",yes,no" default:""`
	SalaryMin    int    `help:"Minimum salary."`
	SalaryMax    int    `help:"Maximum salary."`
	Page         int    `help:"Result page (1-based)."`
	PerPage      int    `help:"Results per page (1-50)."`
	ContractTime string `help:"Contract time filter." enum:",full_time,part_time" default:""`
	ContractType string `help:"Contract type filter." enum:",permanent,contract" default:""`
	Distance     int    `help:"Distance radius in km."`
	MaxDays      int    `help:"Postings no older than N days."`
	Sort         string `help:"Sort hint forwarded to sources that support it." enum:",relevance,date,salary" default:""`
	WithMeta     bool   `help:"Emit {items, total} instead of the bare list (JSON output)."`
	Limit        int    `help:"Maximum results per source." env:"JOBRADAR_SOURCE_LIMIT"`
	Format       string `help:"Output format: csv, json, md." enum:",csv,json,md" default:""`
	Links        string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output       string `name:"output" short:"o" help:"Write output to a file."`
	Out          string `name:"out" help:"Alias for --output."`
	File         string `name:"file" help:"Alias for --output."`
	Seen         string `help:"Path to seen postings JSON file."`
	NewOnly      bool   `help:"Output only unseen postings (requires --seen)."`
	NewOut       string `help:"Write unseen postings JSON to a file (requires --seen)."`
	SeenUpdate   bool   `help:"Merge newly discovered unseen postings into --seen after the search (requires --seen)."`
}

func (s *SearchCmd) Run(ctx *Context) error {
	return runSearch(ctx, s.Query, "", s.SearchOptions)
}

func (s *SourceCmd) Run(ctx *Context) error {
	return runSearch(ctx, s.Query, s.Source, s.SearchOptions)
}

func runSearch(ctx *Context, query string, source string, opts SearchOptions) error {
	if opts.NewOnly && strings.TrimSpace(opts.Seen) == "" {
		return fmt.Errorf("--new-only requires --seen")
	}
	if strings.TrimSpace(opts.NewOut) != "" && strings.TrimSpace(opts.Seen) == "" {
		return fmt.Errorf("--new-out requires --seen")
	}
	if opts.SeenUpdate && strings.TrimSpace(opts.Seen) == "" {
		return fmt.Errorf("--seen-update requires --seen")
	}

	cfg := ctx.Config
	req := buildRequest(query, opts, cfg.DefaultLocation, cfg.DefaultCountry)

	client, err := network.NewClient()
	if err != nil {
		return err
	}
	aggregator := aggregate.New(client, ctx.Logger, aggregate.Options{
		PerSourceLimit: defaultInt(opts.Limit, cfg.PerSourceLimit),
	})

	stopIndicator := startSearchIndicator(ctx)
	if stopIndicator != nil {
		defer stopIndicator()
	}

	var result models.AggregationResult
	if source == "" {
		result = aggregator.Search(context.Background(), req)
	} else {
		result, err = aggregator.SearchSource(context.Background(), source, req)
		if err != nil {
			return err
		}
	}

	var unseenPostings []models.JobPosting
	if strings.TrimSpace(opts.Seen) != "" {
		seenPostings, err := seen.ReadPostingsAllowMissing(opts.Seen)
		if err != nil {
			return fmt.Errorf("read --seen: %w", err)
		}
		unseenPostings, _ = seen.Diff(result.Postings, seenPostings)
	}

	allPostings := result.Postings
	if opts.NewOnly {
		result.Postings = unseenPostings
	}

	outputPath := resolveOutputPath(opts)
	if strings.TrimSpace(opts.NewOut) != "" && pathsEqual(outputPath, opts.NewOut) {
		return fmt.Errorf("--new-out path must differ from --output")
	}
	if strings.TrimSpace(opts.Seen) != "" && pathsEqual(outputPath, opts.Seen) {
		return fmt.Errorf("--output path must differ from --seen")
	}
	if strings.TrimSpace(opts.NewOut) != "" && pathsEqual(opts.NewOut, opts.Seen) {
		return fmt.Errorf("--new-out path must differ from --seen")
	}

	if strings.TrimSpace(opts.NewOut) != "" {
		if err := seen.WritePostings(opts.NewOut, unseenPostings); err != nil {
			return fmt.Errorf("write --new-out: %w", err)
		}
	}

	format, err := resolveFormat(ctx, opts, outputPath)
	if err != nil {
		return err
	}

	writer := ctx.Out
	var file *os.File
	if outputPath != "" {
		file, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	if err := export.WriteResult(writer, result, req.WithMeta, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	}); err != nil {
		return err
	}

	if opts.SeenUpdate && strings.TrimSpace(opts.Seen) != "" {
		if err := updateSeenHistory(opts.Seen, unseenPostings); err != nil {
			return err
		}
	}

	summaryPostings := allPostings
	if strings.TrimSpace(opts.Seen) != "" {
		summaryPostings = unseenPostings
	}
	printSearchSummary(ctx, summaryPostings)

	return nil
}

func buildRequest(query string, opts SearchOptions, defaultLocation string, defaultCountry string) models.SearchRequest {
	return models.SearchRequest{
		Query:        strings.TrimSpace(query),
		Location:     firstNonEmpty(opts.Location, defaultLocation),
		Remote:       parseRemote(opts.Remote),
		SalaryMin:    opts.SalaryMin,
		SalaryMax:    opts.SalaryMax,
		Page:         opts.Page,
		PerPage:      opts.PerPage,
		Country:      normalizeCountry(firstNonEmpty(opts.Country, defaultCountry)),
		ContractTime: models.ContractTime(opts.ContractTime),
		ContractType: models.ContractType(opts.ContractType),
		Distance:     opts.Distance,
		MaxDaysOld:   opts.MaxDays,
		Sort:         models.SortOrder(opts.Sort),
		WithMeta:     opts.WithMeta,
	}
}

func parseRemote(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		remote := true
		return &remote
	case "no":
		remote := false
		return &remote
	default:
		return nil
	}
}

func normalizeCountry(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func pathsEqual(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

func updateSeenHistory(seenPath string, inputPostings []models.JobPosting) error {
	seenPostings, err := seen.ReadPostingsAllowMissing(seenPath)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	merged, _ := seen.Merge(seenPostings, inputPostings)
	if err := seen.WritePostings(seenPath, merged); err != nil {
		return fmt.Errorf("write --seen: %w", err)
	}

	return nil
}

func printSearchSummary(ctx *Context, postings []models.JobPosting) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "%s\n", formatSearchSummary(postings))
}

func formatSearchSummary(postings []models.JobPosting) string {
	counts := countBySource(postings)
	if len(counts) == 0 {
		return "summary: new_postings=0 by_source=none"
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.source, count.total))
	}

	return fmt.Sprintf("summary: new_postings=%d by_source=%s", len(postings), strings.Join(parts, ", "))
}

type sourceCount struct {
	source string
	total  int
}

func countBySource(postings []models.JobPosting) []sourceCount {
	totals := make(map[string]int, len(postings))
	for _, posting := range postings {
		source := strings.ToLower(strings.TrimSpace(posting.Source))
		if source == "" {
			source = "unknown"
		}
		totals[source]++
	}

	counts := make([]sourceCount, 0, len(totals))
	for source, total := range totals {
		counts = append(counts, sourceCount{source: source, total: total})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].source < counts[j].source
	})
	return counts
}

func resolveOutputPath(opts SearchOptions) string {
	if opts.Output != "" {
		return opts.Output
	}
	if opts.Out != "" {
		return opts.Out
	}
	return opts.File
}

func resolveFormat(ctx *Context, opts SearchOptions, outputPath string) (export.Format, error) {
	if outputPath != "" {
		if ctx.JSONOutput {
			return export.FormatJSON, nil
		}
		if ctx.PlainText {
			return export.FormatTSV, nil
		}
		if opts.Format == "" {
			return export.FormatCSV, nil
		}
		return parseFormat(opts.Format)
	}

	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return parseFormat(opts.Format)
	}
	if opts.WithMeta {
		return export.FormatJSON, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startSearchIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KSearching... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
