package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// WriteResult renders an aggregation result. With meta requested and JSON
// output the caller gets the {items, total} object; every other combination
// renders the bare posting list.
func WriteResult(w io.Writer, result models.AggregationResult, withMeta bool, format Format, opts WriteOptions) error {
	if withMeta && format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return WritePostings(w, result.Postings, format, opts)
}

func WritePostings(w io.Writer, postings []models.JobPosting, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, postings)
	case FormatCSV:
		return writeCSV(w, postings, ',')
	case FormatTSV:
		return writeCSV(w, postings, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, postings)
	default:
		return writeTable(w, postings, opts)
	}
}

func writeJSON(w io.Writer, postings []models.JobPosting) error {
	if postings == nil {
		postings = []models.JobPosting{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(postings)
}

func writeCSV(w io.Writer, postings []models.JobPosting, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, posting := range postings {
		if err := writer.Write(csvRow(posting)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, postings []models.JobPosting, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for _, posting := range postings {
		fmt.Fprintln(tw, strings.Join(tableRow(posting, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, postings []models.JobPosting) error {
	if len(postings) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, posting := range postings {
		urlLine := "  URL: -"
		if link := safe(posting.URL); link != "" {
			urlLine = fmt.Sprintf("  URL: [Open listing](<%s>)", link)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(posting.Title), safe(posting.Company)),
			fmt.Sprintf("  Location: %s", safe(posting.Location)),
			fmt.Sprintf("  Source: %s", safe(posting.Source)),
			urlLine,
		}
		if salary := salaryString(posting); salary != "" {
			lines = append(lines, fmt.Sprintf("  Salary: %s", salary))
		}
		if posting.ContractTime != "" {
			lines = append(lines, fmt.Sprintf("  Time: %s", safe(posting.ContractTime)))
		}
		if posting.ContractType != "" {
			lines = append(lines, fmt.Sprintf("  Type: %s", safe(posting.ContractType)))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"source",
		"title",
		"company",
		"location",
		"url",
		"salary_min",
		"salary_max",
		"contract_time",
		"contract_type",
	}
}

func csvRow(posting models.JobPosting) []string {
	return []string{
		posting.Source,
		posting.Title,
		posting.Company,
		posting.Location,
		posting.URL,
		floatString(posting.SalaryMin),
		floatString(posting.SalaryMax),
		posting.ContractTime,
		posting.ContractType,
	}
}

func floatString(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func salaryString(posting models.JobPosting) string {
	minStr := floatString(posting.SalaryMin)
	maxStr := floatString(posting.SalaryMax)
	switch {
	case minStr != "" && maxStr != "":
		return minStr + " - " + maxStr
	case minStr != "":
		return minStr
	default:
		return maxStr
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableHeader() []string {
	return []string{
		"source",
		"title",
		"company",
		"url",
	}
}

func tableRow(posting models.JobPosting, output *termenv.Output, opts WriteOptions) []string {
	const linkColor = "#87CEEB"

	link := safe(posting.URL)
	displayURL := "-"
	if link != "" {
		displayURL = link
		if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
			displayURL = shortURLLabel(link)
		}
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(link, displayURL)
		}
	}
	return []string{
		safe(posting.Source),
		safe(posting.Title),
		safe(posting.Company),
		displayURL,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
