package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
)

const rssPlaceholderCompany = "Unknown"

// IndeedRSS reads the country-scoped Indeed RSS feed. Only the codes in
// rssCountries are served; any other country makes the adapter inert.
type IndeedRSS struct {
	client  *network.Client
	baseURL string
}

func NewIndeedRSS(client *network.Client) *IndeedRSS {
	return &IndeedRSS{client: client}
}

func (i *IndeedRSS) Name() string {
	return SourceIndeedRSS
}

func (i *IndeedRSS) Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error) {
	if !RSSCountrySupported(req.Country) {
		return nil, 0, nil
	}

	data, err := i.client.Get(ctx, i.feedURL(req), map[string]string{"Accept": "application/rss+xml"})
	if err != nil {
		return nil, 0, fmt.Errorf("indeed rss: %w", err)
	}

	postings, err := parseIndeedRSS(data, req.Location, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("indeed rss: %w", err)
	}

	// The feed carries no server-side total; this source never contributes
	// to the aggregate count.
	return postings, 0, nil
}

func (i *IndeedRSS) feedURL(req models.SearchRequest) string {
	base := i.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.indeed.com/rss", req.Country)
	}
	values := url.Values{}
	values.Set("q", req.Query)
	if req.Location != "" {
		values.Set("l", req.Location)
	}
	return fmt.Sprintf("%s?%s", base, values.Encode())
}

type rssDocument struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

func parseIndeedRSS(data []byte, requestedLocation string, limit int) ([]models.JobPosting, error) {
	var doc rssDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var postings []models.JobPosting
	for _, item := range doc.Items {
		if limit > 0 && len(postings) >= limit {
			break
		}

		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		company, location := splitRSSDescription(item.Description)
		if company == "" {
			company = rssPlaceholderCompany
		}
		if location == "" {
			location = requestedLocation
		}

		postings = append(postings, models.JobPosting{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      link,
			Source:   SourceIndeedRSS,
		})
	}
	return postings, nil
}

// splitRSSDescription handles the "title - company - location" item summary
// shape. Anything else yields empty fields so the caller can fall back.
func splitRSSDescription(description string) (company string, location string) {
	parts := strings.Split(collapseSpaces(stripHTML(description)), " - ")
	if len(parts) != 3 {
		return "", ""
	}
	return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
}
