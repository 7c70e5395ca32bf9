package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
)

const arbeitnowBaseURL = "https://www.arbeitnow.com/api/job-board-api"

// Arbeitnow is a public job-board JSON feed; the first page is fetched once
// per search and filtered locally.
type Arbeitnow struct {
	client  *network.Client
	baseURL string
}

func NewArbeitnow(client *network.Client) *Arbeitnow {
	return &Arbeitnow{client: client, baseURL: arbeitnowBaseURL}
}

func (a *Arbeitnow) Name() string {
	return SourceArbeitnow
}

func (a *Arbeitnow) Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error) {
	data, err := a.client.Get(ctx, a.baseURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("arbeitnow: %w", err)
	}

	candidates, err := parseArbeitnowFeed(data)
	if err != nil {
		return nil, 0, fmt.Errorf("arbeitnow: %w", err)
	}

	kept := filterFeedCandidates(req.Query, req.Location, limit, candidates)
	return kept, len(kept), nil
}

type arbeitnowFeed struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	JobTypes    []string `json:"job_types"`
}

func parseArbeitnowFeed(data []byte) ([]feedCandidate, error) {
	var decoded arbeitnowFeed
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	candidates := make([]feedCandidate, 0, len(decoded.Data))
	for _, job := range decoded.Data {
		location := job.Location
		if job.Remote && location == "" {
			location = "Remote"
		}
		posting := models.JobPosting{
			Title:        job.Title,
			Company:      job.CompanyName,
			Location:     location,
			URL:          job.URL,
			ContractTime: strings.Join(job.JobTypes, ", "),
			Source:       SourceArbeitnow,
		}
		candidates = append(candidates, feedCandidate{
			posting: posting,
			text:    job.Title + " " + job.CompanyName + " " + location + " " + stripHTML(job.Description),
		})
	}
	return candidates, nil
}
