package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
)

const (
	remotiveBaseURL    = "https://remotive.com/api/remote-jobs"
	remotiveFetchLimit = 200
)

// Remotive is a public remote-jobs JSON feed; no credentials, fetched once
// per search with a bounded top-N.
type Remotive struct {
	client  *network.Client
	baseURL string
}

func NewRemotive(client *network.Client) *Remotive {
	return &Remotive{client: client, baseURL: remotiveBaseURL}
}

func (r *Remotive) Name() string {
	return SourceRemotive
}

func (r *Remotive) Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(remotiveFetchLimit))
	if req.Query != "" {
		values.Set("search", req.Query)
	}

	data, err := r.client.Get(ctx, fmt.Sprintf("%s?%s", r.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("remotive: %w", err)
	}

	candidates, err := parseRemotiveFeed(data)
	if err != nil {
		return nil, 0, fmt.Errorf("remotive: %w", err)
	}

	kept := filterFeedCandidates(req.Query, req.Location, limit, candidates)
	return kept, len(kept), nil
}

type remotiveFeed struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"candidate_required_location"`
	URL         string `json:"url"`
	Description string `json:"description"`
	JobType     string `json:"job_type"`
}

func parseRemotiveFeed(data []byte) ([]feedCandidate, error) {
	var decoded remotiveFeed
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	candidates := make([]feedCandidate, 0, len(decoded.Jobs))
	for _, job := range decoded.Jobs {
		posting := models.JobPosting{
			Title:        job.Title,
			Company:      job.CompanyName,
			Location:     job.Location,
			URL:          job.URL,
			ContractTime: job.JobType,
			Source:       SourceRemotive,
		}
		candidates = append(candidates, feedCandidate{
			posting: posting,
			text:    job.Title + " " + job.CompanyName + " " + job.Location + " " + stripHTML(job.Description),
		})
	}
	return candidates, nil
}
