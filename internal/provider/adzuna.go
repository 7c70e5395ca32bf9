package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/network"
)

const (
	adzunaBaseURL    = "https://api.adzuna.com/v1/api/jobs"
	adzunaMaxPerPage = 50
)

// Adzuna is the keyed REST provider. Credentials come from the process
// environment; without them the adapter is inert, not an error.
type Adzuna struct {
	client  *network.Client
	baseURL string
	appID   string
	appKey  string
}

func NewAdzuna(client *network.Client) *Adzuna {
	return &Adzuna{
		client:  client,
		baseURL: adzunaBaseURL,
		appID:   os.Getenv("ADZUNA_APP_ID"),
		appKey:  os.Getenv("ADZUNA_APP_KEY"),
	}
}

func (a *Adzuna) Name() string {
	return SourceAdzuna
}

func (a *Adzuna) Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error) {
	return a.SearchCountries(ctx, req, limit, Candidates(req.Country))
}

// SearchCountries issues one call per candidate country and concatenates
// postings and self-reported totals.
func (a *Adzuna) SearchCountries(ctx context.Context, req models.SearchRequest, limit int, countries []string) ([]models.JobPosting, int, error) {
	if a.appID == "" || a.appKey == "" {
		return nil, 0, nil
	}

	var (
		postings []models.JobPosting
		total    int
	)
	for _, country := range countries {
		data, err := a.client.Get(ctx, a.buildURL(req, limit, country), nil)
		if err != nil {
			return nil, 0, fmt.Errorf("adzuna %s: %w", country, err)
		}
		pagePostings, pageTotal, err := parseAdzunaResponse(data)
		if err != nil {
			return nil, 0, fmt.Errorf("adzuna %s: %w", country, err)
		}
		postings = append(postings, pagePostings...)
		total += pageTotal
	}
	return postings, total, nil
}

func (a *Adzuna) buildURL(req models.SearchRequest, limit int, country string) string {
	values := url.Values{}
	values.Set("app_id", a.appID)
	values.Set("app_key", a.appKey)
	values.Set("content-type", "application/json")
	values.Set("results_per_page", strconv.Itoa(clampLimit(req.PerPageOrDefault(limit), adzunaMaxPerPage)))
	if req.Query != "" {
		values.Set("what", req.Query)
	}
	if req.Location != "" {
		values.Set("where", req.Location)
	}
	if req.SalaryMin > 0 {
		values.Set("salary_min", strconv.Itoa(req.SalaryMin))
	}
	if req.SalaryMax > 0 {
		values.Set("salary_max", strconv.Itoa(req.SalaryMax))
	}
	if req.Distance > 0 {
		values.Set("distance", strconv.Itoa(req.Distance))
	}
	if req.MaxDaysOld > 0 {
		values.Set("max_days_old", strconv.Itoa(req.MaxDaysOld))
	}

	// Only whitelisted enum values are forwarded; anything else is dropped.
	switch req.ContractTime {
	case models.ContractFullTime:
		values.Set("full_time", "1")
	case models.ContractPartTime:
		values.Set("part_time", "1")
	}
	switch req.ContractType {
	case models.ContractPermanent:
		values.Set("permanent", "1")
	case models.ContractContract:
		values.Set("contract", "1")
	}
	switch req.Sort {
	case models.SortRelevance, models.SortDate, models.SortSalary:
		values.Set("sort_by", string(req.Sort))
	}

	return fmt.Sprintf("%s/%s/search/%d?%s", a.baseURL, country, req.PageOrDefault(), values.Encode())
}

type adzunaResponse struct {
	Count   int            `json:"count"`
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title        string   `json:"title"`
	RedirectURL  string   `json:"redirect_url"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractTime string   `json:"contract_time"`
	ContractType string   `json:"contract_type"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

func parseAdzunaResponse(data []byte) ([]models.JobPosting, int, error) {
	var decoded adzunaResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, 0, err
	}

	postings := make([]models.JobPosting, 0, len(decoded.Results))
	for _, item := range decoded.Results {
		postings = append(postings, models.JobPosting{
			Title:        item.Title,
			Company:      item.Company.DisplayName,
			Location:     item.Location.DisplayName,
			URL:          item.RedirectURL,
			SalaryMin:    item.SalaryMin,
			SalaryMax:    item.SalaryMax,
			ContractTime: item.ContractTime,
			ContractType: item.ContractType,
			Source:       SourceAdzuna,
		})
	}
	return postings, decoded.Count, nil
}
