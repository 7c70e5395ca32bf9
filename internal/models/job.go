package models

// JobPosting is the normalized posting shared across all providers.
// Title, Company and URL are always present (possibly empty, never null);
// together they identify a posting for deduplication.
type JobPosting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	URL          string   `json:"url"`
	SalaryMin    *float64 `json:"salary_min,omitempty"`
	SalaryMax    *float64 `json:"salary_max,omitempty"`
	ContractTime string   `json:"contract_time,omitempty"`
	ContractType string   `json:"contract_type,omitempty"`
	Source       string   `json:"source"`
}

// Identity returns the dedup key fields as a single string.
func (p JobPosting) Identity() string {
	return p.Title + "\x00" + p.Company + "\x00" + p.URL
}
