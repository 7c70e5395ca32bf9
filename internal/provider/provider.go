package provider

import (
	"context"

	"github.com/MrJJimenez/jobradar/internal/models"
)

const (
	SourceAdzuna    = "adzuna"
	SourceRemotive  = "remotive"
	SourceArbeitnow = "arbeitnow"
	SourceIndeedRSS = "indeed"
)

// Provider translates one external job source into canonical postings.
// Search returns the postings plus the source's total-count estimate for the
// query. A provider that cannot run (missing credentials, unsupported
// country) returns an empty slice, zero total and a nil error; transport and
// payload failures surface as errors for the caller to isolate.
type Provider interface {
	Name() string
	Search(ctx context.Context, req models.SearchRequest, limit int) ([]models.JobPosting, int, error)
}
