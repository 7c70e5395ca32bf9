package models

const (
	// CountryGlobal is the sentinel for "no specific country requested".
	CountryGlobal = "global"

	MinPerPage = 1
	MaxPerPage = 50
)

type ContractTime string

const (
	ContractTimeUnset ContractTime = ""
	ContractFullTime  ContractTime = "full_time"
	ContractPartTime  ContractTime = "part_time"
)

type ContractType string

const (
	ContractTypeUnset ContractType = ""
	ContractPermanent ContractType = "permanent"
	ContractContract  ContractType = "contract"
)

type SortOrder string

const (
	SortUnset     SortOrder = ""
	SortRelevance SortOrder = "relevance"
	SortDate      SortOrder = "date"
	SortSalary    SortOrder = "salary"
)

// SearchRequest captures the validated search inputs handed to the aggregator.
// Zero values mean "unset"; Remote is tri-state (nil = unspecified).
type SearchRequest struct {
	Query        string
	Location     string
	Remote       *bool
	SalaryMin    int
	SalaryMax    int
	Page         int
	PerPage      int
	Country      string
	ContractTime ContractTime
	ContractType ContractType
	Distance     int
	MaxDaysOld   int
	Sort         SortOrder
	WithMeta     bool
}

// PageOrDefault returns the requested page, never below 1.
func (r SearchRequest) PageOrDefault() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// PerPageOrDefault returns the page size clamped to [MinPerPage, MaxPerPage],
// with fallback applied when unset.
func (r SearchRequest) PerPageOrDefault(fallback int) int {
	size := r.PerPage
	if size == 0 {
		size = fallback
	}
	if size < MinPerPage {
		return MinPerPage
	}
	if size > MaxPerPage {
		return MaxPerPage
	}
	return size
}

// GlobalCountry reports whether no specific country was requested.
func (r SearchRequest) GlobalCountry() bool {
	return r.Country == "" || r.Country == CountryGlobal
}
