package seen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MrJJimenez/jobradar/internal/models"
)

// ReadPostings reads a JSON array of postings from path.
func ReadPostings(path string) ([]models.JobPosting, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.JobPosting{}, nil
	}

	var postings []models.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, err
	}
	if postings == nil {
		return []models.JobPosting{}, nil
	}
	return postings, nil
}

// ReadPostingsAllowMissing reads postings and treats missing files as empty history.
func ReadPostingsAllowMissing(path string) ([]models.JobPosting, error) {
	postings, err := ReadPostings(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.JobPosting{}, nil
		}
		return nil, err
	}
	return postings, nil
}

// WritePostings writes postings as pretty JSON.
func WritePostings(path string, postings []models.JobPosting) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	if postings == nil {
		postings = []models.JobPosting{}
	}
	data, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
