package seen

import (
	"path/filepath"
	"testing"

	"github.com/MrJJimenez/jobradar/internal/models"
)

func TestReadWritePostings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "postings.json")

	postings := []models.JobPosting{{Title: "SRE", Company: "Acme", URL: "https://example.com/1", Source: "adzuna"}}
	if err := WritePostings(path, postings); err != nil {
		t.Fatalf("WritePostings() error = %v", err)
	}

	got, err := ReadPostings(path)
	if err != nil {
		t.Fatalf("ReadPostings() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected len=1, got %d", len(got))
	}
	if got[0].Title != postings[0].Title || got[0].Source != postings[0].Source {
		t.Fatalf("unexpected posting read back: %+v", got[0])
	}
}

func TestReadPostingsAllowMissing(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")

	got, err := ReadPostingsAllowMissing(missing)
	if err != nil {
		t.Fatalf("ReadPostingsAllowMissing() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty postings for missing file, got %d", len(got))
	}
}
