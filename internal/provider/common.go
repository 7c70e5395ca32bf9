package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func stripHTML(value string) string {
	if !strings.ContainsRune(value, '<') {
		return collapseSpaces(value)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return collapseSpaces(value)
	}
	return collapseSpaces(doc.Text())
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func clampLimit(limit int, max int) int {
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}
