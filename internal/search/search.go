// Package search implements the catalog text filter: a search term matches a
// category when, after trimming and Unicode lower-casing, it is a substring of
// the category name, its description, or any of its tool names.
package search

import (
	"strings"

	"github.com/agentx-labs/automatiza/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lower-cases term. An empty result
// means "no filter".
func Normalize(term string) string {
	return fold(strings.TrimSpace(term))
}

// Matches reports whether the already-normalized term matches c. An empty
// term matches everything.
func Matches(c catalog.AutomationCategory, normalized string) bool {
	if normalized == "" {
		return true
	}
	if strings.Contains(fold(c.Category), normalized) {
		return true
	}
	if strings.Contains(fold(c.Description), normalized) {
		return true
	}
	for _, tool := range c.Tools {
		if strings.Contains(fold(tool), normalized) {
			return true
		}
	}
	return false
}

// Filter returns the categories matching term, in their original order.
// An empty or whitespace-only term returns categories unchanged.
func Filter(categories []catalog.AutomationCategory, term string) []catalog.AutomationCategory {
	normalized := Normalize(term)
	if normalized == "" {
		return categories
	}

	matched := make([]catalog.AutomationCategory, 0, len(categories))
	for _, c := range categories {
		if Matches(c, normalized) {
			matched = append(matched, c)
		}
	}
	return matched
}

// fold lower-cases s with the language-neutral Unicode mapping. Unlike full
// case folding it keeps multi-rune expansions apart ("ß" does not match "ss").
// Casers are stateful, so each call gets its own.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
