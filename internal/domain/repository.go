// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// Repository holds the popularity data for a single non-fork repository.
// It is the core domain entity of this application. Values are never
// mutated after construction.
type Repository struct {
	Name        string  `json:"name"`
	Stars       int     `json:"stars"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

// String renders the repository as "name (N★)" for console output.
func (r Repository) String() string {
	return fmt.Sprintf("%s (%d★)", r.Name, r.Stars)
}

// Summary holds the aggregate statistics computed over a ranked repository list.
type Summary struct {
	// MostPopular is the top-ranked repository, or nil when the list is empty.
	MostPopular *Repository
	// Total is the number of non-fork repositories.
	Total int
	// Popular is the number of repositories with more than Threshold stars.
	Popular int
	// Threshold is the star count a repository must exceed to count as popular.
	Threshold int
	// MeanStars and MedianStars describe the star distribution.
	// Both are zero when the list is empty.
	MeanStars   float64
	MedianStars float64
}
