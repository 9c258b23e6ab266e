// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/montanaflynn/stats"

	"github.com/YANHAN-BLCU/reporank/internal/domain"
)

// Ranker is the use case for ordering repositories by popularity and
// computing summary statistics over the result.
type Ranker struct {
	threshold int
	logger    *log.Logger
}

// NewRanker creates a new Ranker instance. threshold is the star count a
// repository must exceed to be counted as popular.
func NewRanker(threshold int, logger *log.Logger) *Ranker {
	return &Ranker{
		threshold: threshold,
		logger:    logger,
	}
}

// Rank returns a new slice sorted by star count descending, ties broken by
// name ascending. The input is not modified. Records sharing both name and
// star count keep no particular relative order.
func (r *Ranker) Rank(repos []domain.Repository) []domain.Repository {
	ranked := make([]domain.Repository, len(repos))
	copy(ranked, repos)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}
		return ranked[i].Name < ranked[j].Name
	})

	r.logger.Debug("Ranked repositories", "count", len(ranked))
	return ranked
}

// Summarize computes the aggregate statistics for a ranked list: the
// top-ranked repository (nil for an empty list), total count, count above
// the popularity threshold, and the mean/median star counts.
func (r *Ranker) Summarize(ranked []domain.Repository) domain.Summary {
	summary := domain.Summary{
		Total:     len(ranked),
		Threshold: r.threshold,
	}
	if len(ranked) == 0 {
		return summary
	}

	top := ranked[0]
	summary.MostPopular = &top

	starCounts := make([]float64, len(ranked))
	for i, repo := range ranked {
		if repo.Stars > r.threshold {
			summary.Popular++
		}
		starCounts[i] = float64(repo.Stars)
	}

	// stats only errors on empty input, which is handled above.
	summary.MeanStars, _ = stats.Mean(starCounts)
	summary.MedianStars, _ = stats.Median(starCounts)

	return summary
}
