package app

import (
	"context"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/platform/observability"
)

const statsWorkerName = "record-stats"

// collectRecordStats refreshes the collection size gauges.
func (a *App) collectRecordStats(ctx context.Context) {
	threshold := a.engine.Config().HighRatingThreshold

	wines, err := a.store.ListWines(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to list wines for stats")
	} else {
		setRecordGauges(domain.CategoryWine, wines, threshold)
	}

	sakes, err := a.store.ListSakes(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to list sakes for stats")
	} else {
		setRecordGauges(domain.CategorySake, sakes, threshold)
	}
}

func setRecordGauges[T domain.RatedItem](category domain.Category, items []T, threshold int) {
	high := 0

	for _, item := range items {
		if domain.IsHighRated(item, threshold) {
			high++
		}
	}

	observability.RecordsStored.WithLabelValues(string(category)).Set(float64(len(items)))
	observability.HighRatedRecords.WithLabelValues(string(category)).Set(float64(high))
}
