// Package maintenance holds the batch jobs run from the command line: rebuilding the search index
// and back-filling coordinates of breweries that were stored without them.
package maintenance

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/pkg/integrations"
	"droscher.com/BreweryDB/pkg/integrations/nominatim"
	"droscher.com/BreweryDB/pkg/model"
	"droscher.com/BreweryDB/pkg/repository"
)

var ErrInvalidBatchSize = errors.New("batch size must be at least 1")

type batchIndexer interface {
	IndexBreweries(ctx context.Context, breweries []*model.Brewery) error
}

type coordinateStore interface {
	GetBreweriesWithoutCoordinates(ctx context.Context, afterID uint, limit int) ([]*model.Brewery, error)
	UpdateCoordinates(ctx context.Context, breweryID uint, latitude, longitude *float64) error
}

type BackfillStats struct {
	Geocoded int
	NoResult int
	Failed   int
}

// Reindex writes every stored brewery to the search index and returns the number indexed.
func Reindex(ctx context.Context, repo repository.BreweryRepository, index batchIndexer, batchSize int, logger *zap.Logger) (int, error) {
	if batchSize < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}

	indexed := 0

	err := repo.FindBreweriesInBatches(ctx, batchSize, func(breweries []*model.Brewery) error {
		if err := index.IndexBreweries(ctx, breweries); err != nil {
			return err
		}

		indexed += len(breweries)
		logger.Info("indexed breweries", zap.Int("total", indexed))

		return nil
	})
	if err != nil {
		return indexed, fmt.Errorf("reindex stopped after %d breweries: %w", indexed, err)
	}

	return indexed, nil
}

// BackfillCoordinates geocodes breweries without coordinates. Lookups that fail are collected and
// the remaining breweries are still processed.
func BackfillCoordinates(ctx context.Context, store coordinateStore, geocoder integrations.Geocoder, batchSize int, logger *zap.Logger) (BackfillStats, error) {
	var (
		stats  BackfillStats
		errs   error
		lastID uint
	)

	if batchSize < 1 {
		return stats, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}

	for {
		breweries, err := store.GetBreweriesWithoutCoordinates(ctx, lastID, batchSize)
		if err != nil {
			return stats, multierr.Append(errs, err)
		}

		for _, brewery := range breweries {
			lastID = brewery.ID

			coordinates, err := geocoder.Geocode(ctx, brewery.Address())
			if err != nil {
				if errors.Is(err, nominatim.ErrNoResult) {
					stats.NoResult++

					continue
				}

				if ctx.Err() != nil {
					return stats, multierr.Append(errs, ctx.Err())
				}

				stats.Failed++
				multierr.AppendInto(&errs, fmt.Errorf("brewery %d: %w", brewery.ID, err))

				continue
			}

			if err := store.UpdateCoordinates(ctx, brewery.ID, &coordinates.Latitude, &coordinates.Longitude); err != nil {
				return stats, multierr.Append(errs, err)
			}

			stats.Geocoded++
		}

		logger.Info("geocoded batch",
			zap.Int("geocoded", stats.Geocoded), zap.Int("no_result", stats.NoResult), zap.Int("failed", stats.Failed))

		if len(breweries) < batchSize {
			return stats, errs
		}
	}
}
