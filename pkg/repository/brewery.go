package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"droscher.com/BreweryDB/pkg/filter"
	"droscher.com/BreweryDB/pkg/model"
	"droscher.com/BreweryDB/pkg/sorting"
)

var (
	ErrBreweryNotFound  = errors.New("brewery not found")
	ErrValidationFailed = errors.New("validation failed")
)

type BreweryRepository interface { //nolint:interfacebloat // this is an acceptable interface
	AddBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error)
	DeleteBrewery(ctx context.Context, breweryID uint) error
	FindBreweriesInBatches(ctx context.Context, batchSize int, process func([]*model.Brewery) error) error
	GetBreweriesByIDs(ctx context.Context, breweryIDs []uint) ([]*model.Brewery, error)
	GetBreweriesWithoutCoordinates(ctx context.Context, afterID uint, limit int) ([]*model.Brewery, error)
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
	ListBreweries(ctx context.Context, predicates filter.Predicates, ordering sorting.Ordering, page Page) ([]*model.Brewery, error)
	UpdateBrewery(ctx context.Context, brewery *model.Brewery) (*model.Brewery, error)
	UpdateCoordinates(ctx context.Context, breweryID uint, latitude, longitude *float64) error
}

type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// defaultOrdering applies when the caller asks for no explicit sort.
var defaultOrdering = sorting.Ordering{{Field: "id", Direction: sorting.Ascending}}

// BreweryAttributes lists the column names of the breweries table that callers may sort on.
func BreweryAttributes() ([]string, error) {
	brewerySchema, err := schema.Parse(&model.Brewery{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(slices.Clone(brewerySchema.DBNames), func(name string) bool {
		return name == "deleted_at"
	}), nil
}

func (r *Repository) ListBreweries(ctx context.Context, predicates filter.Predicates, ordering sorting.Ordering, page Page) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	if ordering.IsEmpty() {
		ordering = defaultOrdering
	}

	result := r.DB.WithContext(ctx).
		Preload("Tags").
		Scopes(predicates.Scopes()...).
		Order(ordering.OrderBy()).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&breweries)
	if result.Error != nil {
		r.Logger.Error("error listing breweries", zap.String("order", ordering.String()), zap.Error(result.Error))

		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	var brewery model.Brewery

	result := r.DB.WithContext(ctx).Preload("Tags").First(&brewery, breweryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return &brewery, nil
}

// GetBreweriesByIDs returns the breweries in the order of breweryIDs. Identifiers without a
// brewery are skipped.
func (r *Repository) GetBreweriesByIDs(ctx context.Context, breweryIDs []uint) ([]*model.Brewery, error) {
	if len(breweryIDs) == 0 {
		return []*model.Brewery{}, nil
	}

	var found []*model.Brewery

	if result := r.DB.WithContext(ctx).Preload("Tags").Where("breweries.id IN ?", breweryIDs).Find(&found); result.Error != nil {
		return nil, result.Error
	}

	byID := make(map[uint]*model.Brewery, len(found))
	for _, brewery := range found {
		byID[brewery.ID] = brewery
	}

	breweries := make([]*model.Brewery, 0, len(found))

	for _, breweryID := range breweryIDs {
		brewery, ok := byID[breweryID]
		if !ok {
			r.Logger.Warn("brewery missing from store", zap.Uint("brewery_id", breweryID))

			continue
		}

		breweries = append(breweries, brewery)
	}

	return breweries, nil
}

func (r *Repository) AddBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error) {
	if err := brewery.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, brewery.TagNames())
		if err != nil {
			return err
		}

		brewery.Tags = tags

		return tx.Create(&brewery).Error
	})
	if err != nil {
		return nil, translateWriteError(err)
	}

	return &brewery, nil
}

func (r *Repository) UpdateBrewery(ctx context.Context, brewery *model.Brewery) (*model.Brewery, error) {
	if err := brewery.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, brewery.TagNames())
		if err != nil {
			return err
		}

		if err := tx.Omit("Tags").Save(brewery).Error; err != nil {
			return err
		}

		brewery.Tags = tags

		return tx.Model(brewery).Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, translateWriteError(err)
	}

	return brewery, nil
}

func (r *Repository) DeleteBrewery(ctx context.Context, breweryID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Brewery{}, breweryID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBreweryNotFound
	}

	return nil
}

func (r *Repository) UpdateCoordinates(ctx context.Context, breweryID uint, latitude, longitude *float64) error {
	result := r.DB.WithContext(ctx).Model(&model.Brewery{}).
		Where("id = ?", breweryID).
		Updates(map[string]interface{}{"latitude": latitude, "longitude": longitude})

	return result.Error
}

func (r *Repository) GetBreweriesWithoutCoordinates(ctx context.Context, afterID uint, limit int) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	result := r.DB.WithContext(ctx).
		Where("id > ?", afterID).
		Where("latitude IS NULL OR longitude IS NULL").
		Order("id").
		Limit(limit).
		Find(&breweries)
	if result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) FindBreweriesInBatches(ctx context.Context, batchSize int, process func([]*model.Brewery) error) error {
	var batch []*model.Brewery

	result := r.DB.WithContext(ctx).Preload("Tags").FindInBatches(&batch, batchSize, func(_ *gorm.DB, number int) error {
		r.Logger.Debug("processing brewery batch", zap.Int("batch", number), zap.Int("size", len(batch)))

		return process(batch)
	})

	return result.Error
}

// resolveTags makes sure every tag exists and returns the stored rows.
func resolveTags(tx *gorm.DB, names []string) ([]model.Tag, error) {
	if len(names) == 0 {
		return []model.Tag{}, nil
	}

	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, model.Tag{Tag: name})
	}

	if result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags); result.Error != nil {
		return nil, result.Error
	}

	var stored []model.Tag

	if result := tx.Where("tag IN ?", names).Order("tag").Find(&stored); result.Error != nil {
		return nil, result.Error
	}

	return stored, nil
}

func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return err
}
