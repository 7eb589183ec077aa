package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/plant-tracker/server/internal/models"
	"github.com/plant-tracker/server/pkg/apperr"
)

type PlantRepository interface {
	BaseRepository[models.Plant]
	List(ctx context.Context) ([]models.Plant, error)
}

type plantRepository struct {
	BaseRepository[models.Plant]
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{BaseRepository: NewBaseRepository[models.Plant](db), db: db}
}

// List returns every plant ordered by creation time. The result is never
// nil so an empty table serializes as [].
func (r *plantRepository) List(ctx context.Context) ([]models.Plant, error) {
	out := make([]models.Plant, 0)
	if err := r.db.WithContext(ctx).Order("created_at").Find(&out).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal)
	}
	return out, nil
}
