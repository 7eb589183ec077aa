package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/plant-tracker/server/pkg/apperr"
)

// BaseRepository defines common CRUD operations over a single table.
// Failures come back as coded apperr values: a missing row is
// apperr.CodeNotFound, an insert that affects no rows is
// apperr.CodeCreateFailed, anything else apperr.CodeInternal.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id string, dest *T) error
	Save(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id string) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	res := r.db.WithContext(ctx).Create(obj)
	if res.Error != nil {
		return apperr.Wrap(res.Error, apperr.CodeInternal)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeCreateFailed)
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id string, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.CodeNotFound)
		}
		return apperr.Wrap(err, apperr.CodeInternal)
	}
	return nil
}

func (r *baseRepository[T]) Save(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Save(obj).Error; err != nil {
		return apperr.Wrap(err, apperr.CodeInternal)
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id string) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(res.Error, apperr.CodeInternal)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound)
	}
	return nil
}
