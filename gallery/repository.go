// Package gallery persists the named record galleries (avatars, scenes,
// products) behind a keyed-store interface. Nothing in the pipeline
// depends on the storage mechanism.
package gallery

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record with the requested ID does not
// exist.
var ErrNotFound = errors.New("record not found")

// Repository is a keyed store of gallery records.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Upsert(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uint) error
}

// GormRepository is the Postgres-backed repository used in production.
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository builds a repository over the given connection.
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *GormRepository[T]) Upsert(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
