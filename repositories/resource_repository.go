package repositories

import (
	"gorm.io/gorm"
)

// QueryOptions narrows All/Count/First/Last. Zero values mean "no filter".
type QueryOptions struct {
	Where   map[string]interface{}
	OrderBy string
	Limit   int
	Offset  int
}

// IResourceRepository is the data-access contract shared by every
// id-addressed collection. Absent rows surface as gorm.ErrRecordNotFound.
type IResourceRepository[T any] interface {
	Create(entity *T) (*T, error)
	All(options *QueryOptions) ([]T, error)
	Find(id uint) (*T, error)
	FindBy(attributes map[string]interface{}) (*T, error)
	Where(attributes map[string]interface{}) ([]T, error)
	Update(id uint, attributes map[string]interface{}) (*T, error)
	Destroy(id uint) (*T, error)
	Count(options *QueryOptions) (int64, error)
	First(options *QueryOptions) (*T, error)
	Last(options *QueryOptions) (*T, error)
}

type ResourceRepository[T any] struct {
	db *gorm.DB
}

func NewResourceRepository[T any](db *gorm.DB) IResourceRepository[T] {
	return &ResourceRepository[T]{db: db}
}

func (r *ResourceRepository[T]) apply(options *QueryOptions) *gorm.DB {
	query := r.db.Model(new(T))
	if options == nil {
		return query
	}
	if options.Where != nil {
		query = query.Where(options.Where)
	}
	if options.OrderBy != "" {
		query = query.Order(options.OrderBy)
	}
	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}
	if options.Offset > 0 {
		query = query.Offset(options.Offset)
	}
	return query
}

func (r *ResourceRepository[T]) Create(entity *T) (*T, error) {
	result := r.db.Create(entity)
	if result.Error != nil {
		return nil, result.Error
	}
	return entity, nil
}

func (r *ResourceRepository[T]) All(options *QueryOptions) ([]T, error) {
	var entities []T
	result := r.apply(options).Find(&entities)
	if result.Error != nil {
		return nil, result.Error
	}
	return entities, nil
}

func (r *ResourceRepository[T]) Find(id uint) (*T, error) {
	var entity T
	result := r.db.First(&entity, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entity, nil
}

func (r *ResourceRepository[T]) FindBy(attributes map[string]interface{}) (*T, error) {
	var entity T
	result := r.db.Where(attributes).First(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entity, nil
}

func (r *ResourceRepository[T]) Where(attributes map[string]interface{}) ([]T, error) {
	var entities []T
	result := r.db.Where(attributes).Find(&entities)
	if result.Error != nil {
		return nil, result.Error
	}
	return entities, nil
}

func (r *ResourceRepository[T]) Update(id uint, attributes map[string]interface{}) (*T, error) {
	// An empty payload still has to distinguish "exists" from "not found".
	if len(attributes) == 0 {
		return r.Find(id)
	}

	result := r.db.Model(new(T)).Where("id = ?", id).Updates(attributes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updated T
	if err := r.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Destroy reads the row before deleting so callers get the deleted entity back.
func (r *ResourceRepository[T]) Destroy(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}

	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity, nil
}

func (r *ResourceRepository[T]) Count(options *QueryOptions) (int64, error) {
	var count int64
	result := r.apply(options).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *ResourceRepository[T]) First(options *QueryOptions) (*T, error) {
	var entity T
	result := r.apply(options).Order("id asc").First(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entity, nil
}

// Last is the descending-id mirror of First.
func (r *ResourceRepository[T]) Last(options *QueryOptions) (*T, error) {
	var entity T
	result := r.apply(options).Order("id desc").Limit(1).First(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entity, nil
}
