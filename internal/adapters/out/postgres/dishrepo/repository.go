package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDishRepository implements DishRepository using GORM.
type GormDishRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewGormDishRepository creates a repository that reads without row locks.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// NewLockingGormDishRepository creates a repository whose Get locks the row
// until the surrounding transaction ends.
func NewLockingGormDishRepository(tx *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: tx, forUpdate: true}
}

// Add saves a new dish to the database.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the fields of an existing dish. CreatedAt is left untouched.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).Where("id = ?", dto.ID).
		Select("name", "description", "price", "image_url").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", dto.ID)
	}

	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx)
	if r.forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DishDTO
	if err := q.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves all dishes in creation order.
func (r *GormDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	return dishes, nil
}
