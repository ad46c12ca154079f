package memory

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

type executor func(ctx context.Context, fn func(*state) error) error

// DishRepository implements ports.DishRepository on a unit of work.
type DishRepository struct {
	exec executor
}

func (r *DishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.exec(ctx, func(s *state) error {
		if !s.dishes.insert(aggregate.ID().String(), dishFromDomain(aggregate)) {
			return errs.NewValueIsInvalidError("dish id " + aggregate.ID().String())
		}
		return nil
	})
}

func (r *DishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.exec(ctx, func(s *state) error {
		if !s.dishes.replace(aggregate.ID().String(), dishFromDomain(aggregate)) {
			return errs.NewObjectNotFoundError("dish", aggregate.ID().String())
		}
		return nil
	})
}

func (r *DishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	var found *dish.Dish
	err := r.exec(ctx, func(s *state) error {
		var err error
		found, err = getDish(s, id)
		return err
	})
	return found, err
}

func (r *DishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	var dishes []*dish.Dish
	err := r.exec(ctx, func(s *state) error {
		var err error
		dishes, err = listDishes(s)
		return err
	})
	return dishes, err
}

func getDish(s *state, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := s.dishes.get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("dish", id.String())
	}
	return record.toDomain()
}

func listDishes(s *state) ([]*dish.Dish, error) {
	records := s.dishes.all()
	dishes := make([]*dish.Dish, 0, len(records))
	for _, record := range records {
		d, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}
