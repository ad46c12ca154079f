package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

func newDish(t *testing.T) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(kernel.NewID(), dish.Fields{
		Name:        gofakeit.Dinner(),
		Description: gofakeit.Sentence(5),
		Price:       gofakeit.IntRange(1, 3000),
		ImageURL:    gofakeit.URL(),
	})
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(order.DishSnapshot{DishID: ptr(kernel.NewID().String())}, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewID(), order.Details{
		DeliverTo:    gofakeit.Street(),
		MobileNumber: gofakeit.Phone(),
		Items:        []order.LineItem{item},
	})
	require.NoError(t, err)
	return o
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	store   *memory.Store
	factory *memory.UnitOfWorkFactory
	dishes  memory.DishReader
	orders  memory.OrderReader
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.factory = memory.NewUnitOfWorkFactory(s.store)
	s.dishes = memory.NewDishReader(s.store)
	s.orders = memory.NewOrderReader(s.store)
}

func (s *UnitOfWorkTestSuite) TestCommit_PublishesChanges() {
	ctx := s.T().Context()
	d := newDish(s.T())

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.DishRepository().Add(ctx, d))

	_, err := s.dishes.Get(ctx, d.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound, "uncommitted writes must stay private")

	s.Require().NoError(uow.Commit(ctx))

	got, err := s.dishes.Get(ctx, d.ID())
	s.Require().NoError(err)
	s.Equal(d.Fields(), got.Fields())
}

func (s *UnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := s.T().Context()
	o := newOrder(s.T())

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Rollback(ctx))

	all, err := s.orders.List(ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *UnitOfWorkTestSuite) TestRollbackAfterCommit_Fails() {
	ctx := s.T().Context()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveTransaction)
	s.Require().ErrorIs(uow.Commit(ctx), memory.ErrNoActiveTransaction)

	next := s.factory.Create()
	s.Require().NoError(next.Begin(ctx), "the lock must have been released once")
	s.Require().NoError(next.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := s.T().Context()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestBegin_WaitsForRunningUnitOfWork() {
	ctx := s.T().Context()
	first := s.factory.Create()
	s.Require().NoError(first.Begin(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := s.factory.Create().Begin(waitCtx)
	s.Require().ErrorIs(err, context.DeadlineExceeded)

	s.Require().NoError(first.Rollback(ctx))
	s.Require().NoError(s.factory.Create().Begin(ctx))
}

func (s *UnitOfWorkTestSuite) TestWithoutBegin_WritesThrough() {
	ctx := s.T().Context()
	d := newDish(s.T())

	s.Require().NoError(s.factory.Create().DishRepository().Add(ctx, d))

	got, err := s.dishes.Get(ctx, d.ID())
	s.Require().NoError(err)
	s.True(d.ID().IsEqual(got.ID()))
}

func (s *UnitOfWorkTestSuite) TestConcurrentUpdates_AreSerialized() {
	ctx := s.T().Context()
	d := newDish(s.T())
	s.Require().NoError(s.factory.Create().DishRepository().Add(ctx, d))

	const workers = 32
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			uow := s.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.DishRepository()
			current, err := repo.Get(ctx, d.ID())
			if err != nil {
				return err
			}
			fields := current.Fields()
			fields.Price++
			if err = current.Update(fields); err != nil {
				return err
			}
			if err = repo.Update(ctx, current); err != nil {
				return err
			}
			return uow.Commit(ctx)
		})
	}
	s.Require().NoError(g.Wait())

	got, err := s.dishes.Get(ctx, d.ID())
	s.Require().NoError(err)
	s.Equal(d.Price()+workers, got.Price())
}

func (s *UnitOfWorkTestSuite) TestReset_DropsData() {
	ctx := s.T().Context()
	s.Require().NoError(s.factory.Create().OrderRepository().Add(ctx, newOrder(s.T())))

	s.Require().NoError(s.store.Reset(ctx))

	all, err := s.orders.List(ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func TestUnitOfWork_FailedWriteThroughLeavesStoreUntouched(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewUnitOfWorkFactory(store).Create().OrderRepository()

	err := repo.Remove(ctx, kernel.NewID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	var notFound *errs.ObjectNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func ptr[T any](v T) *T {
	return &v
}
