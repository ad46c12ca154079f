package jobs_test

import (
	"bytes"
	"log/slog"
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/jobs"
	"grubdash/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) SetStatusCount(status string, count int) { m.Called(status, count) }

func (m *MockOrderMetrics) SetBacklog(count int) { m.Called(count) }

func seedOrders(t *testing.T, store *memory.Store, statuses ...order.Status) {
	t.Helper()
	repo := memory.NewUnitOfWorkFactory(store).Create().OrderRepository()
	for _, status := range statuses {
		item, err := order.NewLineItem(order.DishSnapshot{}, 1)
		require.NoError(t, err)
		o, err := order.RestoreOrder(kernel.NewID(), order.Details{
			DeliverTo: "a", MobileNumber: "b", Items: []order.LineItem{item},
		}, status)
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), o))
	}
}

func TestOrderBacklogJob_Run(t *testing.T) {
	store := memory.NewStore()
	seedOrders(t, store, order.Pending, order.Pending, order.Preparing, order.Delivered)

	m := new(MockOrderMetrics)
	m.On("SetStatusCount", "pending", 2).Once()
	m.On("SetStatusCount", "preparing", 1).Once()
	m.On("SetStatusCount", "out-for-delivery", 0).Once()
	m.On("SetStatusCount", "delivered", 1).Once()
	m.On("SetBacklog", 3).Once()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	handler := queries.NewGetOrderStatusSummaryQueryHandler(memory.NewOrderReader(store))
	job := jobs.NewOrderBacklogJob(handler, m, "", logger)

	require.NoError(t, job.Run(t.Context()))

	m.AssertExpectations(t)
	assert.Contains(t, logs.String(), `"backlog":3`)
	assert.Contains(t, logs.String(), `"component":"order_backlog_job"`)
}

func TestOrderBacklogJob_InvalidSchedule(t *testing.T) {
	handler := queries.NewGetOrderStatusSummaryQueryHandler(memory.NewOrderReader(memory.NewStore()))
	manager := jobs.NewJobManager(handler, new(MockOrderMetrics), "not a schedule", slog.Default())

	require.Error(t, manager.StartAll())
}

func TestJobManager_StartStop(t *testing.T) {
	handler := queries.NewGetOrderStatusSummaryQueryHandler(memory.NewOrderReader(memory.NewStore()))
	manager := jobs.NewJobManager(handler, metrics.NewFactory().Orders(), jobs.DefaultBacklogSchedule, slog.Default())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
