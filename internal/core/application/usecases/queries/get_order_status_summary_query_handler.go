package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

type GetOrderStatusSummaryQueryHandler struct {
	reader OrderReader
}

func NewGetOrderStatusSummaryQueryHandler(reader OrderReader) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{reader: reader}
}

func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) (GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	counts, err := h.reader.CountByStatus(ctx)
	if err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	var response GetOrderStatusSummaryQueryResponse
	for _, status := range order.Statuses() {
		n := counts[status]
		response.Counts = append(response.Counts, StatusCount{Status: status.String(), Count: n})
		response.Total += n
	}
	return response, nil
}
