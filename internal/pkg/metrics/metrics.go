// Package metrics exposes the service's prometheus collectors behind small
// interfaces so adapters do not import prometheus directly.
package metrics

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Validation() Validation
		Orders() Orders
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, route string, status int, duration time.Duration)
	}

	// Validation counts requests rejected by a validation pipeline.
	Validation interface {
		Failure(kind string)
	}

	// Orders tracks the order backlog reported by the backlog job.
	Orders interface {
		SetStatusCount(status string, count int)
		SetBacklog(count int)
	}
)
