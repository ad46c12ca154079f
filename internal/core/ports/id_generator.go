package ports

import "grubdash/internal/core/domain/model/kernel"

// IDGenerator mints identifiers for new entities. It is only used at creation.
type IDGenerator interface {
	Next() kernel.ID
}
