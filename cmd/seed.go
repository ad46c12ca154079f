package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"grubdash/internal/adapters/in/payload"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/order"
)

// SeedFile is the format of the SEED_FILE document. Entries use the same
// shape as the data member of the HTTP request bodies.
type SeedFile struct {
	Dishes []payload.DishData  `json:"dishes"`
	Orders []payload.OrderData `json:"orders"`
}

// SeedResult reports how many entities a seed created.
type SeedResult struct {
	Dishes int
	Orders int
}

// Seed creates every dish and then every order of the file at path through
// the create pipelines. An order whose status is set and not pending is then
// moved to that status through the update pipeline, so a seed can restore
// orders already in progress. It stops at the first invalid entry; entities
// created before it are kept.
func (c *CompositionRoot) Seed(ctx context.Context, path string) (SeedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err = json.Unmarshal(data, &seed); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed file: %w", err)
	}

	var result SeedResult
	createDish := c.CreateCreateDishCommandHandler()
	for i, d := range seed.Dishes {
		cmd, cmdErr := commands.NewCreateDishCommand(d.Payload())
		if cmdErr != nil {
			return result, fmt.Errorf("seed dish %d: %w", i, cmdErr)
		}
		if _, err = createDish.Handle(ctx, cmd); err != nil {
			return result, fmt.Errorf("seed dish %d: %w", i, err)
		}
		result.Dishes++
	}

	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	for i, o := range seed.Orders {
		p := o.Payload()
		cmd, cmdErr := commands.NewCreateOrderCommand(p)
		if cmdErr != nil {
			return result, fmt.Errorf("seed order %d: %w", i, cmdErr)
		}
		created, createErr := createOrder.Handle(ctx, cmd)
		if createErr != nil {
			return result, fmt.Errorf("seed order %d: %w", i, createErr)
		}
		result.Orders++

		if p.Status == "" || p.Status == order.Pending.String() {
			continue
		}
		p.ID = ""
		if _, err = updateOrder.Handle(ctx, commands.NewUpdateOrderCommand(created.ID().String(), p)); err != nil {
			return result, fmt.Errorf("seed order %d status: %w", i, err)
		}
	}

	return result, nil
}
