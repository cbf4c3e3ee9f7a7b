package helpers

import (
	"testing"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
)

// NewResource builds a catalog resource, failing the test on invalid data
func NewResource(t *testing.T, symbol string, baseValue, unitVolume float64) *catalog.Resource {
	t.Helper()
	resource, err := catalog.NewResource(symbol, symbol, baseValue, unitVolume)
	if err != nil {
		t.Fatalf("failed to create resource %s: %v", symbol, err)
	}
	return resource
}

// NewRecipe builds a catalog recipe, failing the test on invalid data
func NewRecipe(t *testing.T, symbol string, output *catalog.Resource, outputAmount int, inputs []catalog.RecipeInput, duration int) *catalog.Recipe {
	t.Helper()
	recipe, err := catalog.NewRecipe(symbol, output, outputAmount, inputs, duration, 0)
	if err != nil {
		t.Fatalf("failed to create recipe %s: %v", symbol, err)
	}
	return recipe
}

// NewFacility builds a facility owned by player 1 at the given position
func NewFacility(t *testing.T, id string, x, y float64) *production.Facility {
	t.Helper()
	facility, err := production.NewFacility(id, id, shared.NewPosition(x, y), shared.MustNewPlayerID(1))
	if err != nil {
		t.Fatalf("failed to create facility %s: %v", id, err)
	}
	return facility
}

// NewTransporter builds a transporter owned by player 1
func NewTransporter(t *testing.T, id string, x, y, speed, maxVolume float64) *transport.Transporter {
	t.Helper()
	transporter, err := transport.NewTransporter(id, id, shared.MustNewPlayerID(1), shared.NewPosition(x, y), speed, maxVolume, 100)
	if err != nil {
		t.Fatalf("failed to create transporter %s: %v", id, err)
	}
	return transporter
}
