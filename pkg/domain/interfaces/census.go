package interfaces

//go:generate moq -out mocks/census_mock.go -pkg mocks . TreeCensus

import (
	"context"

	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// TreeCensus defines the queries issued against the street tree census API
type TreeCensus interface {
	// ListSpecies returns every common species name in the census, sorted
	ListSpecies(ctx context.Context) ([]types.Species, error)

	// HealthBySteward returns tree counts grouped by health and steward for one species in one borough
	HealthBySteward(ctx context.Context, borough types.Borough, species types.Species) ([]model.TreeRecord, error)
}
