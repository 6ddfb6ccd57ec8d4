package interfaces

import (
	"context"

	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// Dashboard defines the use case behind the dashboard page and chart endpoints
type Dashboard interface {
	Boroughs() []types.Borough
	Species() []types.Species
	Figure(ctx context.Context, borough types.Borough, species types.Species, view model.View) (*model.Figure, error)
}
