package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/interfaces"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// Dashboard provides the option lists and chart figures of the tree health dashboard
type Dashboard struct {
	census interfaces.TreeCensus
	config *model.DashboardConfig

	mu      sync.RWMutex
	species []types.Species
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// NewDashboard creates a new Dashboard instance
func NewDashboard(census interfaces.TreeCensus, config *model.DashboardConfig) *Dashboard {
	return &Dashboard{
		census: census,
		config: config,
	}
}

// LoadSpecies fetches the species list once. It is called at startup, before serving.
func (uc *Dashboard) LoadSpecies(ctx context.Context) error {
	species, err := uc.census.ListSpecies(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load species list")
	}

	uc.mu.Lock()
	uc.species = species
	uc.mu.Unlock()

	ctxlog.From(ctx).Info("Species list loaded", "count", len(species))
	return nil
}

// Species returns the species list loaded at startup
func (uc *Dashboard) Species() []types.Species {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	result := make([]types.Species, len(uc.species))
	copy(result, uc.species)
	return result
}

// Boroughs returns the boroughs offered by the dashboard
func (uc *Dashboard) Boroughs() []types.Borough {
	result := make([]types.Borough, len(uc.config.Boroughs))
	copy(result, uc.config.Boroughs)
	return result
}

// Figure queries the census for one borough and species and builds the figure of the view.
// Every call re-queries the census.
func (uc *Dashboard) Figure(ctx context.Context, borough types.Borough, species types.Species, view model.View) (*model.Figure, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	if !uc.config.HasBorough(borough) {
		return nil, goerr.Wrap(model.ErrInvalidBorough, "borough is not offered",
			goerr.V("borough", borough))
	}
	if err := species.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidSpecies, err.Error())
	}

	records, err := uc.census.HealthBySteward(ctx, borough, species)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch tree records",
			goerr.V("view", view))
	}

	fig := model.NewFigure(records, view)
	fig.Borough = borough
	fig.Species = species

	ctxlog.From(ctx).Debug("Figure built",
		"view", view,
		"borough", borough,
		"species", species,
		"records", len(records),
		"traces", len(fig.Traces),
	)
	return fig, nil
}
