package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

func validDashboardConfig() *model.DashboardConfig {
	return &model.DashboardConfig{
		Title:          "New York Tree Health by Stewardship",
		Boroughs:       types.Boroughs(),
		DefaultBorough: types.BoroughBronx,
		DefaultSpecies: "American beech",
		Chart:          model.ChartSize{Width: 640, Height: 480},
	}
}

func TestDashboardConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *model.DashboardConfig)
		wantErr bool
	}{
		{
			name:   "valid configuration",
			modify: func(c *model.DashboardConfig) {},
		},
		{
			name:    "missing title",
			modify:  func(c *model.DashboardConfig) { c.Title = "" },
			wantErr: true,
		},
		{
			name:    "no boroughs",
			modify:  func(c *model.DashboardConfig) { c.Boroughs = nil },
			wantErr: true,
		},
		{
			name: "unknown borough",
			modify: func(c *model.DashboardConfig) {
				c.Boroughs = append(c.Boroughs, "Long Island")
			},
			wantErr: true,
		},
		{
			name: "duplicate borough",
			modify: func(c *model.DashboardConfig) {
				c.Boroughs = append(c.Boroughs, types.BoroughQueens)
			},
			wantErr: true,
		},
		{
			name: "default borough not offered",
			modify: func(c *model.DashboardConfig) {
				c.Boroughs = []types.Borough{types.BoroughQueens}
			},
			wantErr: true,
		},
		{
			name:    "blank default species",
			modify:  func(c *model.DashboardConfig) { c.DefaultSpecies = " " },
			wantErr: true,
		},
		{
			name:    "zero chart width",
			modify:  func(c *model.DashboardConfig) { c.Chart.Width = 0 },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validDashboardConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestDashboardConfig_HasBorough(t *testing.T) {
	cfg := validDashboardConfig()
	gt.True(t, cfg.HasBorough(types.BoroughManhattan))
	gt.False(t, cfg.HasBorough("Manhattan "))
}
