package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
)

func TestViewValidate(t *testing.T) {
	gt.NoError(t, model.ViewCount.Validate())
	gt.NoError(t, model.ViewProportion.Validate())

	err := model.View("pie").Validate()
	gt.Error(t, err).Is(model.ErrInvalidView)
}

func TestNewFigure(t *testing.T) {
	t.Run("count layout", func(t *testing.T) {
		fig := model.NewFigure(sampleRecords(), model.ViewCount)
		gt.Equal(t, fig.View, model.ViewCount)
		gt.Equal(t, fig.Layout.Title, "Number of Trees by Health and Stewardship")
		gt.Equal(t, fig.Layout.BarMode, model.BarModeStack)
		gt.Equal(t, fig.Layout.XAxisTitle, "Steward Activity")
		gt.S(t, fig.Layout.YAxisTitle).Contains("Number of Trees")
		gt.A(t, fig.Traces).Length(3)
	})

	t.Run("proportion layout", func(t *testing.T) {
		fig := model.NewFigure(sampleRecords(), model.ViewProportion)
		gt.Equal(t, fig.Layout.Title, "Proportion of Trees by Health and Stewardship")
		gt.S(t, fig.Layout.YAxisTitle).Contains("Proportion of Trees")
	})

	t.Run("empty figure encodes traces as an empty list", func(t *testing.T) {
		fig := model.NewFigure(nil, model.ViewCount)
		gt.True(t, fig.IsEmpty())

		raw, err := json.Marshal(fig)
		gt.NoError(t, err).Required()
		gt.S(t, string(raw)).Contains(`"traces":[]`)
	})
}

func TestFigureStewardsAndValue(t *testing.T) {
	fig := model.NewFigure(sampleRecords(), model.ViewCount)

	gt.Equal(t, fig.Stewards(), []model.Steward{"0-None", "1or2", "3or4"})

	v, ok := fig.Value("1or2", model.HealthPoor)
	gt.True(t, ok)
	gt.Equal(t, v, 10.0)

	_, ok = fig.Value("3or4", model.HealthPoor)
	gt.False(t, ok)

	var nilFig *model.Figure
	gt.True(t, nilFig.IsEmpty())
	gt.A(t, nilFig.Stewards()).Length(0)
}

func TestHealth(t *testing.T) {
	gt.Equal(t, model.HealthLevels(), []model.Health{model.HealthGood, model.HealthFair, model.HealthPoor})
	gt.Equal(t, model.HealthGood.Rank(), 0)
	gt.Equal(t, model.HealthPoor.Rank(), 2)
	gt.Equal(t, model.Health("Dead").Rank(), -1)
	gt.False(t, model.Health("good").IsValid())
	gt.Equal(t, model.HealthFair.Color(), "#f2e394")
	gt.Equal(t, model.Health("Dead").Color(), "")
}

func TestStewardLabel(t *testing.T) {
	gt.Equal(t, model.StewardNone.Label(), model.StewardNoneLabel)
	gt.Equal(t, model.Steward("1or2").Label(), model.Steward("1or2"))
	gt.Equal(t, model.Steward("none").Label(), model.Steward("none"))
}
