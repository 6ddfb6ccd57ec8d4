package socrata_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/service/socrata"
)

func TestBuildQuery(t *testing.T) {
	t.Run("scalar and list parameters", func(t *testing.T) {
		url := socrata.BuildQuery("https://example.com/r.json",
			socrata.Select("a"),
			socrata.Where("x=1", "y=2"),
		)

		gt.S(t, url).Contains("$select=a")
		gt.S(t, url).Contains("$where=x=1&y=2")
		gt.Equal(t, url, "https://example.com/r.json?$select=a&$where=x=1&y=2")
	})

	t.Run("spaces are percent encoded", func(t *testing.T) {
		url := socrata.BuildQuery("https://example.com/r.json",
			socrata.Where("boroname='Staten Island'"),
		)
		gt.Equal(t, url, "https://example.com/r.json?$where=boroname='Staten%20Island'")
	})

	t.Run("parameters keep their order", func(t *testing.T) {
		url := socrata.BuildQuery("base",
			socrata.Order("b"),
			socrata.Group("a"),
			socrata.Limit(10),
		)
		gt.Equal(t, url, "base?$order=b&$group=a&$limit=10")
	})

	t.Run("no parameters", func(t *testing.T) {
		gt.Equal(t, socrata.BuildQuery("base"), "base?")
	})
}

func TestSpeciesQuery(t *testing.T) {
	url := socrata.BuildQuery(socrata.DefaultEndpoint, socrata.SpeciesQuery()...)
	gt.Equal(t, url, socrata.DefaultEndpoint+"?$select=spc_common&$group=spc_common&$order=spc_common")
}

func TestHealthByStewardQuery(t *testing.T) {
	url := socrata.BuildQuery(socrata.DefaultEndpoint,
		socrata.HealthByStewardQuery("Staten Island", "American beech")...)

	gt.Equal(t, url, socrata.DefaultEndpoint+
		"?$select=health,steward,count(tree_id)"+
		"&$where=spc_common='American%20beech'&boroname='Staten%20Island'"+
		"&$group=spc_common,health,steward"+
		"&$order=spc_common,steward,health")
}
