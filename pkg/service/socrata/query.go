package socrata

import (
	"strconv"
	"strings"

	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// DefaultEndpoint is the 2015 street tree census dataset
const DefaultEndpoint = "https://data.cityofnewyork.us/resource/nwxe-4ae8.json"

// Param is one SoQL query parameter. A single value is passed through as-is;
// several values are joined with "&".
type Param struct {
	Name   string
	Values []string
}

// Select builds a $select parameter
func Select(fields string) Param {
	return Param{Name: "select", Values: []string{fields}}
}

// Where builds a $where parameter from one or more clauses
func Where(clauses ...string) Param {
	return Param{Name: "where", Values: clauses}
}

// Group builds a $group parameter
func Group(fields string) Param {
	return Param{Name: "group", Values: []string{fields}}
}

// Order builds an $order parameter
func Order(fields string) Param {
	return Param{Name: "order", Values: []string{fields}}
}

// Limit builds a $limit parameter
func Limit(n int) Param {
	return Param{Name: "limit", Values: []string{strconv.Itoa(n)}}
}

// BuildQuery appends the parameters to base as "$name=value" pairs joined by "&",
// in the given order. Only spaces are escaped; field names and clauses are not validated.
func BuildQuery(base string, params ...Param) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, "$"+p.Name+"="+strings.Join(p.Values, "&"))
	}
	return strings.ReplaceAll(base+"?"+strings.Join(pairs, "&"), " ", "%20")
}

// SpeciesQuery lists every distinct common species name
func SpeciesQuery() []Param {
	return []Param{
		Select("spc_common"),
		Group("spc_common"),
		Order("spc_common"),
	}
}

// HealthByStewardQuery counts trees of one species in one borough by health and steward
func HealthByStewardQuery(borough types.Borough, species types.Species) []Param {
	return []Param{
		Select("health,steward,count(tree_id)"),
		Where(
			"spc_common='"+species.String()+"'",
			"boroname='"+borough.String()+"'",
		),
		Group("spc_common,health,steward"),
		Order("spc_common,steward,health"),
	}
}
