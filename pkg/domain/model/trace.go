package model

// Trace is one bar series of a chart. A trace holds a single health category;
// X lists the steward categories where that health occurs and Y the matching values.
type Trace struct {
	Name  Health    `json:"name"`
	Color string    `json:"color"`
	X     []Steward `json:"x"`
	Y     []float64 `json:"y"`
}

// BuildTraces reshapes grouped census rows into one trace per health category.
//
// Steward "None" is relabelled to "0-None", stewards are ordered lexically and
// health categories follow the Good, Fair, Poor ranking. Rows with a health value
// outside that ranking are dropped. With ViewProportion every steward's values are
// divided by the steward total. Pairs missing from the rows are not zero-filled.
func BuildTraces(records []TreeRecord, view View) []Trace {
	sums := make(map[Steward]map[Health]float64)
	for _, rec := range records {
		if !rec.Health.IsValid() {
			continue
		}
		steward := rec.Steward.Label()
		if sums[steward] == nil {
			sums[steward] = make(map[Health]float64)
		}
		sums[steward][rec.Health] += float64(rec.Count)
	}

	stewards := make([]Steward, 0, len(sums))
	for steward := range sums {
		stewards = append(stewards, steward)
	}
	sortStewards(stewards)

	if view == ViewProportion {
		for _, steward := range stewards {
			var total float64
			for _, v := range sums[steward] {
				total += v
			}
			for h, v := range sums[steward] {
				if total == 0 {
					sums[steward][h] = 0
					continue
				}
				sums[steward][h] = v / total
			}
		}
	}

	var traces []Trace
	for _, health := range healthRanking {
		trace := Trace{Name: health, Color: health.Color()}
		for _, steward := range stewards {
			v, ok := sums[steward][health]
			if !ok {
				continue
			}
			trace.X = append(trace.X, steward)
			trace.Y = append(trace.Y, v)
		}
		if len(trace.X) == 0 {
			continue
		}
		traces = append(traces, trace)
	}

	return traces
}
