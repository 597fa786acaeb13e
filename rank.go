package techocc

import (
	"fmt"
	"sort"
	"strings"

	u "github.com/invertedv/utilities"
)

// Rank pivots the aggregated scores to one row per NOC title and ranks the
// occupations on each element of interest, largest value first.
//
// Only rows at cfg.RankScale whose element id is in cfg.Elements survive the
// filter. Rows with an empty occupation title (the crosswalk produces at
// least one) are dropped before ranking. Ranks are ordinal: 1..N per element
// with no gaps, ties broken by the occupation's first appearance in the
// aggregated input, so the ordering is stable run to run.
func Rank(scores []AggregatedScore, cfg *Config) ([]OccupationRankRow, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rank: nil config")
	}

	var (
		rows  []OccupationRankRow
		rowOf = make(map[string]int)
		dupe  = make(map[string]map[string]bool)
	)

	for _, sc := range scores {
		if sc.ScaleID != cfg.RankScale || !u.Has(sc.ElementID, "", cfg.Elements...) {
			continue
		}

		if sc.NOCTitle == "" {
			continue
		}

		ind, ok := rowOf[sc.NOCTitle]
		if !ok {
			code, name := splitTitle(sc.NOCTitle)
			rows = append(rows, OccupationRankRow{
				NOCTitle: sc.NOCTitle,
				NOCCode:  code,
				NOCName:  name,
				Values:   make(map[string]float64),
				Ranks:    make(map[string]int),
			})

			ind = len(rows) - 1
			rowOf[sc.NOCTitle] = ind
			dupe[sc.NOCTitle] = make(map[string]bool)
		}

		if dupe[sc.NOCTitle][sc.ElementID] {
			return nil, fmt.Errorf("rank: duplicate value for %s element %s", sc.NOCTitle, sc.ElementID)
		}

		dupe[sc.NOCTitle][sc.ElementID] = true
		rows[ind].Values[sc.ElementID] = sc.Value
	}

	for _, el := range cfg.Elements {
		rankElement(rows, el)
	}

	return rows, nil
}

// rankElement assigns descending ordinal ranks for one element over the rows
// that have a value for it. The candidate list is built in row order, and the
// sort is stable, so equal values keep first-appearance order.
func rankElement(rows []OccupationRankRow, elementID string) {
	var cands []int
	for ind := range rows {
		if _, ok := rows[ind].Values[elementID]; ok {
			cands = append(cands, ind)
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return rows[cands[i]].Values[elementID] > rows[cands[j]].Values[elementID]
	})

	for pos, ind := range cands {
		rows[ind].Ranks[elementID] = pos + 1
	}
}

// splitTitle breaks a NOC title of the form "2171 Information systems
// analysts" at the first space into code and name. A title with no space is
// all code.
func splitTitle(title string) (code, name string) {
	parts := strings.SplitN(title, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], parts[1]
}
