package techocc

import "gonum.org/v1/gonum/stat"

type aggKey struct {
	nocTitle    string
	elementID   string
	elementName string
	scaleID     string
	scaleName   string
}

// Aggregate collapses the joined table to one row per (NOC title, element,
// scale), averaging the ratings of all O*NET codes that map to the title.
// Output order is the first-appearance order of each key, so repeated runs
// produce the same table.
func Aggregate(joined []JoinedRecord) []AggregatedScore {
	groups := make(map[aggKey][]float64)
	var order []aggKey

	for _, j := range joined {
		key := aggKey{
			nocTitle:    j.NOCTitle,
			elementID:   j.ElementID,
			elementName: j.ElementName,
			scaleID:     j.ScaleID,
			scaleName:   j.ScaleName,
		}

		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}

		groups[key] = append(groups[key], j.Value)
	}

	scores := make([]AggregatedScore, 0, len(order))
	for _, key := range order {
		scores = append(scores, AggregatedScore{
			NOCTitle:    key.nocTitle,
			ElementID:   key.elementID,
			ElementName: key.elementName,
			ScaleID:     key.scaleID,
			ScaleName:   key.scaleName,
			Value:       stat.Mean(groups[key], nil),
		})
	}

	return scores
}
