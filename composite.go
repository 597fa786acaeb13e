package techocc

import "math"

// Composites fills the three harmonic-rank scores on each row: harm.rank
// over all elements of interest, harm.rank.digital over the digital subset
// and harm.rank.no.tel over the no-telecom subset. Each composite is the
// harmonic mean of (rank + 1) across its subset; the offset keeps every term
// positive since ranks start at 1. A row missing a rank for any element of a
// subset gets NaN for that composite -- no imputation.
func Composites(rows []OccupationRankRow, cfg *Config) {
	for ind := range rows {
		rows[ind].HarmRank = harmRank(&rows[ind], cfg.Elements)
		rows[ind].HarmRankDigital = harmRank(&rows[ind], cfg.DigitalSubset)
		rows[ind].HarmRankNoTel = harmRank(&rows[ind], cfg.NoTelSubset)
	}
}

func harmRank(row *OccupationRankRow, elements []string) float64 {
	vals := make([]float64, 0, len(elements))
	for _, el := range elements {
		rank, ok := row.Ranks[el]
		if !ok {
			return math.NaN()
		}

		vals = append(vals, float64(rank+1))
	}

	return harmonicMean(vals)
}

// harmonicMean is n / sum(1/v). NaN for an empty input or any non-positive
// term.
func harmonicMean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	recip := 0.0
	for _, v := range vals {
		if v <= 0 {
			return math.NaN()
		}

		recip += 1.0 / v
	}

	return float64(len(vals)) / recip
}
