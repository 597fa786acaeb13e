package techocc

// Classification labels on the digital axis.
const (
	LabelDigital  = "Digital"
	LabelHighTech = "High-Tech"
)

// Classify cuts the composites into labels. All comparisons are strict:
//
//  1. tech = 1 iff harm.rank < tech_cutoff.
//  2. A tech occupation is "High-Tech" ...
//  3. ... unless harm.rank.digital < digital_cutoff, then "Digital".
//  4. tech_no_tel = 1 iff harm.rank.no.tel < tech_cutoff; a sensitivity
//     flag only, it never feeds back into the primary label.
//
// A NaN composite fails every comparison, so an occupation with an undefined
// composite simply does not qualify.
func Classify(rows []OccupationRankRow, cfg *Config) {
	for ind := range rows {
		row := &rows[ind]

		row.Tech = 0
		row.DigitalLabel = ""
		row.TechNoTel = 0

		if row.HarmRank < cfg.TechCutoff {
			row.Tech = 1
			row.DigitalLabel = LabelHighTech

			if row.HarmRankDigital < cfg.DigitalCutoff {
				row.DigitalLabel = LabelDigital
			}
		}

		if row.HarmRankNoTel < cfg.TechCutoff {
			row.TechNoTel = 1
		}
	}
}
