package techocc

// JoinCrosswalk inner-joins the ratings to the crosswalk on O*NET code,
// fanning each rating out to every NOC title its code maps to. Ratings whose
// code has no crosswalk entry are dropped -- the join is known-lossy (the
// reference crosswalk has at least one O*NET code with no NOC counterpart)
// and that is tolerated, not an error. Output order follows input order, so
// the result is identical run to run.
func JoinCrosswalk(recs []RatingRecord, xwalk []CrosswalkEntry) []JoinedRecord {
	titles := make(map[string][]string)
	for _, cw := range xwalk {
		titles[cw.ONetCode] = append(titles[cw.ONetCode], cw.NOCTitle)
	}

	var joined []JoinedRecord
	for _, rec := range recs {
		for _, title := range titles[rec.ONetCode] {
			joined = append(joined, JoinedRecord{RatingRecord: rec, NOCTitle: title})
		}
	}

	return joined
}
