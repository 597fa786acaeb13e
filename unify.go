package techocc

import (
	"fmt"
	"strconv"
)

// The three O*NET rating tables (knowledge, skills, work activities) share
// column positions but not spellings. The unifier trusts position: the first
// ratingWidth columns are mapped onto the canonical schema below, anything
// past them (sample size, standard error, CI bounds, suppression flags,
// dates, source) is dropped.
const (
	posONetCode = iota
	posONetTitle
	posElementID
	posElementName
	posScaleID
	posScaleName
	posValue

	ratingWidth
)

// RawTable is an already-parsed input table: a header and rows of string
// fields. Parsing files into RawTables is the I/O edge (see files.go); the
// pipeline core starts here.
type RawTable struct {
	Name string
	Cols []string
	Rows [][]string
}

// UnifyRatings concatenates the rating tables in the order given, imposes the
// canonical column mapping and drops the metadata columns. Column-count
// disagreement between the tables, a short row, an unparseable value or an
// empty element/scale id is a fatal schema error: no partial output.
func UnifyRatings(tables ...RawTable) ([]RatingRecord, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("unify: no input tables")
	}

	width := len(tables[0].Cols)
	if width < ratingWidth {
		return nil, fmt.Errorf("unify: table %s has %d columns, need %d", tables[0].Name, width, ratingWidth)
	}

	var recs []RatingRecord
	for _, tab := range tables {
		if len(tab.Cols) != width {
			return nil, fmt.Errorf("unify: table %s has %d columns, table %s has %d",
				tab.Name, len(tab.Cols), tables[0].Name, width)
		}

		for rowNum, row := range tab.Rows {
			if len(row) < ratingWidth {
				return nil, fmt.Errorf("unify: table %s row %d has %d fields, need %d",
					tab.Name, rowNum, len(row), ratingWidth)
			}

			val, e := strconv.ParseFloat(row[posValue], 64)
			if e != nil {
				return nil, fmt.Errorf("unify: table %s row %d: bad value %q", tab.Name, rowNum, row[posValue])
			}

			rec := RatingRecord{
				ONetCode:    row[posONetCode],
				ONetTitle:   row[posONetTitle],
				ElementID:   row[posElementID],
				ElementName: row[posElementName],
				ScaleID:     row[posScaleID],
				ScaleName:   row[posScaleName],
				Value:       val,
			}

			if rec.ElementID == "" || rec.ScaleID == "" {
				return nil, fmt.Errorf("unify: table %s row %d: empty element or scale id", tab.Name, rowNum)
			}

			recs = append(recs, rec)
		}
	}

	return recs, nil
}
