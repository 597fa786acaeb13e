package techocc

import "fmt"

// Fixture builders shared by the stage tests. The synthetic world has three
// O*NET codes crosswalked onto two NOC titles -- "1111 Alpha" receives two
// codes, "2222 Beta" one -- plus one code with no crosswalk entry at all.

const (
	codeOne      = "11-1.00"
	codeTwo      = "11-2.00"
	codeThree    = "11-3.00"
	codeOrphan   = "99-9.99"
	titleAlpha   = "1111 Alpha occupation"
	titleBeta    = "2222 Beta occupation"
	ratingHeader = 9 // canonical 7 plus two droppable metadata columns
)

func testCrosswalk() []CrosswalkEntry {
	return []CrosswalkEntry{
		{ONetCode: codeOne, NOCTitle: titleAlpha},
		{ONetCode: codeTwo, NOCTitle: titleAlpha},
		{ONetCode: codeThree, NOCTitle: titleBeta},
		{ONetCode: codeOne, NOCTitle: ""}, // empty target title, dropped before ranking
	}
}

func elementName(elementID string) string {
	return "element " + elementID
}

func ratingRow(code, title, elementID, scaleID string, value float64) []string {
	scaleName := "Level"
	if scaleID == ScaleImportance {
		scaleName = "Importance"
	}

	return []string{
		code, title, elementID, elementName(elementID), scaleID, scaleName,
		fmt.Sprintf("%v", value),
		"30",   // sample size, dropped
		"0.12", // standard error, dropped
	}
}

func ratingCols(prefix string) []string {
	cols := make([]string, ratingHeader)
	for ind := range cols {
		cols[ind] = fmt.Sprintf("%s_c%d", prefix, ind)
	}

	return cols
}

// testTables builds three rating tables where every element of interest has
// Level 6 for codeOne, 4 for codeTwo and 2 for codeThree, so the aggregated
// Level for Alpha is 5 per element and Beta trails at 2. Importance is
// Level - 1 everywhere, and the orphan code rides along to exercise the
// lossy join.
func testTables() []RawTable {
	cfg := DefaultConfig()
	levels := map[string]float64{codeOne: 6, codeTwo: 4, codeThree: 2, codeOrphan: 3}
	titles := map[string]string{codeOne: "One", codeTwo: "Two", codeThree: "Three", codeOrphan: "Orphan"}

	var rows [][]string
	for _, code := range []string{codeOne, codeTwo, codeThree, codeOrphan} {
		for _, el := range cfg.Elements {
			rows = append(rows,
				ratingRow(code, titles[code], el, ScaleLevel, levels[code]),
				ratingRow(code, titles[code], el, ScaleImportance, levels[code]-1))
		}
	}

	// spread the same rows across three positionally-identical tables
	third := len(rows) / 3
	return []RawTable{
		{Name: "knowledge", Cols: ratingCols("k"), Rows: rows[:third]},
		{Name: "skills", Cols: ratingCols("s"), Rows: rows[third : 2*third]},
		{Name: "activities", Cols: ratingCols("a"), Rows: rows[2*third:]},
	}
}
