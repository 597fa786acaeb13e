package techocc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinCrosswalk(t *testing.T) {
	recs, e := UnifyRatings(testTables()...)
	assert.Nil(t, e)

	joined := JoinCrosswalk(recs, testCrosswalk())

	// per-title cardinality: every rating of every code mapping to the title,
	// nothing more
	perCode := make(map[string]int)
	for _, r := range recs {
		perCode[r.ONetCode]++
	}

	perTitle := make(map[string]int)
	for _, j := range joined {
		perTitle[j.NOCTitle]++
	}

	for title, got := range perTitle {
		want := 0
		for _, cw := range testCrosswalk() {
			if cw.NOCTitle == title {
				want += perCode[cw.ONetCode]
			}
		}

		assert.Equal(t, want, got, title)
	}

	// the orphan code is dropped silently
	for _, j := range joined {
		assert.NotEqual(t, codeOrphan, j.ONetCode)
	}

	// codeOne fans out to two targets (Alpha and the empty title), so the
	// join can exceed the input rating count for that code
	alpha := 0
	for _, j := range joined {
		if j.NOCTitle == titleAlpha {
			alpha++
		}
	}
	assert.Equal(t, perCode[codeOne]+perCode[codeTwo], alpha)
}

func TestJoinCrosswalkEmpty(t *testing.T) {
	recs := []RatingRecord{{ONetCode: "nope", ElementID: "x", ScaleID: ScaleLevel, Value: 1}}

	assert.Equal(t, 0, len(JoinCrosswalk(recs, testCrosswalk())))
	assert.Equal(t, 0, len(JoinCrosswalk(nil, testCrosswalk())))
}
